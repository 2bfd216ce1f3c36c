// Package availability is the core of the booking engine: it derives the
// bookable slots of one day from a schedule configuration, and it normalizes
// the two historical wire shapes of the availability payload into one
// canonical structure.
package availability

// Raw is the availability payload as it arrives over the wire. Older clients
// and the legacy agenda API send only the flat "horarios" list; newer ones
// send the "minutos_por_hora" map (with or without the "horas" index). Any
// combination of missing, empty or partially malformed fields is tolerated.
type Raw struct {
	Slots         []string            `json:"horarios"`
	Hours         []string            `json:"horas"`
	MinutesByHour map[string][]string `json:"minutos_por_hora"`
}

// Response is the canonical availability payload. The three views are always
// mutually consistent: Slots is exactly the flattening of MinutesByHour in
// Hours order, every token is zero-padded "HH:MM", and all sequences are
// ascending and duplicate-free.
type Response struct {
	Slots         []string            `json:"horarios"`
	Hours         []string            `json:"horas"`
	MinutesByHour map[string][]string `json:"minutos_por_hora"`
}

// AsRaw re-wraps the response as raw input. Normalization is idempotent:
// Normalize(resp.AsRaw()) equals resp.
func (r *Response) AsRaw() Raw {
	return Raw{
		Slots:         r.Slots,
		Hours:         r.Hours,
		MinutesByHour: r.MinutesByHour,
	}
}

// IsEmpty reports whether the response carries no slots.
func (r *Response) IsEmpty() bool {
	return len(r.Slots) == 0
}
