package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// Normalize reconciles a raw payload of either wire shape into the canonical
// Response. It never fails: unparsable tokens are dropped, and the worst
// possible input yields an empty (but well-formed) response.
//
// When MinutesByHour is present it is the source of truth and the raw flat
// list is ignored; otherwise the flat list is grouped by hour. Either way the
// final Slots view is re-derived from the finalized map, which guarantees the
// cross-view consistency invariant.
func Normalize(raw Raw) Response {
	var byHour map[string]map[string]struct{}

	if len(raw.MinutesByHour) > 0 {
		byHour = groupFromMap(raw.MinutesByHour)
	} else {
		byHour = groupFromSlots(raw.Slots)
	}

	return assemble(byHour)
}

// FromSlots builds the canonical response for a generated slot list.
func FromSlots(slots []types.TimeString) Response {
	flat := make([]string, len(slots))
	for i, s := range slots {
		flat[i] = s.String()
	}
	return Normalize(Raw{Slots: flat})
}

// groupFromSlots groups a flat "HH:MM" list into hour -> minute sets,
// dropping tokens that do not parse.
func groupFromSlots(slots []string) map[string]map[string]struct{} {
	byHour := make(map[string]map[string]struct{})

	for _, token := range slots {
		hour, minute, ok := splitToken(token)
		if !ok {
			continue
		}
		addMinute(byHour, hour, minute)
	}

	return byHour
}

// groupFromMap rebuilds the hour -> minute sets from a caller-supplied map,
// normalizing the padding of both keys and values and dropping anything that
// does not parse.
func groupFromMap(minutesByHour map[string][]string) map[string]map[string]struct{} {
	byHour := make(map[string]map[string]struct{})

	for rawHour, rawMinutes := range minutesByHour {
		hour, ok := normalizeComponent(rawHour, 23)
		if !ok {
			continue
		}
		for _, rawMinute := range rawMinutes {
			minute, ok := normalizeComponent(rawMinute, 59)
			if !ok {
				continue
			}
			addMinute(byHour, hour, minute)
		}
	}

	return byHour
}

// assemble produces the three mutually consistent views from the grouped
// sets. Hours with no surviving minutes are dropped entirely.
func assemble(byHour map[string]map[string]struct{}) Response {
	hours := make([]string, 0, len(byHour))
	for hour, minutes := range byHour {
		if len(minutes) == 0 {
			continue
		}
		hours = append(hours, hour)
	}
	// Lexicographic sort is chronological here because every component is
	// zero-padded two-digit. This is a load-bearing invariant of the format.
	sort.Strings(hours)

	minutesByHour := make(map[string][]string, len(hours))
	slots := make([]string, 0)

	for _, hour := range hours {
		minutes := make([]string, 0, len(byHour[hour]))
		for minute := range byHour[hour] {
			minutes = append(minutes, minute)
		}
		sort.Strings(minutes)

		minutesByHour[hour] = minutes
		for _, minute := range minutes {
			slots = append(slots, fmt.Sprintf("%s:%s", hour, minute))
		}
	}

	return Response{
		Slots:         slots,
		Hours:         hours,
		MinutesByHour: minutesByHour,
	}
}

// splitToken parses one "H:M" token into zero-padded components.
func splitToken(token string) (hour, minute string, ok bool) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return "", "", false
	}
	hour, ok = normalizeComponent(parts[0], 23)
	if !ok {
		return "", "", false
	}
	minute, ok = normalizeComponent(parts[1], 59)
	if !ok {
		return "", "", false
	}
	return hour, minute, true
}

// normalizeComponent parses an hour or minute string of any padding and
// re-serializes it as two digits.
func normalizeComponent(raw string, max int) (string, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 || value > max {
		return "", false
	}
	return fmt.Sprintf("%02d", value), true
}

// addMinute inserts a minute into the hour's set, creating the set on first use.
func addMinute(byHour map[string]map[string]struct{}, hour, minute string) {
	set, ok := byHour[hour]
	if !ok {
		set = make(map[string]struct{})
		byHour[hour] = set
	}
	set[minute] = struct{}{}
}
