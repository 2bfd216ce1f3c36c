package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes = 30
)

// Business validation constants
const (
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 240 // 4 hours

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// ModificationNoticeMinutes is the edit/cancel cutoff: a confirmed booking
// may be changed or cancelled only strictly more than this many minutes
// before it starts. Shared by IsCancellable and IsEditable so the two rules
// cannot drift apart.
const ModificationNoticeMinutes = 60

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
