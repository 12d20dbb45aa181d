package queries

// CalendarType selects how the birth date is interpreted.
type CalendarType string

const (
	// CalendarTypeSolar interprets the birth date as a Gregorian date.
	CalendarTypeSolar CalendarType = "SOLAR"
	// CalendarTypeLunar interprets the birth date as a Korean lunar date.
	CalendarTypeLunar CalendarType = "LUNAR"
)

// GetFourPillarsQuery requests the four-pillar designation for a birth
// date and an optional birth time.
type GetFourPillarsQuery struct {
	BirthYear  int
	BirthMonth int
	BirthDay   int

	CalendarType CalendarType
	LeapMonth    bool

	// TimeCode is a discrete even-hour code ("00".."24"). It takes
	// precedence over Time whenever it resolves.
	TimeCode string
	// Time is a free-form "HH:MM" birth time.
	Time string
}

// FourPillarsResult is the computed designation. Hour is empty when no
// valid birth time was supplied.
type FourPillarsResult struct {
	Text  string
	Year  string
	Month string
	Day   string
	Hour  string
}
