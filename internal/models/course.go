package models

// Day encoding used by Course entries. Day 0 marks an untimed note, days 2-7
// are Monday through Saturday and day 8 is Sunday. Day 1 is unused; legacy
// entries carrying it are normalised to Monday. This is distinct from the
// zero-based Monday-first weekday index used by week views and load
// histograms (see WeekdayIndex).
const (
	DayNote      = 0
	DayMonday    = 2
	DayTuesday   = 3
	DayWednesday = 4
	DayThursday  = 5
	DayFriday    = 6
	DaySaturday  = 7
	DaySunday    = 8
)

// Course is a scheduled timetable entry, or a free-form note when Day is 0.
type Course struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Day         int    `json:"day"`
	Room        string `json:"room,omitempty"`
	Teacher     string `json:"teacher,omitempty"`
	StartPeriod int    `json:"startPeriod"`
	PeriodCount int    `json:"periodCount"`
	Weeks       []int  `json:"weeks"`
	WeekString  string `json:"weekString,omitempty"`
	Color       string `json:"color,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Notes       string `json:"notes,omitempty"`
	IsFavorite  bool   `json:"isFavorite,omitempty"`
}

// IsNote reports whether the entry is an untimed note rather than a session.
func (c Course) IsNote() bool {
	return c.Day == DayNote
}

// ScheduledOn reports whether the course has a session in the given week.
func (c Course) ScheduledOn(week int) bool {
	for _, w := range c.Weeks {
		if w == week {
			return true
		}
	}
	return false
}

// NormalizeDay maps legacy day values onto the canonical 2-8 encoding:
// 0 becomes Sunday (8) and the unused 1 becomes Monday (2).
func NormalizeDay(day int) int {
	switch {
	case day == 0:
		return DaySunday
	case day == 1:
		return DayMonday
	default:
		return day
	}
}

// WeekdayIndex converts a normalised course day (2-8) to the zero-based
// Monday-first index used by DatesForWeek and the load-by-day histogram.
// Values outside 2-8 map to 0 (Monday), the same fallback the load chart
// applies.
func WeekdayIndex(day int) int {
	day = NormalizeDay(day)
	if day < DayMonday || day > DaySunday {
		return 0
	}
	return day - DayMonday
}

// WeekdayLabels are the display names for the Monday-first weekday index.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
