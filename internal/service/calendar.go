package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/noah-isme/smart-timetable-api/internal/models"
)

const (
	// PeriodMinutes is the fixed length of one teaching period.
	PeriodMinutes = 50
	// TotalSemesterWeeks is the window covered by semester-wide views.
	TotalSemesterWeeks = 26

	isoDate     = "2006-01-02"
	displayDate = "02/01"
)

// periodTimes maps period numbers to their wall-clock start in "HHhMM"
// notation. The gap between periods 6 and 7 is the lunch break.
var periodTimes = map[int]string{
	1:  "07h00",
	2:  "07h50",
	3:  "08h40",
	4:  "09h35",
	5:  "10h25",
	6:  "11h15",
	7:  "12h35",
	8:  "13h25",
	9:  "14h15",
	10: "15h10",
	11: "16h00",
	12: "16h50",
	13: "17h45",
	14: "18h35",
	15: "19h25",
}

// PeriodTime returns the start time of a period as "HHhMM", or the empty
// string for a period number outside the table.
func PeriodTime(period int) string {
	return periodTimes[period]
}

// PeriodTable returns the full period table keyed by period number, for
// consumers that render the grid themselves.
func PeriodTable() map[int]string {
	table := make(map[int]string, len(periodTimes))
	for k, v := range periodTimes {
		table[k] = v
	}
	return table
}

func periodClock(period int) (hour, minute int, ok bool) {
	raw := periodTimes[period]
	if raw == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(raw, "h", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// Calendar resolves between semester week numbers and calendar dates for one
// semester configuration. It is an immutable value: services build one from
// the current settings instead of sharing a mutable global anchor.
type Calendar struct {
	start     time.Time
	startWeek int
}

// NewCalendar builds a resolver from persisted settings. An unparseable start
// date or non-positive start week falls back to the defaults, so a resolver
// is always usable.
func NewCalendar(settings models.SemesterSettings) Calendar {
	start, err := time.Parse(isoDate, settings.StartDate)
	if err != nil {
		start, _ = time.Parse(isoDate, models.DefaultStartDate)
	}
	week := settings.StartWeek
	if week < 1 {
		week = models.DefaultStartWeek
	}
	return Calendar{start: midnightUTC(start), startWeek: week}
}

// StartWeek returns the absolute week number of the first semester week.
func (c Calendar) StartWeek() int {
	return c.startWeek
}

// RealWeekFromDate converts a calendar date to the absolute week number
// containing it. Dates before the semester start are unsupported and report
// ok=false.
func (c Calendar) RealWeekFromDate(date time.Time) (int, bool) {
	diff := int(midnightUTC(date).Sub(c.start).Hours() / 24)
	if diff < 0 {
		return 0, false
	}
	return c.startWeek + diff/7, true
}

// RealWeekFromISO parses a "yyyy-mm-dd" string and resolves its week.
func (c Calendar) RealWeekFromISO(raw string) (int, bool) {
	date, err := time.Parse(isoDate, raw)
	if err != nil {
		return 0, false
	}
	return c.RealWeekFromDate(date)
}

// DatesForWeek returns the seven consecutive dates of an absolute week,
// starting on the semester anchor weekday (Monday by convention).
func (c Calendar) DatesForWeek(week int) [7]time.Time {
	var dates [7]time.Time
	first := c.start.AddDate(0, 0, (week-c.startWeek)*7)
	for i := 0; i < 7; i++ {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates
}

// DatesForWeekISO renders the week's dates as "yyyy-mm-dd". Both encodings
// project the same computed dates so they can never disagree.
func (c Calendar) DatesForWeekISO(week int) [7]string {
	return c.formatWeek(week, isoDate)
}

// DatesForWeekDisplay renders the week's dates as "dd/mm".
func (c Calendar) DatesForWeekDisplay(week int) [7]string {
	return c.formatWeek(week, displayDate)
}

func (c Calendar) formatWeek(week int, layout string) [7]string {
	var out [7]string
	for i, d := range c.DatesForWeek(week) {
		out[i] = d.Format(layout)
	}
	return out
}

// SessionDate resolves the calendar date of a course session in the given
// week. Untimed notes (day 0) and malformed day values have no date.
func (c Calendar) SessionDate(week, day int) (time.Time, bool) {
	idx := day - models.DayMonday
	if idx < 0 || idx > 6 {
		return time.Time{}, false
	}
	return c.DatesForWeek(week)[idx], true
}

// SessionStart returns the instant a session begins. The clock component is
// built in the location of the reference time so comparisons against "now"
// stay in one frame.
func (c Calendar) SessionStart(now time.Time, week int, course models.Course) (time.Time, bool) {
	return c.sessionInstant(now, week, course, course.StartPeriod, 0)
}

// SessionEnd returns the instant a session finishes: the start of its last
// period plus one period length.
func (c Calendar) SessionEnd(now time.Time, week int, course models.Course) (time.Time, bool) {
	last := course.StartPeriod + course.PeriodCount - 1
	return c.sessionInstant(now, week, course, last, PeriodMinutes)
}

func (c Calendar) sessionInstant(now time.Time, week int, course models.Course, period, extraMinutes int) (time.Time, bool) {
	date, ok := c.SessionDate(week, course.Day)
	if !ok {
		return time.Time{}, false
	}
	hour, minute, ok := periodClock(period)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute+extraMinutes, 0, 0, now.Location()), true
}

// IsToday reports whether (week, dayIndex) resolves to today's date.
// dayIndex is the zero-based Monday-first weekday index, not the Course day
// encoding.
func (c Calendar) IsToday(now time.Time, week, dayIndex int) bool {
	if dayIndex < 0 || dayIndex > 6 {
		return false
	}
	target := c.start.AddDate(0, 0, (week-c.startWeek)*7+dayIndex)
	return midnightUTC(now).Equal(target)
}

// CurrentWeek resolves today's absolute week number.
func (c Calendar) CurrentWeek(now time.Time) (int, bool) {
	return c.RealWeekFromDate(now)
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	// Exclusion keywords split a week range expression into range and
	// exclude halves. The Vietnamese synonyms come from the original data
	// entry habits and keep old inputs parseable.
	excludeSplitPattern = regexp.MustCompile(`(?:except|skip|not|nghỉ|trừ|bỏ)\s+`)
	weekRangePattern    = regexp.MustCompile(`(\d+)\s*(?:-|to|>)\s*(\d+)`)
	numberPattern       = regexp.MustCompile(`\d+`)
)

// ParseWeekRange parses the free-text week range mini-language, e.g.
// "22-40 except 25" or "22 to 30 skip 24, 26" or a plain list "22, 24, 28".
// The result is an ascending list of distinct weeks. A reversed range yields
// nothing, excluded weeks never present in the range are no-ops, and
// malformed input degrades to whatever integers can be salvaged; it never
// fails.
func ParseWeekRange(text string) []int {
	clean := strings.ToLower(strings.TrimSpace(text))

	rangePart, excludePart := clean, ""
	if loc := excludeSplitPattern.FindStringIndex(clean); loc != nil {
		rangePart, excludePart = clean[:loc[0]], clean[loc[1]:]
	}

	weeks := make(map[int]struct{})
	if m := weekRangePattern.FindStringSubmatch(rangePart); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		for w := start; w <= end; w++ {
			weeks[w] = struct{}{}
		}
	} else {
		for _, raw := range numberPattern.FindAllString(rangePart, -1) {
			if w, err := strconv.Atoi(raw); err == nil {
				weeks[w] = struct{}{}
			}
		}
	}

	if excludePart != "" {
		for _, raw := range numberPattern.FindAllString(excludePart, -1) {
			if w, err := strconv.Atoi(raw); err == nil {
				delete(weeks, w)
			}
		}
	}

	out := make([]int, 0, len(weeks))
	for w := range weeks {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

// Collides reports whether two distinct timed courses occupy overlapping
// periods on the same day in at least one shared week.
func Collides(a, b models.Course) bool {
	if a.ID == b.ID || a.Day != b.Day || a.Day == models.DayNote {
		return false
	}
	if !weeksIntersect(a.Weeks, b.Weeks) {
		return false
	}
	startA, endA := a.StartPeriod, a.StartPeriod+a.PeriodCount
	startB, endB := b.StartPeriod, b.StartPeriod+b.PeriodCount
	return startA < endB && endA > startB
}

// FindCollision scans existing courses for the first one colliding with the
// candidate. Pairwise and linear, which is fine at personal-timetable scale.
func FindCollision(candidate models.Course, existing []models.Course) (models.Course, bool) {
	for _, other := range existing {
		if Collides(candidate, other) {
			return other, true
		}
	}
	return models.Course{}, false
}

func weeksIntersect(a, b []int) bool {
	set := make(map[int]struct{}, len(a))
	for _, w := range a {
		set[w] = struct{}{}
	}
	for _, w := range b {
		if _, ok := set[w]; ok {
			return true
		}
	}
	return false
}
