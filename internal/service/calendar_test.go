package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smart-timetable-api/internal/models"
)

func testCalendar() Calendar {
	return NewCalendar(models.SemesterSettings{StartDate: "2026-01-26", StartWeek: 22})
}

func TestRealWeekFromDate(t *testing.T) {
	cal := testCalendar()

	week, ok := cal.RealWeekFromISO("2026-01-26")
	require.True(t, ok)
	assert.Equal(t, 22, week)

	week, ok = cal.RealWeekFromISO("2026-02-01")
	require.True(t, ok)
	assert.Equal(t, 22, week, "sunday still belongs to the first week")

	week, ok = cal.RealWeekFromISO("2026-02-02")
	require.True(t, ok)
	assert.Equal(t, 23, week)

	week, ok = cal.RealWeekFromISO("2026-02-16")
	require.True(t, ok)
	assert.Equal(t, 25, week)

	_, ok = cal.RealWeekFromISO("2026-01-25")
	assert.False(t, ok, "dates before the semester start are unsupported")

	_, ok = cal.RealWeekFromISO("not-a-date")
	assert.False(t, ok)
}

func TestRealWeekFromDateIgnoresTimeOfDay(t *testing.T) {
	cal := testCalendar()

	late := time.Date(2026, 2, 1, 23, 59, 0, 0, time.FixedZone("ICT", 7*3600))
	week, ok := cal.RealWeekFromDate(late)
	require.True(t, ok)
	assert.Equal(t, 22, week)
}

func TestDatesForWeek(t *testing.T) {
	cal := testCalendar()

	iso := cal.DatesForWeekISO(22)
	assert.Equal(t, [7]string{
		"2026-01-26", "2026-01-27", "2026-01-28", "2026-01-29",
		"2026-01-30", "2026-01-31", "2026-02-01",
	}, iso)

	display := cal.DatesForWeekDisplay(22)
	assert.Equal(t, "26/01", display[0])
	assert.Equal(t, "01/02", display[6])

	// Both encodings must project the same dates.
	dates := cal.DatesForWeek(22)
	for i := range dates {
		assert.Equal(t, iso[i], dates[i].Format("2006-01-02"))
	}
}

func TestDatesForWeekRoundTrip(t *testing.T) {
	cal := testCalendar()

	for week := 22; week < 22+TotalSemesterWeeks; week++ {
		for _, d := range cal.DatesForWeek(week) {
			got, ok := cal.RealWeekFromDate(d)
			require.True(t, ok)
			assert.Equal(t, week, got)
		}
	}
}

func TestPeriodTime(t *testing.T) {
	assert.Equal(t, "07h00", PeriodTime(1))
	assert.Equal(t, "11h15", PeriodTime(6))
	assert.Equal(t, "12h35", PeriodTime(7), "lunch gap sits between periods 6 and 7")
	assert.Equal(t, "19h25", PeriodTime(15))
	assert.Equal(t, "", PeriodTime(0))
	assert.Equal(t, "", PeriodTime(16))
}

func TestSessionStartAndEnd(t *testing.T) {
	cal := testCalendar()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	course := models.Course{ID: 1, Name: "Databases", Day: models.DayMonday, StartPeriod: 1, PeriodCount: 3, Weeks: []int{22}}

	start, ok := cal.SessionStart(now, 22, course)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 26, 7, 0, 0, 0, time.UTC), start)

	end, ok := cal.SessionEnd(now, 22, course)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 26, 9, 30, 0, 0, time.UTC), end, "end is the last period start plus one period length")

	note := models.Course{ID: 2, Name: "todo", Day: models.DayNote}
	_, ok = cal.SessionStart(now, 22, note)
	assert.False(t, ok)
}

func TestIsToday(t *testing.T) {
	cal := testCalendar()
	now := time.Date(2026, 1, 28, 15, 30, 0, 0, time.UTC)

	assert.True(t, cal.IsToday(now, 22, 2))
	assert.False(t, cal.IsToday(now, 22, 3))
	assert.False(t, cal.IsToday(now, 23, 2))
	assert.False(t, cal.IsToday(now, 22, 9))
}

func TestParseWeekRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"simple range", "22-30", []int{22, 23, 24, 25, 26, 27, 28, 29, 30}},
		{"range with to", "22 to 25", []int{22, 23, 24, 25}},
		{"range with arrow", "22 > 25", []int{22, 23, 24, 25}},
		{"range with exclusion", "22-26 except 24", []int{22, 23, 25, 26}},
		{"vietnamese exclusion", "22-26 nghỉ 23, 25", []int{22, 24, 26}},
		{"skip keyword", "22 to 26 skip 24 25", []int{22, 23, 26}},
		{"plain list", "22, 24, 28", []int{22, 24, 28}},
		{"list with duplicates", "22 22 23", []int{22, 23}},
		{"reversed range", "25-22", nil},
		{"empty", "", nil},
		{"garbage", "no weeks here", nil},
		{"exclusion not in range", "22-24 except 30", []int{22, 23, 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWeekRange(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollides(t *testing.T) {
	a := models.Course{ID: 1, Day: models.DayMonday, StartPeriod: 1, PeriodCount: 3, Weeks: []int{22}}
	b := models.Course{ID: 2, Day: models.DayMonday, StartPeriod: 2, PeriodCount: 3, Weeks: []int{22}}

	assert.True(t, Collides(a, b))
	assert.True(t, Collides(b, a), "collision is symmetric")

	disjointWeeks := b
	disjointWeeks.Weeks = []int{23}
	assert.False(t, Collides(a, disjointWeeks))

	otherDay := b
	otherDay.Day = models.DayTuesday
	assert.False(t, Collides(a, otherDay))

	adjacent := b
	adjacent.StartPeriod = 4
	assert.False(t, Collides(a, adjacent), "back-to-back sessions do not overlap")

	assert.False(t, Collides(a, a), "a course never collides with itself")

	noteA := models.Course{ID: 3, Day: models.DayNote, Weeks: []int{22}}
	noteB := models.Course{ID: 4, Day: models.DayNote, Weeks: []int{22}}
	assert.False(t, Collides(noteA, noteB), "untimed notes occupy no slot")
}

func TestFindCollision(t *testing.T) {
	existing := []models.Course{
		{ID: 1, Name: "Maths", Day: models.DayMonday, StartPeriod: 1, PeriodCount: 2, Weeks: []int{22}},
		{ID: 2, Name: "Physics", Day: models.DayTuesday, StartPeriod: 1, PeriodCount: 2, Weeks: []int{22}},
	}
	candidate := models.Course{ID: 3, Name: "Chemistry", Day: models.DayTuesday, StartPeriod: 2, PeriodCount: 2, Weeks: []int{22}}

	other, collides := FindCollision(candidate, existing)
	require.True(t, collides)
	assert.Equal(t, "Physics", other.Name)

	candidate.Weeks = []int{30}
	_, collides = FindCollision(candidate, existing)
	assert.False(t, collides)
}

func TestNewCalendarFallsBackOnBadSettings(t *testing.T) {
	cal := NewCalendar(models.SemesterSettings{StartDate: "garbage", StartWeek: -4})

	assert.Equal(t, models.DefaultStartWeek, cal.StartWeek())
	iso := cal.DatesForWeekISO(cal.StartWeek())
	assert.Equal(t, models.DefaultStartDate, iso[0])
}
