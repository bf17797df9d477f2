package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smart-timetable-api/internal/models"
)

type plannerSourceStub struct {
	data models.PlannerData
}

func (s plannerSourceStub) Snapshot() models.PlannerData {
	return s.data
}

func frozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func statsFixture() models.PlannerData {
	data := models.PlannerData{
		Settings: models.SemesterSettings{StartDate: "2026-01-26", StartWeek: 22},
		Courses: []models.Course{
			{
				ID: 1, Name: "Databases", Day: models.DayMonday,
				StartPeriod: 1, PeriodCount: 2,
				Weeks: []int{22, 23, 24, 25, 26}, IsFavorite: true,
			},
			{
				// Legacy day 1 entries still land in the Monday bucket.
				ID: 2, Name: "Algorithms", Day: 1,
				StartPeriod: 3, PeriodCount: 2,
				Weeks: []int{22},
			},
			{ID: 3, Name: "remember the lab keys", Day: models.DayNote},
		},
		Holidays:  []models.Holiday{{Name: "Tet", Weeks: []int{23}}},
		Favorites: []int64{1},
		Attendance: models.AttendanceLog{
			"1": {
				"2026-01-26": {Status: models.AttendancePresent, Timestamp: "2026-01-26T08:00:00Z"},
				"2026-02-09": {Status: models.AttendanceLate, Timestamp: "2026-02-09T07:10:00Z"},
				"2026-02-16": {Status: models.AttendanceAbsent, Timestamp: "2026-02-16T09:00:00Z"},
			},
		},
	}
	data.Normalize()
	return data
}

func newStatsService(t *testing.T, now time.Time) *StatsService {
	t.Helper()
	return NewStatsService(plannerSourceStub{data: statsFixture()}, nil).WithClock(frozenClock(now))
}

func TestWeekStats(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	stats := svc.WeekStats(22)

	assert.Equal(t, 22, stats.Week)
	assert.Equal(t, 2, stats.TotalCourses, "notes do not count")
	assert.Equal(t, 4, stats.TotalPeriods)
	assert.Equal(t, 3, stats.Hours, "round(4*50/60)")
	assert.Equal(t, 1, stats.FavoritesCount)
	assert.Equal(t, []models.Holiday{{Name: "Tet", Weeks: []int{23}}}, stats.Holidays, "the full holiday list rides along on every week")
	assert.False(t, stats.IsHolidayWeek)
	assert.Equal(t, [7]int{4, 0, 0, 0, 0, 0, 0}, stats.LoadByDay)
}

func TestWeekStatsHolidayWeek(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	stats := svc.WeekStats(23)

	assert.True(t, stats.IsHolidayWeek)
	assert.Equal(t, 1, stats.TotalCourses, "the schedule still lists the course, the holiday only suspends it")
}

func TestWeekStatsGlobalFavoritesAndHolidays(t *testing.T) {
	// FavoritesCount and Holidays are document-wide: a favorite scheduled in
	// another week and a holiday in another week still show up.
	data := models.PlannerData{
		Settings:  models.SemesterSettings{StartDate: "2026-01-26", StartWeek: 22},
		Courses:   []models.Course{{ID: 1, Name: "Databases", Day: models.DayMonday, StartPeriod: 1, PeriodCount: 2, Weeks: []int{30}, IsFavorite: true}},
		Favorites: []int64{1},
		Holidays:  []models.Holiday{{Name: "Tet", Weeks: []int{25}}},
	}
	data.Normalize()
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	svc := NewStatsService(plannerSourceStub{data: data}, nil).WithClock(frozenClock(now))

	stats := svc.WeekStats(22)

	assert.Equal(t, 0, stats.TotalCourses)
	assert.Equal(t, 1, stats.FavoritesCount)
	assert.Equal(t, []models.Holiday{{Name: "Tet", Weeks: []int{25}}}, stats.Holidays)
	assert.False(t, stats.IsHolidayWeek)
}

func TestWeekStatsNextUpcoming(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	stats := svc.WeekStats(22)
	next := stats.NextUpcoming
	require.NotNil(t, next)

	assert.Equal(t, int64(1), next.CourseID)
	assert.Equal(t, 26, next.Week, "the scan is global, not limited to the requested week")
	assert.Equal(t, "2026-02-23", next.Date)
	assert.Equal(t, "Mon", next.DayLabel)
	assert.Equal(t, "07h00", next.StartTime)
	assert.Equal(t, "4d 19h", next.Until)
}

func TestNextUpcomingSkipsHolidayWeeks(t *testing.T) {
	// The day before the week 23 session, which falls on a holiday.
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	next := svc.WeekStats(22).NextUpcoming
	require.NotNil(t, next)
	assert.Equal(t, 24, next.Week, "week 23 is a holiday, the next real session is a week later")
}

func TestNextUpcomingNilWhenSemesterOver(t *testing.T) {
	now := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	assert.Nil(t, svc.WeekStats(22).NextUpcoming)
}

func TestWeekStatsDeterministic(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	first := svc.WeekStats(24)
	second := svc.WeekStats(24)
	assert.Equal(t, first, second)
}

func TestSemesterStats(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	stats := svc.SemesterStats()

	assert.Equal(t, 3, stats.TotalCourses, "every entry counts, notes included")
	assert.Equal(t, 12, stats.TotalPeriods, "2x5 weeks + 2x1 week")
	assert.Equal(t, 10, stats.Hours, "round(12*50/60)")
	assert.Equal(t, 1, stats.FavoritesCount)
	assert.Equal(t, 5, stats.TotalScheduledSessions, "the week 23 holiday removes one of the six sessions")

	require.Len(t, stats.WeeklyBreakdown, TotalSemesterWeeks)
	assert.Equal(t, 22, stats.WeeklyBreakdown[0].Week)
	assert.Equal(t, 2, stats.WeeklyBreakdown[0].Courses)
	assert.Equal(t, 4, stats.WeeklyBreakdown[0].Periods)
	assert.Equal(t, 3, stats.WeeklyBreakdown[0].Hours)
}

func TestTotalAttendance(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	totals := svc.TotalAttendance()

	// Course 1 has past sessions in weeks 22, 24 and 25 (23 is a holiday,
	// 26 is in the future). The legacy day-1 course resolves to no session
	// date, so it contributes nothing.
	assert.Equal(t, 3, totals.Total)
	assert.Equal(t, 2, totals.Attended)
	assert.Equal(t, 1, totals.Present)
	assert.Equal(t, 1, totals.Late)
	assert.Equal(t, 1, totals.Absent)
	assert.Equal(t, 0, totals.Unmarked)
	assert.Equal(t, 67, totals.Rate)
}

func TestCourseAttendance(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	ca, err := svc.CourseAttendance(1)
	require.NoError(t, err)

	assert.Equal(t, "Databases", ca.CourseName)
	assert.Equal(t, 3, ca.Totals.Total)
	assert.Equal(t, 2, ca.Totals.Attended)
	assert.Equal(t, 67, ca.Totals.Rate, "round(2/3*100)")

	_, err = svc.CourseAttendance(999)
	assert.Error(t, err)
}

func TestAttendanceRateZeroBoundary(t *testing.T) {
	// Before any session has ended nothing counts and the rate is zero.
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	ca, err := svc.CourseAttendance(1)
	require.NoError(t, err)
	assert.Equal(t, 0, ca.Totals.Total)
	assert.Equal(t, 0, ca.Totals.Attended)
	assert.Equal(t, 0, ca.Totals.Rate)
}

func TestSessionCountsOnlyAfterItEnds(t *testing.T) {
	// Week 22's Monday session runs 07h00-08h40. One minute before the end
	// it must not count yet.
	before := time.Date(2026, 1, 26, 8, 39, 0, 0, time.UTC)
	svc := newStatsService(t, before)
	ca, err := svc.CourseAttendance(1)
	require.NoError(t, err)
	assert.Equal(t, 0, ca.Totals.Total)

	after := time.Date(2026, 1, 26, 8, 40, 0, 0, time.UTC)
	svc = newStatsService(t, after)
	ca, err = svc.CourseAttendance(1)
	require.NoError(t, err)
	assert.Equal(t, 1, ca.Totals.Total)
}

func TestCourseSessions(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(t, now)

	sessions, err := svc.CourseSessions(1)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	assert.Equal(t, "2026-01-26", sessions[0].Date)
	assert.Equal(t, "present", sessions[0].Status)
	assert.Equal(t, "2026-02-09", sessions[1].Date)
	assert.Equal(t, "late", sessions[1].Status)
	assert.Equal(t, "2026-02-16", sessions[2].Date)
	assert.Equal(t, "absent", sessions[2].Status)
}
