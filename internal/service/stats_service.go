package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type plannerSource interface {
	Snapshot() models.PlannerData
}

// StatsService computes derived views over the planner document. Nothing it
// produces is persisted: every output is a pure function of the current
// document and the injected clock, so repeated calls under a frozen clock are
// deterministic.
type StatsService struct {
	source plannerSource
	logger *zap.Logger
	now    func() time.Time
}

// NewStatsService constructs a StatsService reading from the given source.
func NewStatsService(source plannerSource, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{source: source, logger: logger, now: time.Now}
}

// WithClock overrides the time source, mainly for tests.
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

// WeekStats summarises one semester week and locates the globally nearest
// upcoming session.
func (s *StatsService) WeekStats(week int) dto.WeekStats {
	data := s.source.Snapshot()
	cal := NewCalendar(data.Settings)
	return weekStatsFrom(data, cal, s.now(), week)
}

// SemesterStats aggregates the fixed semester window starting at the
// configured start week.
func (s *StatsService) SemesterStats() dto.SemesterStats {
	data := s.source.Snapshot()
	cal := NewCalendar(data.Settings)
	now := s.now()
	holidayWeeks := models.HolidayWeekSet(data.Holidays)

	stats := dto.SemesterStats{
		TotalCourses:    len(data.Courses),
		WeeklyBreakdown: make([]dto.WeekLoad, 0, TotalSemesterWeeks),
	}
	for _, c := range data.Courses {
		if c.IsFavorite {
			stats.FavoritesCount++
		}
		if c.IsNote() {
			continue
		}
		stats.TotalPeriods += c.PeriodCount * len(c.Weeks)
		for _, w := range c.Weeks {
			if _, holiday := holidayWeeks[w]; !holiday {
				stats.TotalScheduledSessions++
			}
		}
	}
	stats.Hours = periodsToHours(stats.TotalPeriods)

	for w := cal.StartWeek(); w < cal.StartWeek()+TotalSemesterWeeks; w++ {
		ws := weekStatsFrom(data, cal, now, w)
		stats.WeeklyBreakdown = append(stats.WeeklyBreakdown, dto.WeekLoad{
			Week:    ws.Week,
			Courses: ws.TotalCourses,
			Periods: ws.TotalPeriods,
			Hours:   ws.Hours,
		})
	}
	return stats
}

// TotalAttendance aggregates attendance over every course.
func (s *StatsService) TotalAttendance() dto.AttendanceTotals {
	data := s.source.Snapshot()
	cal := NewCalendar(data.Settings)
	totals := dto.AttendanceTotals{}
	holidayWeeks := models.HolidayWeekSet(data.Holidays)
	now := s.now()
	for _, c := range data.Courses {
		accumulateAttendance(&totals, data, cal, now, holidayWeeks, c)
	}
	totals.Rate = attendanceRate(totals.Attended, totals.Total)
	return totals
}

// CourseAttendance aggregates attendance for a single course.
func (s *StatsService) CourseAttendance(courseID int64) (dto.CourseAttendance, error) {
	data := s.source.Snapshot()
	course, ok := findCourse(data.Courses, courseID)
	if !ok {
		return dto.CourseAttendance{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	cal := NewCalendar(data.Settings)
	totals := dto.AttendanceTotals{}
	accumulateAttendance(&totals, data, cal, s.now(), models.HolidayWeekSet(data.Holidays), course)
	totals.Rate = attendanceRate(totals.Attended, totals.Total)

	return dto.CourseAttendance{
		CourseID:   course.ID,
		CourseName: course.Name,
		Totals:     totals,
	}, nil
}

// CourseSessions lists a course's past sessions with their recorded marks,
// oldest first.
func (s *StatsService) CourseSessions(courseID int64) ([]dto.SessionRecord, error) {
	data := s.source.Snapshot()
	course, ok := findCourse(data.Courses, courseID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	cal := NewCalendar(data.Settings)
	now := s.now()
	holidayWeeks := models.HolidayWeekSet(data.Holidays)

	sessions := make([]dto.SessionRecord, 0, len(course.Weeks))
	for _, w := range course.Weeks {
		if _, holiday := holidayWeeks[w]; holiday {
			continue
		}
		end, ok := cal.SessionEnd(now, w, course)
		if !ok || end.After(now) {
			continue
		}
		date, _ := cal.SessionDate(w, course.Day)
		iso := date.Format("2006-01-02")
		status := "unmarked"
		if rec, ok := data.Attendance.Lookup(course.ID, iso); ok {
			status = string(rec.Status)
		}
		sessions = append(sessions, dto.SessionRecord{Date: iso, Week: w, Status: status})
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Date < sessions[j].Date })
	return sessions, nil
}

func weekStatsFrom(data models.PlannerData, cal Calendar, now time.Time, week int) dto.WeekStats {
	stats := dto.WeekStats{
		Week:           week,
		FavoritesCount: len(data.Favorites),
		Holidays:       data.Holidays,
	}
	if stats.Holidays == nil {
		stats.Holidays = []models.Holiday{}
	}
	for _, h := range data.Holidays {
		for _, w := range h.Weeks {
			if w == week {
				stats.IsHolidayWeek = true
				break
			}
		}
	}

	for _, c := range data.Courses {
		if c.IsNote() || !c.ScheduledOn(week) {
			continue
		}
		stats.TotalCourses++
		stats.TotalPeriods += c.PeriodCount
		stats.LoadByDay[models.WeekdayIndex(c.Day)] += c.PeriodCount
	}
	stats.Hours = periodsToHours(stats.TotalPeriods)
	stats.NextUpcoming = nextUpcoming(data, cal, now)
	return stats
}

// nextUpcoming scans every course across every scheduled week, skipping
// holiday weeks, and keeps the session starting soonest after now. Linear in
// courses times weeks per course, which a personal timetable never notices.
func nextUpcoming(data models.PlannerData, cal Calendar, now time.Time) *dto.UpcomingSession {
	holidayWeeks := models.HolidayWeekSet(data.Holidays)

	var best *dto.UpcomingSession
	var bestStart time.Time
	for _, c := range data.Courses {
		if c.IsNote() {
			continue
		}
		for _, w := range c.Weeks {
			if _, holiday := holidayWeeks[w]; holiday {
				continue
			}
			start, ok := cal.SessionStart(now, w, c)
			if !ok || !start.After(now) {
				continue
			}
			if best != nil && !start.Before(bestStart) {
				continue
			}
			date, _ := cal.SessionDate(w, c.Day)
			best = &dto.UpcomingSession{
				CourseID:   c.ID,
				CourseName: c.Name,
				Room:       c.Room,
				Week:       w,
				DayLabel:   models.WeekdayLabels[models.WeekdayIndex(c.Day)],
				Date:       date.Format("2006-01-02"),
				StartTime:  PeriodTime(c.StartPeriod),
				Until:      formatUntil(start.Sub(now)),
			}
			bestStart = start
		}
	}
	return best
}

func accumulateAttendance(totals *dto.AttendanceTotals, data models.PlannerData, cal Calendar, now time.Time, holidayWeeks map[int]struct{}, course models.Course) {
	if course.IsNote() {
		return
	}
	for _, w := range course.Weeks {
		if _, holiday := holidayWeeks[w]; holiday {
			continue
		}
		end, ok := cal.SessionEnd(now, w, course)
		if !ok || end.After(now) {
			continue
		}
		totals.Total++

		date, _ := cal.SessionDate(w, course.Day)
		rec, marked := data.Attendance.Lookup(course.ID, date.Format("2006-01-02"))
		switch {
		case !marked:
			totals.Unmarked++
		case rec.Status == models.AttendancePresent:
			totals.Present++
		case rec.Status == models.AttendanceLate:
			totals.Late++
		case rec.Status == models.AttendanceAbsent:
			totals.Absent++
		}
		if marked && rec.Status.Attended() {
			totals.Attended++
		}
	}
}

// periodsToHours converts periods to whole hours at 50 minutes per period.
func periodsToHours(periods int) int {
	return int(math.Round(float64(periods) * 50.0 / 60.0))
}

// attendanceRate is round(attended/total*100), defined as 0 for zero total.
func attendanceRate(attended, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(attended) / float64(total) * 100))
}

func findCourse(courses []models.Course, id int64) (models.Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// formatUntil humanises a positive duration down to minute granularity.
func formatUntil(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
