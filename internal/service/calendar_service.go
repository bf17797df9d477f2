package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
)

// CalendarService exposes the week/date resolver over the current semester
// settings.
type CalendarService struct {
	settings settingsReader
	logger   *zap.Logger
	now      func() time.Time
}

// NewCalendarService constructs a CalendarService.
func NewCalendarService(settings settingsReader, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{settings: settings, logger: logger, now: time.Now}
}

// WithClock overrides the time source, mainly for tests.
func (s *CalendarService) WithClock(now func() time.Time) *CalendarService {
	s.now = now
	return s
}

// WeekDates returns the seven dates of an absolute week in both encodings.
func (s *CalendarService) WeekDates(week int) dto.WeekDates {
	cal := NewCalendar(s.settings.Get())
	return dto.WeekDates{
		Week:    week,
		ISO:     cal.DatesForWeekISO(week),
		Display: cal.DatesForWeekDisplay(week),
	}
}

// Current resolves today's position in the semester.
func (s *CalendarService) Current() dto.CurrentWeek {
	now := s.now()
	cal := NewCalendar(s.settings.Get())
	week, ok := cal.CurrentWeek(now)
	return dto.CurrentWeek{
		Week:       week,
		InSemester: ok,
		Today:      now.Format("2006-01-02"),
	}
}

// ParseWeeks previews the week range mini-language for form input.
func (s *CalendarService) ParseWeeks(text string) dto.ParseWeeksResponse {
	return dto.ParseWeeksResponse{Text: text, Weeks: ParseWeekRange(text)}
}

// PeriodTimes returns the period-to-start-time table.
func (s *CalendarService) PeriodTimes() map[int]string {
	return PeriodTable()
}
