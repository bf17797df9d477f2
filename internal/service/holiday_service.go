package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	"github.com/noah-isme/smart-timetable-api/internal/repository"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type holidayRepository interface {
	List() []models.Holiday
	Add(holiday models.Holiday) error
	Delete(index int) error
}

type settingsReader interface {
	Get() models.SemesterSettings
}

// HolidayService manages the holiday list. Holidays can be entered as
// explicit week numbers or as a calendar date range resolved against the
// semester settings.
type HolidayService struct {
	repo      holidayRepository
	settings  settingsReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHolidayService constructs a HolidayService.
func NewHolidayService(repo holidayRepository, settings settingsReader, validate *validator.Validate, logger *zap.Logger) *HolidayService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HolidayService{repo: repo, settings: settings, validator: validate, logger: logger}
}

// List returns all holidays.
func (s *HolidayService) List() []models.Holiday {
	return s.repo.List()
}

// Add creates a holiday. When no explicit weeks are given the date range is
// resolved week by week; dates before the semester start are rejected.
func (s *HolidayService) Add(req dto.AddHolidayRequest) (models.Holiday, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Holiday{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid holiday payload")
	}

	weeks := req.Weeks
	if len(weeks) == 0 {
		if req.StartDate == "" || req.EndDate == "" {
			return models.Holiday{}, appErrors.Clone(appErrors.ErrValidation, "a holiday needs weeks or a date range")
		}
		cal := NewCalendar(s.settings.Get())
		from, ok := cal.RealWeekFromISO(req.StartDate)
		if !ok {
			return models.Holiday{}, appErrors.Clone(appErrors.ErrOutOfSemester, "holiday start is before the semester or unparseable")
		}
		to, ok := cal.RealWeekFromISO(req.EndDate)
		if !ok {
			return models.Holiday{}, appErrors.Clone(appErrors.ErrOutOfSemester, "holiday end is before the semester or unparseable")
		}
		if to < from {
			return models.Holiday{}, appErrors.Clone(appErrors.ErrValidation, "holiday end precedes its start")
		}
		for w := from; w <= to; w++ {
			weeks = append(weeks, w)
		}
	}

	holiday := models.Holiday{Name: req.Name, Weeks: weeks}
	if err := s.repo.Add(holiday); err != nil {
		return models.Holiday{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save holiday")
	}
	s.logger.Info("holiday added", zap.String("name", holiday.Name), zap.Ints("weeks", holiday.Weeks))
	return holiday, nil
}

// Delete removes the holiday at the given position.
func (s *HolidayService) Delete(index int) error {
	if err := s.repo.Delete(index); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "holiday not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete holiday")
	}
	return nil
}
