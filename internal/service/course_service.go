package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	"github.com/noah-isme/smart-timetable-api/internal/repository"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type courseRepository interface {
	List() []models.Course
	Get(id int64) (models.Course, bool)
	Upsert(course models.Course) error
	Delete(id int64) error
	SetFavorite(id int64, favorite bool) error
}

// CourseService orchestrates course create/edit flows, including week string
// parsing and save-time collision checks.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewCourseService constructs a CourseService.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// WithClock overrides the time source, mainly for tests.
func (s *CourseService) WithClock(now func() time.Time) *CourseService {
	s.now = now
	return s
}

// List returns all courses, notes included.
func (s *CourseService) List() []models.Course {
	return s.repo.List()
}

// Get returns one course.
func (s *CourseService) Get(id int64) (models.Course, error) {
	course, ok := s.repo.Get(id)
	if !ok {
		return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// Save creates or updates a course. New courses get a creation-time id. A
// timed course colliding with an existing one is rejected with both names in
// the message.
func (s *CourseService) Save(req dto.SaveCourseRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	course := models.Course{
		ID:          req.ID,
		Name:        req.Name,
		Day:         req.Day,
		Room:        req.Room,
		Teacher:     req.Teacher,
		StartPeriod: req.StartPeriod,
		PeriodCount: req.PeriodCount,
		Weeks:       req.Weeks,
		WeekString:  req.WeekString,
		Color:       req.Color,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
	}
	if course.Day == 1 {
		course.Day = models.DayMonday
	}

	if !course.IsNote() {
		if len(course.Weeks) == 0 && course.WeekString != "" {
			course.Weeks = ParseWeekRange(course.WeekString)
		}
		if len(course.Weeks) == 0 {
			return models.Course{}, appErrors.Clone(appErrors.ErrValidation, "a scheduled course needs at least one week")
		}
		if course.StartPeriod < 1 {
			course.StartPeriod = 1
		}
		if course.PeriodCount < 1 {
			course.PeriodCount = 1
		}
		if course.Room == "" {
			course.Room = "Online"
		}
	}

	if course.ID == 0 {
		course.ID = s.now().UnixMilli()
	} else if existing, ok := s.repo.Get(course.ID); ok {
		course.IsFavorite = existing.IsFavorite
	}

	if other, collides := FindCollision(course, s.repo.List()); collides {
		msg := fmt.Sprintf("%q clashes with %q on the same day and overlapping periods", course.Name, other.Name)
		return models.Course{}, appErrors.Clone(appErrors.ErrScheduleConflict, msg)
	}

	if err := s.repo.Upsert(course); err != nil {
		return models.Course{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save course")
	}
	s.logger.Info("course saved", zap.Int64("id", course.ID), zap.String("name", course.Name))
	return course, nil
}

// Delete removes a course. Assignments and exams keep their denormalised
// course name and become orphaned rather than cascading.
func (s *CourseService) Delete(id int64) error {
	if _, ok := s.repo.Get(id); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	s.logger.Info("course deleted", zap.Int64("id", id))
	return nil
}

// SetFavorite flips the favourite state of a course.
func (s *CourseService) SetFavorite(id int64, favorite bool) (models.Course, error) {
	if err := s.repo.SetFavorite(id, favorite); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return models.Course{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update favourite")
	}
	course, _ := s.repo.Get(id)
	return course, nil
}
