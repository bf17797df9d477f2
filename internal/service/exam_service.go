package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type examRepository interface {
	List() []models.Exam
	Get(id string) (models.Exam, bool)
	Upsert(exam models.Exam) error
	Delete(id string) error
}

// ExamService manages exam entries.
type ExamService struct {
	repo      examRepository
	courses   courseFinder
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewExamService constructs an ExamService.
func NewExamService(repo examRepository, courses courseFinder, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{repo: repo, courses: courses, validator: validate, logger: logger, now: time.Now}
}

// List returns all exams.
func (s *ExamService) List() []models.Exam {
	return s.repo.List()
}

// Save creates or updates an exam.
func (s *ExamService) Save(req dto.SaveExamRequest) (models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Exam{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload")
	}

	exam := models.Exam{
		ID:         req.ID,
		CourseID:   req.CourseID,
		CourseName: courseNameSnapshot(s.courses, req.CourseID),
		Title:      req.Title,
		Date:       req.Date,
		Duration:   req.Duration,
		Room:       req.Room,
		Format:     models.ExamFormat(req.Format),
		Notes:      req.Notes,
	}
	if exam.Format == "" {
		exam.Format = models.ExamWritten
	}
	if exam.ID == "" {
		exam.ID = uuid.NewString()
		exam.CreatedAt = s.now().Format(time.RFC3339)
	} else if existing, ok := s.repo.Get(exam.ID); ok {
		exam.CreatedAt = existing.CreatedAt
		exam.Completed = existing.Completed
	}

	if err := s.repo.Upsert(exam); err != nil {
		return models.Exam{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save exam")
	}
	return exam, nil
}

// ToggleComplete flips the completed flag.
func (s *ExamService) ToggleComplete(id string) (models.Exam, error) {
	exam, ok := s.repo.Get(id)
	if !ok {
		return models.Exam{}, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	exam.Completed = !exam.Completed
	if err := s.repo.Upsert(exam); err != nil {
		return models.Exam{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update exam")
	}
	return exam, nil
}

// Delete removes an exam.
func (s *ExamService) Delete(id string) error {
	if _, ok := s.repo.Get(id); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete exam")
	}
	return nil
}
