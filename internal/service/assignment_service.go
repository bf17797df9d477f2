package service

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type assignmentRepository interface {
	List() []models.Assignment
	Get(id string) (models.Assignment, bool)
	Upsert(assignment models.Assignment) error
	Delete(id string) error
}

// AssignmentService manages course assignments.
type AssignmentService struct {
	repo      assignmentRepository
	courses   courseFinder
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAssignmentService constructs an AssignmentService.
func NewAssignmentService(repo assignmentRepository, courses courseFinder, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{repo: repo, courses: courses, validator: validate, logger: logger, now: time.Now}
}

// List returns all assignments.
func (s *AssignmentService) List() []models.Assignment {
	return s.repo.List()
}

// Save creates or updates an assignment. The course name is captured as a
// snapshot so a later course deletion does not blank the entry.
func (s *AssignmentService) Save(req dto.SaveAssignmentRequest) (models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Assignment{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	assignment := models.Assignment{
		ID:          req.ID,
		CourseID:    req.CourseID,
		CourseName:  courseNameSnapshot(s.courses, req.CourseID),
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Priority:    models.AssignmentPriority(req.Priority),
	}
	if assignment.Priority == "" {
		assignment.Priority = models.PriorityMedium
	}
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
		assignment.CreatedAt = s.now().Format(time.RFC3339)
	} else if existing, ok := s.repo.Get(assignment.ID); ok {
		assignment.CreatedAt = existing.CreatedAt
		assignment.Completed = existing.Completed
	}

	if err := s.repo.Upsert(assignment); err != nil {
		return models.Assignment{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save assignment")
	}
	return assignment, nil
}

// ToggleComplete flips the completed flag.
func (s *AssignmentService) ToggleComplete(id string) (models.Assignment, error) {
	assignment, ok := s.repo.Get(id)
	if !ok {
		return models.Assignment{}, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	assignment.Completed = !assignment.Completed
	if err := s.repo.Upsert(assignment); err != nil {
		return models.Assignment{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update assignment")
	}
	return assignment, nil
}

// Delete removes an assignment.
func (s *AssignmentService) Delete(id string) error {
	if _, ok := s.repo.Get(id); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete assignment")
	}
	return nil
}

// courseNameSnapshot resolves the display name for a course reference.
// Unknown or unparseable references fall back to a placeholder, matching the
// orphaned-but-displayable contract.
func courseNameSnapshot(courses courseFinder, ref string) string {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return "Unknown"
	}
	course, ok := courses.Get(id)
	if !ok {
		return "Unknown"
	}
	return course.Name
}
