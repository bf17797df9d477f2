package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type attendanceRepository interface {
	Log() models.AttendanceLog
	Toggle(courseID int64, isoDate string, record models.AttendanceRecord) (models.AttendanceRecord, bool, error)
}

type courseFinder interface {
	Get(id int64) (models.Course, bool)
}

// AttendanceService records session marks. Marking is a toggle: posting the
// status already on record clears it, so "unmarked" needs no dedicated
// operation.
type AttendanceService struct {
	repo      attendanceRepository
	courses   courseFinder
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(repo attendanceRepository, courses courseFinder, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, courses: courses, validator: validate, logger: logger, now: time.Now}
}

// WithClock overrides the time source, mainly for tests.
func (s *AttendanceService) WithClock(now func() time.Time) *AttendanceService {
	s.now = now
	return s
}

// Log returns the raw attendance log.
func (s *AttendanceService) Log() models.AttendanceLog {
	return s.repo.Log()
}

// Toggle marks or un-marks one session of a course.
func (s *AttendanceService) Toggle(req dto.ToggleAttendanceRequest) (dto.ToggleAttendanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ToggleAttendanceResponse{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return dto.ToggleAttendanceResponse{}, appErrors.Clone(appErrors.ErrValidation, "date must be yyyy-mm-dd")
	}
	if _, ok := s.courses.Get(req.CourseID); !ok {
		return dto.ToggleAttendanceResponse{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	record := models.AttendanceRecord{
		Status:    models.AttendanceStatus(req.Status),
		Timestamp: s.now().Format(time.RFC3339),
	}
	current, removed, err := s.repo.Toggle(req.CourseID, req.Date, record)
	if err != nil {
		return dto.ToggleAttendanceResponse{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record attendance")
	}

	resp := dto.ToggleAttendanceResponse{CourseID: req.CourseID, Date: req.Date, Removed: removed}
	if !removed {
		resp.Record = &current
	}
	return resp, nil
}
