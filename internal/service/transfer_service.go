package service

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type plannerStore interface {
	Snapshot() models.PlannerData
	Update(fn func(d *models.PlannerData) error) error
	Replace(data models.PlannerData) error
}

// TransferService moves the whole planner document in and out of the server,
// in the same JSON shape the web client keeps in local storage.
type TransferService struct {
	store  plannerStore
	logger *zap.Logger
}

// NewTransferService constructs a TransferService.
func NewTransferService(store plannerStore, logger *zap.Logger) *TransferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferService{store: store, logger: logger}
}

// Export returns the full document.
func (s *TransferService) Export() models.PlannerData {
	return s.store.Snapshot()
}

// Import replaces planner data from a pasted document. Two shapes are
// accepted: a bare course array (legacy export, replaces courses only) and
// the full object, in which any missing key resets to its default. Malformed
// input is rejected and the current state is left untouched.
func (s *TransferService) Import(raw []byte) (models.PlannerData, error) {
	// The array branch keys off the leading token. Probing with Unmarshal
	// alone would also accept the literal null as an empty course list and
	// wipe the timetable.
	trimmed := bytes.TrimSpace(raw)
	var courses []models.Course
	if len(trimmed) > 0 && trimmed[0] == '[' && json.Unmarshal(raw, &courses) == nil {
		err := s.store.Update(func(d *models.PlannerData) error {
			d.Courses = courses
			return nil
		})
		if err != nil {
			return models.PlannerData{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import courses")
		}
		s.logger.Info("imported legacy course array", zap.Int("courses", len(courses)))
		return s.store.Snapshot(), nil
	}

	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.PlannerData{}, appErrors.Clone(appErrors.ErrImportFormat, "import must be a course array or a planner object")
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return models.PlannerData{}, appErrors.Clone(appErrors.ErrImportFormat, "import must be a course array or a planner object")
	}
	if _, ok := probe["courses"]; !ok {
		return models.PlannerData{}, appErrors.Clone(appErrors.ErrImportFormat, "planner object is missing its courses key")
	}

	var data models.PlannerData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.PlannerData{}, appErrors.Wrap(err, appErrors.ErrImportFormat.Code, appErrors.ErrImportFormat.Status, "planner object does not match the expected shape")
	}
	data.Normalize()

	if err := s.store.Replace(data); err != nil {
		return models.PlannerData{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import planner data")
	}
	s.logger.Info("imported planner document", zap.Int("courses", len(data.Courses)))
	return s.store.Snapshot(), nil
}
