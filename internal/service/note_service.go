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

type noteRepository interface {
	List() []models.SmartNote
	Get(id string) (models.SmartNote, bool)
	Upsert(note models.SmartNote) error
	Delete(id string) error
}

// NoteService manages standalone notes outside the weekly grid.
type NoteService struct {
	repo      noteRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewNoteService constructs a NoteService.
func NewNoteService(repo noteRepository, validate *validator.Validate, logger *zap.Logger) *NoteService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// List returns all notes.
func (s *NoteService) List() []models.SmartNote {
	return s.repo.List()
}

// Save creates or updates a note.
func (s *NoteService) Save(req dto.SaveNoteRequest) (models.SmartNote, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.SmartNote{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid note payload")
	}

	stamp := s.now().Format(time.RFC3339)
	note := models.SmartNote{
		ID:        req.ID,
		Title:     req.Title,
		Content:   req.Content,
		Type:      models.NoteType(req.Type),
		Tags:      req.Tags,
		Color:     req.Color,
		UpdatedAt: stamp,
	}
	if note.Type == "" {
		note.Type = models.NoteNormal
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
		note.CreatedAt = stamp
	} else if existing, ok := s.repo.Get(note.ID); ok {
		note.CreatedAt = existing.CreatedAt
		note.Pinned = existing.Pinned
	}

	if err := s.repo.Upsert(note); err != nil {
		return models.SmartNote{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save note")
	}
	return note, nil
}

// TogglePin flips the pinned flag.
func (s *NoteService) TogglePin(id string) (models.SmartNote, error) {
	note, ok := s.repo.Get(id)
	if !ok {
		return models.SmartNote{}, appErrors.Clone(appErrors.ErrNotFound, "note not found")
	}
	note.Pinned = !note.Pinned
	note.UpdatedAt = s.now().Format(time.RFC3339)
	if err := s.repo.Upsert(note); err != nil {
		return models.SmartNote{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update note")
	}
	return note, nil
}

// Delete removes a note.
func (s *NoteService) Delete(id string) error {
	if _, ok := s.repo.Get(id); !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "note not found")
	}
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete note")
	}
	return nil
}
