package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type settingsRepository interface {
	Get() models.SemesterSettings
	Update(settings models.SemesterSettings) error
}

// SettingsService manages the semester anchor. Updates are partial: a zero
// value leaves that half of the configuration unchanged. Changing the anchor
// retroactively changes what every stored week number means; callers accept
// that by calling Update.
type SettingsService struct {
	repo   settingsRepository
	logger *zap.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(repo settingsRepository, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, logger: logger}
}

// Get returns the current settings.
func (s *SettingsService) Get() models.SemesterSettings {
	return s.repo.Get()
}

// Update applies a partial settings change.
func (s *SettingsService) Update(req dto.UpdateSettingsRequest) (models.SemesterSettings, error) {
	settings := s.repo.Get()

	if req.StartDate != "" {
		if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
			return models.SemesterSettings{}, appErrors.Clone(appErrors.ErrValidation, "start date must be yyyy-mm-dd")
		}
		settings.StartDate = req.StartDate
	}
	if req.StartWeek != 0 {
		if req.StartWeek < 1 {
			return models.SemesterSettings{}, appErrors.Clone(appErrors.ErrValidation, "start week must be positive")
		}
		settings.StartWeek = req.StartWeek
	}

	if err := s.repo.Update(settings); err != nil {
		return models.SemesterSettings{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save settings")
	}
	s.logger.Info("settings updated", zap.String("startDate", settings.StartDate), zap.Int("startWeek", settings.StartWeek))
	return settings, nil
}
