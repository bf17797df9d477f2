package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type settingsRepoStub struct {
	settings models.SemesterSettings
}

func (s *settingsRepoStub) Get() models.SemesterSettings {
	return s.settings
}

func (s *settingsRepoStub) Update(settings models.SemesterSettings) error {
	s.settings = settings
	return nil
}

func TestSettingsPartialUpdate(t *testing.T) {
	repo := &settingsRepoStub{settings: models.SemesterSettings{StartDate: "2026-01-26", StartWeek: 22}}
	svc := NewSettingsService(repo, nil)

	// Only the week changes, the date stays as it was.
	updated, err := svc.Update(dto.UpdateSettingsRequest{StartWeek: 30})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-26", updated.StartDate)
	assert.Equal(t, 30, updated.StartWeek)

	// Only the date changes.
	updated, err = svc.Update(dto.UpdateSettingsRequest{StartDate: "2026-08-31"})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", updated.StartDate)
	assert.Equal(t, 30, updated.StartWeek)
}

func TestSettingsUpdateValidation(t *testing.T) {
	repo := &settingsRepoStub{settings: models.SemesterSettings{StartDate: "2026-01-26", StartWeek: 22}}
	svc := NewSettingsService(repo, nil)

	_, err := svc.Update(dto.UpdateSettingsRequest{StartDate: "26/01/2026"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Update(dto.UpdateSettingsRequest{StartWeek: -3})
	require.Error(t, err)

	assert.Equal(t, 22, repo.settings.StartWeek, "failed updates change nothing")
}
