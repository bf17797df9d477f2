package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	"github.com/noah-isme/smart-timetable-api/internal/repository"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type courseRepoStub struct {
	courses []models.Course
}

func (s *courseRepoStub) List() []models.Course {
	return s.courses
}

func (s *courseRepoStub) Get(id int64) (models.Course, bool) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

func (s *courseRepoStub) Upsert(course models.Course) error {
	for i, c := range s.courses {
		if c.ID == course.ID {
			s.courses[i] = course
			return nil
		}
	}
	s.courses = append(s.courses, course)
	return nil
}

func (s *courseRepoStub) Delete(id int64) error {
	kept := s.courses[:0]
	for _, c := range s.courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.courses = kept
	return nil
}

func (s *courseRepoStub) SetFavorite(id int64, favorite bool) error {
	for i, c := range s.courses {
		if c.ID == id {
			s.courses[i].IsFavorite = favorite
			return nil
		}
	}
	return repository.ErrNotFound
}

func TestCourseServiceSaveParsesWeekString(t *testing.T) {
	repo := &courseRepoStub{}
	svc := NewCourseService(repo, nil, nil).WithClock(frozenClock(time.UnixMilli(1700000000000)))

	course, err := svc.Save(dto.SaveCourseRequest{
		Name:       "Databases",
		Day:        models.DayMonday,
		WeekString: "22-25 except 24",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000000), course.ID, "new ids are creation-time based")
	assert.Equal(t, []int{22, 23, 25}, course.Weeks)
	assert.Equal(t, 1, course.StartPeriod)
	assert.Equal(t, 1, course.PeriodCount)
	assert.Equal(t, "Online", course.Room, "room defaults when omitted")
	require.Len(t, repo.courses, 1)
}

func TestCourseServiceSaveNormalisesLegacyDay(t *testing.T) {
	repo := &courseRepoStub{}
	svc := NewCourseService(repo, nil, nil)

	course, err := svc.Save(dto.SaveCourseRequest{Name: "Algorithms", Day: 1, Weeks: []int{22}})
	require.NoError(t, err)
	assert.Equal(t, models.DayMonday, course.Day)
}

func TestCourseServiceSaveRejectsTimedCourseWithoutWeeks(t *testing.T) {
	svc := NewCourseService(&courseRepoStub{}, nil, nil)

	_, err := svc.Save(dto.SaveCourseRequest{Name: "Databases", Day: models.DayMonday})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceSaveAllowsNoteWithoutSchedule(t *testing.T) {
	repo := &courseRepoStub{}
	svc := NewCourseService(repo, nil, nil)

	course, err := svc.Save(dto.SaveCourseRequest{Name: "bring the lab keys", Day: models.DayNote})
	require.NoError(t, err)
	assert.True(t, course.IsNote())
	assert.Empty(t, course.Weeks)
}

func TestCourseServiceSaveDetectsCollision(t *testing.T) {
	repo := &courseRepoStub{courses: []models.Course{
		{ID: 1, Name: "Maths", Day: models.DayMonday, StartPeriod: 1, PeriodCount: 3, Weeks: []int{22}},
	}}
	svc := NewCourseService(repo, nil, nil)

	_, err := svc.Save(dto.SaveCourseRequest{
		Name: "Physics", Day: models.DayMonday, StartPeriod: 2, PeriodCount: 2, Weeks: []int{22},
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrScheduleConflict.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "Physics")
	assert.Contains(t, appErr.Message, "Maths")
	require.Len(t, repo.courses, 1, "the conflicting course is not stored")
}

func TestCourseServiceSaveEditKeepsFavoriteAndSkipsSelfCollision(t *testing.T) {
	repo := &courseRepoStub{courses: []models.Course{
		{ID: 7, Name: "Maths", Day: models.DayMonday, StartPeriod: 1, PeriodCount: 3, Weeks: []int{22}, IsFavorite: true},
	}}
	svc := NewCourseService(repo, nil, nil)

	course, err := svc.Save(dto.SaveCourseRequest{
		ID: 7, Name: "Maths II", Day: models.DayMonday, StartPeriod: 1, PeriodCount: 3, Weeks: []int{22},
	})
	require.NoError(t, err)
	assert.Equal(t, "Maths II", course.Name)
	assert.True(t, course.IsFavorite, "editing keeps the favourite flag")
}

func TestCourseServiceDeleteMissing(t *testing.T) {
	svc := NewCourseService(&courseRepoStub{}, nil, nil)

	err := svc.Delete(42)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceSetFavorite(t *testing.T) {
	repo := &courseRepoStub{courses: []models.Course{{ID: 1, Name: "Maths"}}}
	svc := NewCourseService(repo, nil, nil)

	course, err := svc.SetFavorite(1, true)
	require.NoError(t, err)
	assert.True(t, course.IsFavorite)

	_, err = svc.SetFavorite(99, true)
	assert.Error(t, err)
}
