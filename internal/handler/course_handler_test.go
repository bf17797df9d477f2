package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
)

type courseServiceStub struct {
	courses []models.Course
	saveErr error
}

func (s *courseServiceStub) List() []models.Course {
	return s.courses
}

func (s *courseServiceStub) Get(id int64) (models.Course, error) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

func (s *courseServiceStub) Save(req dto.SaveCourseRequest) (models.Course, error) {
	if s.saveErr != nil {
		return models.Course{}, s.saveErr
	}
	course := models.Course{ID: 100, Name: req.Name, Day: req.Day, Weeks: req.Weeks}
	s.courses = append(s.courses, course)
	return course, nil
}

func (s *courseServiceStub) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return nil
}

func (s *courseServiceStub) SetFavorite(id int64, favorite bool) (models.Course, error) {
	course, err := s.Get(id)
	if err != nil {
		return models.Course{}, err
	}
	course.IsFavorite = favorite
	return course, nil
}

func newCourseRouter(stub *courseServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCourseHandler(stub)
	r.GET("/courses", h.List)
	r.POST("/courses", h.Save)
	r.GET("/courses/:id", h.Get)
	r.DELETE("/courses/:id", h.Delete)
	r.PUT("/courses/:id/favorite", h.Favorite)
	return r
}

func TestCourseHandlerList(t *testing.T) {
	stub := &courseServiceStub{courses: []models.Course{{ID: 1, Name: "Maths"}}}
	r := newCourseRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []models.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Maths", body.Data[0].Name)
}

func TestCourseHandlerSave(t *testing.T) {
	stub := &courseServiceStub{}
	r := newCourseRouter(stub)

	payload := `{"name": "Physics", "day": 3, "weeks": [22, 23]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCourseHandlerSaveConflict(t *testing.T) {
	stub := &courseServiceStub{saveErr: appErrors.Clone(appErrors.ErrScheduleConflict, "clash")}
	r := newCourseRouter(stub)

	payload := `{"name": "Physics", "day": 3, "weeks": [22]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var body struct {
		Error *appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, appErrors.ErrScheduleConflict.Code, body.Error.Code)
}

func TestCourseHandlerGetUnknown(t *testing.T) {
	r := newCourseRouter(&courseServiceStub{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandlerFavorite(t *testing.T) {
	stub := &courseServiceStub{courses: []models.Course{{ID: 1, Name: "Maths"}}}
	r := newCourseRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/courses/1/favorite", strings.NewReader(`{"favorite": true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data models.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.IsFavorite)
}
