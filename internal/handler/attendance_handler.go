package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
	"github.com/noah-isme/smart-timetable-api/pkg/response"
)

type attendanceService interface {
	Log() models.AttendanceLog
	Toggle(req dto.ToggleAttendanceRequest) (dto.ToggleAttendanceResponse, error)
}

type attendanceStatsService interface {
	TotalAttendance() dto.AttendanceTotals
	CourseAttendance(courseID int64) (dto.CourseAttendance, error)
	CourseSessions(courseID int64) ([]dto.SessionRecord, error)
}

// AttendanceHandler wires attendance recording and statistics to HTTP.
type AttendanceHandler struct {
	service attendanceService
	stats   attendanceStatsService
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service attendanceService, stats attendanceStatsService) *AttendanceHandler {
	return &AttendanceHandler{service: service, stats: stats}
}

// Log godoc
// @Summary Raw attendance log
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) Log(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Log())
}

// Toggle godoc
// @Summary Mark or un-mark a session
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.ToggleAttendanceRequest true "Attendance mark"
// @Success 200 {object} response.Envelope
// @Router /attendance/toggle [post]
func (h *AttendanceHandler) Toggle(c *gin.Context) {
	var req dto.ToggleAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload"))
		return
	}
	result, err := h.service.Toggle(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Totals godoc
// @Summary Attendance totals across all courses
// @Tags Attendance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /attendance/stats [get]
func (h *AttendanceHandler) Totals(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.stats.TotalAttendance())
}

// CourseStats godoc
// @Summary Attendance totals for one course
// @Tags Attendance
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /attendance/courses/{id} [get]
func (h *AttendanceHandler) CourseStats(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	stats, err := h.stats.CourseAttendance(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// CourseSessions godoc
// @Summary Past sessions of a course with their marks
// @Tags Attendance
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /attendance/courses/{id}/sessions [get]
func (h *AttendanceHandler) CourseSessions(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	sessions, err := h.stats.CourseSessions(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions)
}
