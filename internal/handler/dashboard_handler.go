package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/middleware"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
	"github.com/noah-isme/smart-timetable-api/pkg/response"
)

type dashboardService interface {
	WeekStats(ctx context.Context, week int) (dto.WeekStats, bool, error)
	SemesterStats(ctx context.Context) (dto.SemesterStats, bool, error)
}

type currentWeekResolver interface {
	Current() dto.CurrentWeek
}

// DashboardHandler wires the stats views to HTTP endpoints.
type DashboardHandler struct {
	service  dashboardService
	calendar currentWeekResolver
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService, calendar currentWeekResolver) *DashboardHandler {
	return &DashboardHandler{service: service, calendar: calendar}
}

// Week godoc
// @Summary Week statistics
// @Tags Dashboard
// @Produce json
// @Param week query int false "Absolute week number, defaults to the current week"
// @Success 200 {object} response.Envelope
// @Router /dashboard/week [get]
func (h *DashboardHandler) Week(c *gin.Context) {
	week := 0
	if raw := c.Query("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week must be numeric"))
			return
		}
		week = parsed
	} else {
		current := h.calendar.Current()
		if !current.InSemester {
			response.Error(c, appErrors.Clone(appErrors.ErrOutOfSemester, "today is before the semester start, pass an explicit week"))
			return
		}
		week = current.Week
	}

	stats, cacheHit, err := h.service.WeekStats(c.Request.Context(), week)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, stats, middleware.ExtractMeta(c))
}

// Semester godoc
// @Summary Semester statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/semester [get]
func (h *DashboardHandler) Semester(c *gin.Context) {
	stats, cacheHit, err := h.service.SemesterStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, stats, middleware.ExtractMeta(c))
}
