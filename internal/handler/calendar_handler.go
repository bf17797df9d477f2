package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
	"github.com/noah-isme/smart-timetable-api/pkg/response"
)

type calendarService interface {
	WeekDates(week int) dto.WeekDates
	Current() dto.CurrentWeek
	ParseWeeks(text string) dto.ParseWeeksResponse
	PeriodTimes() map[int]string
}

// CalendarHandler exposes the week/date resolver over HTTP.
type CalendarHandler struct {
	service calendarService
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(service calendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// WeekDates godoc
// @Summary Dates of an absolute week
// @Tags Calendar
// @Produce json
// @Param week path int true "Absolute week number"
// @Success 200 {object} response.Envelope
// @Router /calendar/weeks/{week} [get]
func (h *CalendarHandler) WeekDates(c *gin.Context) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week must be numeric"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.WeekDates(week))
}

// Current godoc
// @Summary Today's position in the semester
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /calendar/current [get]
func (h *CalendarHandler) Current(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Current())
}

// ParseWeeks godoc
// @Summary Preview a week range expression
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.ParseWeeksRequest true "Expression"
// @Success 200 {object} response.Envelope
// @Router /calendar/parse-weeks [post]
func (h *CalendarHandler) ParseWeeks(c *gin.Context) {
	var req dto.ParseWeeksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid parse payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.ParseWeeks(req.Text))
}

// Periods godoc
// @Summary Period start time table
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /calendar/periods [get]
func (h *CalendarHandler) Periods(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.PeriodTimes())
}
