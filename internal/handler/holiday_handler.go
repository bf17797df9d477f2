package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
	"github.com/noah-isme/smart-timetable-api/pkg/response"
)

type holidayService interface {
	List() []models.Holiday
	Add(req dto.AddHolidayRequest) (models.Holiday, error)
	Delete(index int) error
}

// HolidayHandler wires the holiday service to HTTP endpoints.
type HolidayHandler struct {
	service holidayService
}

// NewHolidayHandler constructs the handler.
func NewHolidayHandler(service holidayService) *HolidayHandler {
	return &HolidayHandler{service: service}
}

// List godoc
// @Summary List holidays
// @Tags Holidays
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /holidays [get]
func (h *HolidayHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List())
}

// Add godoc
// @Summary Add a holiday by weeks or date range
// @Tags Holidays
// @Accept json
// @Produce json
// @Param payload body dto.AddHolidayRequest true "Holiday payload"
// @Success 201 {object} response.Envelope
// @Router /holidays [post]
func (h *HolidayHandler) Add(c *gin.Context) {
	var req dto.AddHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid holiday payload"))
		return
	}
	holiday, err := h.service.Add(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, holiday)
}

// Delete godoc
// @Summary Delete the holiday at a list position
// @Tags Holidays
// @Param index path int true "Holiday index"
// @Success 204
// @Router /holidays/{index} [delete]
func (h *HolidayHandler) Delete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "index must be numeric"))
		return
	}
	if err := h.service.Delete(index); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
