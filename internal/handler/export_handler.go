package handler

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smart-timetable-api/internal/service"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
	"github.com/noah-isme/smart-timetable-api/pkg/response"
)

type exportService interface {
	Timetable(week int, format service.ExportFormat) (*service.ExportResult, error)
	Attendance(format service.ExportFormat) (*service.ExportResult, error)
	Open(filename string) (*os.File, error)
}

// ExportHandler renders and serves downloadable files.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Timetable godoc
// @Summary Render one week's timetable as CSV or PDF
// @Tags Exports
// @Produce json
// @Param week query int true "Absolute week number"
// @Param format query string false "csv or pdf, defaults to csv"
// @Success 201 {object} response.Envelope
// @Router /exports/timetable [post]
func (h *ExportHandler) Timetable(c *gin.Context) {
	week, err := strconv.Atoi(c.Query("week"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week must be numeric"))
		return
	}
	result, err := h.service.Timetable(week, service.ExportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Attendance godoc
// @Summary Render the attendance report as CSV or PDF
// @Tags Exports
// @Produce json
// @Param format query string false "csv or pdf, defaults to csv"
// @Success 201 {object} response.Envelope
// @Router /exports/attendance [post]
func (h *ExportHandler) Attendance(c *gin.Context) {
	result, err := h.service.Attendance(service.ExportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Download godoc
// @Summary Download a rendered export file
// @Tags Exports
// @Produce octet-stream
// @Param name path string true "File name"
// @Success 200
// @Router /exports/files/{name} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	file, err := h.service.Open(c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stat export file"))
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+info.Name())
	c.DataFromReader(http.StatusOK, info.Size(), "application/octet-stream", file, nil)
}
