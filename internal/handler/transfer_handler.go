package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
	"github.com/noah-isme/smart-timetable-api/pkg/response"
)

type transferService interface {
	Export() models.PlannerData
	Import(raw []byte) (models.PlannerData, error)
}

// TransferHandler moves whole planner documents in and out.
type TransferHandler struct {
	service transferService
}

// NewTransferHandler constructs the handler.
func NewTransferHandler(service transferService) *TransferHandler {
	return &TransferHandler{service: service}
}

// Export godoc
// @Summary Export the full planner document
// @Tags Transfer
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /transfer/export [get]
func (h *TransferHandler) Export(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Export())
}

// Import godoc
// @Summary Import a planner document or a legacy course array
// @Tags Transfer
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /transfer/import [post]
func (h *TransferHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to read import body"))
		return
	}
	data, err := h.service.Import(raw)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data)
}
