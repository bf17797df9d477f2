package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
	"github.com/noah-isme/smart-timetable-api/pkg/response"
)

type assignmentService interface {
	List() []models.Assignment
	Save(req dto.SaveAssignmentRequest) (models.Assignment, error)
	ToggleComplete(id string) (models.Assignment, error)
	Delete(id string) error
}

type examService interface {
	List() []models.Exam
	Save(req dto.SaveExamRequest) (models.Exam, error)
	ToggleComplete(id string) (models.Exam, error)
	Delete(id string) error
}

type noteService interface {
	List() []models.SmartNote
	Save(req dto.SaveNoteRequest) (models.SmartNote, error)
	TogglePin(id string) (models.SmartNote, error)
	Delete(id string) error
}

// PlannerHandler covers assignments, exams and smart notes, which share the
// same CRUD shape.
type PlannerHandler struct {
	assignments assignmentService
	exams       examService
	notes       noteService
}

// NewPlannerHandler constructs the handler.
func NewPlannerHandler(assignments assignmentService, exams examService, notes noteService) *PlannerHandler {
	return &PlannerHandler{assignments: assignments, exams: exams, notes: notes}
}

// ListAssignments godoc
// @Summary List assignments
// @Tags Planner
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assignments [get]
func (h *PlannerHandler) ListAssignments(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.assignments.List())
}

// SaveAssignment godoc
// @Summary Create or update an assignment
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.SaveAssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Router /assignments [post]
func (h *PlannerHandler) SaveAssignment(c *gin.Context) {
	var req dto.SaveAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload"))
		return
	}
	assignment, err := h.assignments.Save(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// ToggleAssignment godoc
// @Summary Toggle the completed flag of an assignment
// @Tags Planner
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Envelope
// @Router /assignments/{id}/toggle [put]
func (h *PlannerHandler) ToggleAssignment(c *gin.Context) {
	assignment, err := h.assignments.ToggleComplete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Tags Planner
// @Param id path string true "Assignment ID"
// @Success 204
// @Router /assignments/{id} [delete]
func (h *PlannerHandler) DeleteAssignment(c *gin.Context) {
	if err := h.assignments.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListExams godoc
// @Summary List exams
// @Tags Planner
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *PlannerHandler) ListExams(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.exams.List())
}

// SaveExam godoc
// @Summary Create or update an exam
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.SaveExamRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Router /exams [post]
func (h *PlannerHandler) SaveExam(c *gin.Context) {
	var req dto.SaveExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload"))
		return
	}
	exam, err := h.exams.Save(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// ToggleExam godoc
// @Summary Toggle the completed flag of an exam
// @Tags Planner
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} response.Envelope
// @Router /exams/{id}/toggle [put]
func (h *PlannerHandler) ToggleExam(c *gin.Context) {
	exam, err := h.exams.ToggleComplete(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary Delete an exam
// @Tags Planner
// @Param id path string true "Exam ID"
// @Success 204
// @Router /exams/{id} [delete]
func (h *PlannerHandler) DeleteExam(c *gin.Context) {
	if err := h.exams.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListNotes godoc
// @Summary List smart notes
// @Tags Planner
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notes [get]
func (h *PlannerHandler) ListNotes(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.notes.List())
}

// SaveNote godoc
// @Summary Create or update a smart note
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.SaveNoteRequest true "Note payload"
// @Success 201 {object} response.Envelope
// @Router /notes [post]
func (h *PlannerHandler) SaveNote(c *gin.Context) {
	var req dto.SaveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid note payload"))
		return
	}
	note, err := h.notes.Save(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, note)
}

// TogglePin godoc
// @Summary Toggle the pinned flag of a note
// @Tags Planner
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} response.Envelope
// @Router /notes/{id}/pin [put]
func (h *PlannerHandler) TogglePin(c *gin.Context) {
	note, err := h.notes.TogglePin(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, note)
}

// DeleteNote godoc
// @Summary Delete a smart note
// @Tags Planner
// @Param id path string true "Note ID"
// @Success 204
// @Router /notes/{id} [delete]
func (h *PlannerHandler) DeleteNote(c *gin.Context) {
	if err := h.notes.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
