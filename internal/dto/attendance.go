package dto

import "github.com/noah-isme/smart-timetable-api/internal/models"

// ToggleAttendanceRequest marks one session. Posting the status already
// recorded removes the mark again.
type ToggleAttendanceRequest struct {
	CourseID int64  `json:"courseId" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=present absent late"`
}

// ToggleAttendanceResponse reports the record now in effect. Record is nil
// when the toggle cleared the mark.
type ToggleAttendanceResponse struct {
	CourseID int64                    `json:"courseId"`
	Date     string                   `json:"date"`
	Removed  bool                     `json:"removed"`
	Record   *models.AttendanceRecord `json:"record,omitempty"`
}
