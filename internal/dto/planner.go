package dto

// AddHolidayRequest creates a holiday either from explicit week numbers or
// from an inclusive date range resolved against the semester calendar.
type AddHolidayRequest struct {
	Name      string `json:"name" validate:"required"`
	Weeks     []int  `json:"weeks"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// SaveAssignmentRequest creates or edits an assignment.
type SaveAssignmentRequest struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// SaveExamRequest creates or edits an exam.
type SaveExamRequest struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Title    string `json:"title" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Duration int    `json:"duration"`
	Room     string `json:"room"`
	Format   string `json:"format" validate:"omitempty,oneof=written oral practice online"`
	Notes    string `json:"notes"`
}

// SaveNoteRequest creates or edits a smart note.
type SaveNoteRequest struct {
	ID      string   `json:"id"`
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content"`
	Type    string   `json:"type" validate:"omitempty,oneof=normal todo"`
	Tags    []string `json:"tags"`
	Color   string   `json:"color"`
}

// UpdateSettingsRequest partially updates the semester anchor. A zero value
// leaves the corresponding half unchanged.
type UpdateSettingsRequest struct {
	StartDate string `json:"startDate"`
	StartWeek int    `json:"startWeek"`
}
