package models

// AssignmentPriority orders assignments by urgency.
type AssignmentPriority string

const (
	PriorityLow    AssignmentPriority = "low"
	PriorityMedium AssignmentPriority = "medium"
	PriorityHigh   AssignmentPriority = "high"
)

// Assignment is a deadline attached to a course. CourseName is a denormalised
// snapshot: deleting the course orphans the assignment but keeps it
// displayable.
type Assignment struct {
	ID          string             `json:"id"`
	CourseID    string             `json:"courseId"`
	CourseName  string             `json:"courseName"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Deadline    string             `json:"deadline"`
	Priority    AssignmentPriority `json:"priority"`
	Completed   bool               `json:"completed"`
	CreatedAt   string             `json:"createdAt"`
}
