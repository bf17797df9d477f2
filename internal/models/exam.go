package models

// ExamFormat describes how an exam is taken.
type ExamFormat string

const (
	ExamWritten  ExamFormat = "written"
	ExamOral     ExamFormat = "oral"
	ExamPractice ExamFormat = "practice"
	ExamOnline   ExamFormat = "online"
)

// Exam is a dated exam entry. Like Assignment it keeps a courseName snapshot
// so a deleted course does not blank the exam list.
type Exam struct {
	ID         string     `json:"id"`
	CourseID   string     `json:"courseId"`
	CourseName string     `json:"courseName"`
	Title      string     `json:"title"`
	Date       string     `json:"date"`
	Duration   int        `json:"duration"`
	Room       string     `json:"room,omitempty"`
	Format     ExamFormat `json:"format"`
	Notes      string     `json:"notes,omitempty"`
	Completed  bool       `json:"completed"`
	CreatedAt  string     `json:"createdAt"`
}
