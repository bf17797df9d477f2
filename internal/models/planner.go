package models

// Default semester anchor applied when the data file or an imported document
// carries no settings.
const (
	DefaultStartDate = "2026-01-26"
	DefaultStartWeek = 22
)

// SemesterSettings anchors every week computation. StartDate is the calendar
// date of the first semester day ("yyyy-mm-dd", a Monday by convention) and
// StartWeek is the absolute week number assigned to that week. Changing the
// settings retroactively changes the meaning of every stored week number.
type SemesterSettings struct {
	StartDate string `json:"startDate"`
	StartWeek int    `json:"startWeek"`
}

// PlannerData is the whole persisted document. It mirrors the JSON blob the
// web client keeps under the "smartTimetableData" key so exports from either
// side import cleanly into the other.
type PlannerData struct {
	Courses      []Course         `json:"courses"`
	Holidays     []Holiday        `json:"holidays"`
	Favorites    []int64          `json:"favorites"`
	Assignments  []Assignment     `json:"assignments"`
	Exams        []Exam           `json:"exams"`
	Attendance   AttendanceLog    `json:"attendance"`
	SmartNotes   []SmartNote      `json:"smartNotes"`
	Settings     SemesterSettings `json:"settings"`
	Theme        string           `json:"theme"`
	GeneralNotes string           `json:"generalNotes"`
}

// DefaultPlannerData returns an empty document with default settings.
func DefaultPlannerData() PlannerData {
	data := PlannerData{}
	data.Normalize()
	return data
}

// Normalize fills in every field a partial or legacy document may lack, so
// that loaded and imported data always has the full shape.
func (d *PlannerData) Normalize() {
	if d.Courses == nil {
		d.Courses = []Course{}
	}
	if d.Holidays == nil {
		d.Holidays = []Holiday{}
	}
	if d.Favorites == nil {
		d.Favorites = []int64{}
	}
	if d.Assignments == nil {
		d.Assignments = []Assignment{}
	}
	if d.Exams == nil {
		d.Exams = []Exam{}
	}
	if d.Attendance == nil {
		d.Attendance = AttendanceLog{}
	}
	if d.SmartNotes == nil {
		d.SmartNotes = []SmartNote{}
	}
	if d.Settings.StartDate == "" {
		d.Settings.StartDate = DefaultStartDate
	}
	if d.Settings.StartWeek <= 0 {
		d.Settings.StartWeek = DefaultStartWeek
	}
	if d.Theme == "" {
		d.Theme = "light"
	}
}
