package dto

// SaveCourseRequest carries a new or edited course. Weeks may be given
// directly or as a free-text weekString; when both are present the explicit
// list wins.
type SaveCourseRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Day         int    `json:"day" validate:"min=0,max=8"`
	Room        string `json:"room"`
	Teacher     string `json:"teacher"`
	StartPeriod int    `json:"startPeriod" validate:"omitempty,min=1,max=15"`
	PeriodCount int    `json:"periodCount" validate:"omitempty,min=1,max=15"`
	Weeks       []int  `json:"weeks"`
	WeekString  string `json:"weekString"`
	Color       string `json:"color"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Notes       string `json:"notes"`
}

// FavoriteRequest flips the favourite flag of a course.
type FavoriteRequest struct {
	Favorite bool `json:"favorite"`
}
