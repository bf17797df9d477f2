package dto

// WeekDates lists the seven dates of a week in both required encodings,
// rendered from the same computed dates.
type WeekDates struct {
	Week    int       `json:"week"`
	ISO     [7]string `json:"iso"`
	Display [7]string `json:"display"`
}

// CurrentWeek reports where "now" falls in the semester. InSemester is false
// before the configured start date, in which case Week is meaningless.
type CurrentWeek struct {
	Week       int    `json:"week"`
	InSemester bool   `json:"inSemester"`
	Today      string `json:"today"`
}

// ParseWeeksRequest previews the week range mini-language.
type ParseWeeksRequest struct {
	Text string `json:"text" validate:"required"`
}

// ParseWeeksResponse returns the parsed ascending week list.
type ParseWeeksResponse struct {
	Text  string `json:"text"`
	Weeks []int  `json:"weeks"`
}
