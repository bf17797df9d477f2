package dto

import "github.com/noah-isme/smart-timetable-api/internal/models"

// UpcomingSession describes the globally nearest future session across the
// whole timetable.
type UpcomingSession struct {
	CourseID   int64  `json:"courseId"`
	CourseName string `json:"courseName"`
	Room       string `json:"room,omitempty"`
	Week       int    `json:"week"`
	DayLabel   string `json:"dayLabel"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	Until      string `json:"until"`
}

// WeekStats summarises one semester week. FavoritesCount and Holidays are
// document-wide, not filtered to the week: the week view shows the global
// favorites tally and the full holiday list next to the per-week numbers.
type WeekStats struct {
	Week           int              `json:"week"`
	TotalCourses   int              `json:"totalCourses"`
	TotalPeriods   int              `json:"totalPeriods"`
	Hours          int              `json:"hours"`
	FavoritesCount int              `json:"favoritesCount"`
	Holidays       []models.Holiday `json:"holidays"`
	IsHolidayWeek  bool             `json:"isHolidayWeek"`
	LoadByDay      [7]int           `json:"loadByDay"`
	NextUpcoming   *UpcomingSession `json:"nextUpcoming,omitempty"`
}

// WeekLoad is one row of the semester breakdown.
type WeekLoad struct {
	Week    int `json:"week"`
	Courses int `json:"courses"`
	Periods int `json:"periods"`
	Hours   int `json:"hours"`
}

// SemesterStats aggregates the whole semester window.
type SemesterStats struct {
	TotalCourses           int        `json:"totalCourses"`
	TotalPeriods           int        `json:"totalPeriods"`
	Hours                  int        `json:"hours"`
	FavoritesCount         int        `json:"favoritesCount"`
	TotalScheduledSessions int        `json:"totalScheduledSessions"`
	WeeklyBreakdown        []WeekLoad `json:"weeklyBreakdown"`
}

// AttendanceTotals counts past, non-holiday sessions by mark.
type AttendanceTotals struct {
	Total    int `json:"total"`
	Attended int `json:"attended"`
	Present  int `json:"present"`
	Late     int `json:"late"`
	Absent   int `json:"absent"`
	Unmarked int `json:"unmarked"`
	Rate     int `json:"rate"`
}

// CourseAttendance pairs a course with its attendance totals.
type CourseAttendance struct {
	CourseID   int64            `json:"courseId"`
	CourseName string           `json:"courseName"`
	Totals     AttendanceTotals `json:"totals"`
}

// SessionRecord is one past session of a course with its recorded mark, or
// "unmarked" when no record exists.
type SessionRecord struct {
	Date   string `json:"date"`
	Week   int    `json:"week"`
	Status string `json:"status"`
}
