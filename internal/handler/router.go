package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smart-timetable-api/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Courses    *CourseHandler
	Holidays   *HolidayHandler
	Attendance *AttendanceHandler
	Dashboard  *DashboardHandler
	Calendar   *CalendarHandler
	Planner    *PlannerHandler
	Settings   *SettingsHandler
	Transfer   *TransferHandler
	Exports    *ExportHandler
	Metrics    *MetricsHandler
}

// RegisterRoutes mounts every endpoint under the API prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)
	api.Use(middleware.WithResponseMeta())

	api.GET("/courses", h.Courses.List)
	api.POST("/courses", h.Courses.Save)
	api.GET("/courses/:id", h.Courses.Get)
	api.DELETE("/courses/:id", h.Courses.Delete)
	api.PUT("/courses/:id/favorite", h.Courses.Favorite)

	api.GET("/holidays", h.Holidays.List)
	api.POST("/holidays", h.Holidays.Add)
	api.DELETE("/holidays/:index", h.Holidays.Delete)

	api.GET("/attendance", h.Attendance.Log)
	api.POST("/attendance/toggle", h.Attendance.Toggle)
	api.GET("/attendance/stats", h.Attendance.Totals)
	api.GET("/attendance/courses/:id", h.Attendance.CourseStats)
	api.GET("/attendance/courses/:id/sessions", h.Attendance.CourseSessions)

	api.GET("/dashboard/week", h.Dashboard.Week)
	api.GET("/dashboard/semester", h.Dashboard.Semester)

	api.GET("/calendar/weeks/:week", h.Calendar.WeekDates)
	api.GET("/calendar/current", h.Calendar.Current)
	api.POST("/calendar/parse-weeks", h.Calendar.ParseWeeks)
	api.GET("/calendar/periods", h.Calendar.Periods)

	api.GET("/assignments", h.Planner.ListAssignments)
	api.POST("/assignments", h.Planner.SaveAssignment)
	api.PUT("/assignments/:id/toggle", h.Planner.ToggleAssignment)
	api.DELETE("/assignments/:id", h.Planner.DeleteAssignment)

	api.GET("/exams", h.Planner.ListExams)
	api.POST("/exams", h.Planner.SaveExam)
	api.PUT("/exams/:id/toggle", h.Planner.ToggleExam)
	api.DELETE("/exams/:id", h.Planner.DeleteExam)

	api.GET("/notes", h.Planner.ListNotes)
	api.POST("/notes", h.Planner.SaveNote)
	api.PUT("/notes/:id/pin", h.Planner.TogglePin)
	api.DELETE("/notes/:id", h.Planner.DeleteNote)

	api.GET("/settings", h.Settings.Get)
	api.PUT("/settings", h.Settings.Update)

	api.GET("/transfer/export", h.Transfer.Export)
	api.POST("/transfer/import", h.Transfer.Import)

	api.POST("/exports/timetable", h.Exports.Timetable)
	api.POST("/exports/attendance", h.Exports.Attendance)
	api.GET("/exports/files/:name", h.Exports.Download)
}
