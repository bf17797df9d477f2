package service

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
	appErrors "github.com/noah-isme/smart-timetable-api/pkg/errors"
	"github.com/noah-isme/smart-timetable-api/pkg/export"
)

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type courseLister interface {
	List() []models.Course
}

type attendanceStats interface {
	TotalAttendance() dto.AttendanceTotals
	CourseAttendance(courseID int64) (dto.CourseAttendance, error)
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	Filename string
	Format   ExportFormat
}

// ExportService renders the weekly timetable and the attendance report into
// downloadable files.
type ExportService struct {
	courses  courseLister
	settings settingsReader
	stats    attendanceStats
	storage  fileStorage
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(courses courseLister, settings settingsReader, stats attendanceStats, storage fileStorage, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		courses:  courses,
		settings: settings,
		stats:    stats,
		storage:  storage,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// Timetable renders the grid of one semester week.
func (s *ExportService) Timetable(week int, format ExportFormat) (*ExportResult, error) {
	cal := NewCalendar(s.settings.Get())
	dataset := s.timetableDataset(cal, week)
	title := fmt.Sprintf("Timetable week %d (%s)", week, strings.Join(dayRange(cal, week), " - "))
	return s.render(dataset, title, fmt.Sprintf("timetable-week-%d", week), format)
}

// Attendance renders the per-course attendance report.
func (s *ExportService) Attendance(format ExportFormat) (*ExportResult, error) {
	headers := []string{"Course", "Total", "Attended", "Present", "Late", "Absent", "Unmarked", "Rate"}
	rows := make([]map[string]string, 0)
	for _, c := range s.courses.List() {
		if c.IsNote() {
			continue
		}
		ca, err := s.stats.CourseAttendance(c.ID)
		if err != nil {
			continue
		}
		rows = append(rows, map[string]string{
			"Course":   ca.CourseName,
			"Total":    fmt.Sprintf("%d", ca.Totals.Total),
			"Attended": fmt.Sprintf("%d", ca.Totals.Attended),
			"Present":  fmt.Sprintf("%d", ca.Totals.Present),
			"Late":     fmt.Sprintf("%d", ca.Totals.Late),
			"Absent":   fmt.Sprintf("%d", ca.Totals.Absent),
			"Unmarked": fmt.Sprintf("%d", ca.Totals.Unmarked),
			"Rate":     fmt.Sprintf("%d%%", ca.Totals.Rate),
		})
	}
	dataset := export.Dataset{Headers: headers, Rows: rows}
	return s.render(dataset, "Attendance report", "attendance-report", format)
}

// Open returns a previously rendered file.
func (s *ExportService) Open(filename string) (*os.File, error) {
	file, err := s.storage.Open(filename)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export file not found")
	}
	return file, nil
}

func (s *ExportService) render(dataset export.Dataset, title, slug string, format ExportFormat) (*ExportResult, error) {
	var (
		payload []byte
		err     error
		ext     string
	)
	switch format {
	case FormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		ext = "pdf"
	case FormatCSV, "":
		payload, err = s.csv.Render(dataset)
		ext = "csv"
		format = FormatCSV
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	filename := fmt.Sprintf("%s-%s.%s", slug, uuid.NewString(), ext)
	if _, err := s.storage.Save(filename, payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store export")
	}
	s.logger.Info("export rendered", zap.String("file", filename), zap.String("format", string(format)))
	return &ExportResult{Filename: filename, Format: format}, nil
}

// timetableDataset lays the week out as one row per period with one column
// per weekday, mirroring the grid the web client renders.
func (s *ExportService) timetableDataset(cal Calendar, week int) export.Dataset {
	display := cal.DatesForWeekDisplay(week)
	headers := make([]string, 0, 8)
	headers = append(headers, "Period")
	for i, label := range models.WeekdayLabels {
		headers = append(headers, fmt.Sprintf("%s %s", label, display[i]))
	}

	grid := make(map[int]map[int]string)
	for _, c := range s.courses.List() {
		if c.IsNote() || !c.ScheduledOn(week) {
			continue
		}
		dayIdx := models.WeekdayIndex(c.Day)
		cell := c.Name
		if c.Room != "" {
			cell = fmt.Sprintf("%s (%s)", c.Name, c.Room)
		}
		for p := c.StartPeriod; p < c.StartPeriod+c.PeriodCount; p++ {
			if grid[p] == nil {
				grid[p] = make(map[int]string)
			}
			grid[p][dayIdx] = cell
		}
	}

	rows := make([]map[string]string, 0, 15)
	for p := 1; p <= 15; p++ {
		row := map[string]string{"Period": fmt.Sprintf("%d (%s)", p, PeriodTime(p))}
		for i := range models.WeekdayLabels {
			row[headers[i+1]] = grid[p][i]
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func dayRange(cal Calendar, week int) []string {
	display := cal.DatesForWeekDisplay(week)
	return []string{display[0], display[6]}
}
