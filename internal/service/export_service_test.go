package service

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
	"github.com/noah-isme/smart-timetable-api/internal/models"
)

type courseListerStub struct {
	courses []models.Course
}

func (s *courseListerStub) List() []models.Course {
	return s.courses
}

type attendanceStatsStub struct {
	byCourse map[int64]dto.CourseAttendance
}

func (s *attendanceStatsStub) TotalAttendance() dto.AttendanceTotals {
	return dto.AttendanceTotals{}
}

func (s *attendanceStatsStub) CourseAttendance(courseID int64) (dto.CourseAttendance, error) {
	ca, ok := s.byCourse[courseID]
	if !ok {
		return dto.CourseAttendance{}, assert.AnError
	}
	return ca, nil
}

type fileStorageStub struct {
	saved map[string][]byte
}

func (s *fileStorageStub) Save(filename string, data []byte) (string, error) {
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[filename] = data
	return filename, nil
}

func (s *fileStorageStub) Open(filename string) (*os.File, error) {
	return nil, os.ErrNotExist
}

func (s *fileStorageStub) Delete(filename string) error { return nil }

func (s *fileStorageStub) CleanupOlderThan(ttl time.Duration) ([]string, error) {
	return nil, nil
}

func TestExportServiceTimetableCSV(t *testing.T) {
	courses := &courseListerStub{courses: []models.Course{
		{ID: 1, Name: "Databases", Day: models.DayMonday, StartPeriod: 1, PeriodCount: 2, Room: "B101", Weeks: []int{22}},
		{ID: 2, Name: "Reading list", Day: models.DayNote},
	}}
	storage := &fileStorageStub{}
	svc := NewExportService(courses, &settingsReaderStub{}, &attendanceStatsStub{}, storage, nil)

	result, err := svc.Timetable(22, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, result.Format)
	assert.True(t, strings.HasPrefix(result.Filename, "timetable-week-22-"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	payload := string(storage.saved[result.Filename])
	lines := strings.Split(strings.TrimSpace(payload), "\n")
	// one header line plus one row per period
	require.Len(t, lines, 16)
	assert.Contains(t, lines[0], "Mon 26/01")
	assert.Contains(t, lines[1], "Databases (B101)")
	assert.Contains(t, lines[2], "Databases (B101)")
	assert.NotContains(t, lines[3], "Databases")
	assert.NotContains(t, payload, "Reading list")
}

func TestExportServiceAttendanceSkipsNotesAndUnknown(t *testing.T) {
	courses := &courseListerStub{courses: []models.Course{
		{ID: 1, Name: "Databases", Day: models.DayMonday},
		{ID: 2, Name: "Reading list", Day: models.DayNote},
		{ID: 3, Name: "Orphan", Day: models.DayTuesday},
	}}
	stats := &attendanceStatsStub{byCourse: map[int64]dto.CourseAttendance{
		1: {CourseID: 1, CourseName: "Databases", Totals: dto.AttendanceTotals{Total: 3, Attended: 2, Present: 1, Late: 1, Absent: 1, Rate: 67}},
	}}
	storage := &fileStorageStub{}
	svc := NewExportService(courses, &settingsReaderStub{}, stats, storage, nil)

	result, err := svc.Attendance(FormatCSV)
	require.NoError(t, err)

	payload := string(storage.saved[result.Filename])
	lines := strings.Split(strings.TrimSpace(payload), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Databases")
	assert.Contains(t, lines[1], "67%")
}

func TestExportServiceUnknownFormat(t *testing.T) {
	svc := NewExportService(&courseListerStub{}, &settingsReaderStub{}, &attendanceStatsStub{}, &fileStorageStub{}, nil)

	_, err := svc.Timetable(22, ExportFormat("xlsx"))
	require.Error(t, err)
}

func TestExportServiceEmptyFormatDefaultsToCSV(t *testing.T) {
	storage := &fileStorageStub{}
	svc := NewExportService(&courseListerStub{}, &settingsReaderStub{}, &attendanceStatsStub{}, storage, nil)

	result, err := svc.Attendance("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, result.Format)
}
