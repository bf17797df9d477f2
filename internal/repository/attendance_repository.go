package repository

import (
	"github.com/noah-isme/smart-timetable-api/internal/models"
)

// AttendanceRepository provides typed access to the attendance log.
type AttendanceRepository struct {
	store *Store
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(store *Store) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

// Log returns the full attendance log.
func (r *AttendanceRepository) Log() models.AttendanceLog {
	return r.store.Snapshot().Attendance
}

// Toggle records the status for (courseID, isoDate). Recording the same
// status twice removes the mark again, so un-marking needs no extra
// operation. It returns the record now in effect, or removed=true when the
// toggle cleared it.
func (r *AttendanceRepository) Toggle(courseID int64, isoDate string, record models.AttendanceRecord) (current models.AttendanceRecord, removed bool, err error) {
	key := models.AttendanceKey(courseID)
	err = r.store.Update(func(d *models.PlannerData) error {
		byDate := d.Attendance[key]
		if byDate == nil {
			byDate = map[string]models.AttendanceRecord{}
			d.Attendance[key] = byDate
		}
		if existing, ok := byDate[isoDate]; ok && existing.Status == record.Status {
			delete(byDate, isoDate)
			removed = true
			return nil
		}
		byDate[isoDate] = record
		current = record
		return nil
	})
	return current, removed, err
}
