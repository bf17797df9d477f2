package models

import "strconv"

// AttendanceStatus enumerates the tri-state mark for a past session. The
// absence of a record means "unmarked", which is distinct from absent.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Valid reports whether the status is one of the three known marks.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// Attended reports whether the mark counts toward the attended total.
// Late arrivals still count as attended.
func (s AttendanceStatus) Attended() bool {
	return s == AttendancePresent || s == AttendanceLate
}

// AttendanceRecord is a single mark for one course session.
type AttendanceRecord struct {
	Status    AttendanceStatus `json:"status"`
	Timestamp string           `json:"timestamp"`
}

// AttendanceLog maps course id (as a decimal string, matching the JSON
// document) to ISO date to record.
type AttendanceLog map[string]map[string]AttendanceRecord

// Lookup returns the record for (courseID, isoDate) if one exists.
func (l AttendanceLog) Lookup(courseID int64, isoDate string) (AttendanceRecord, bool) {
	byDate, ok := l[AttendanceKey(courseID)]
	if !ok {
		return AttendanceRecord{}, false
	}
	rec, ok := byDate[isoDate]
	return rec, ok
}

// AttendanceKey renders a course id the way the persisted document keys it.
func AttendanceKey(courseID int64) string {
	return strconv.FormatInt(courseID, 10)
}
