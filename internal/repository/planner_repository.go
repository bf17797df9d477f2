package repository

import (
	"github.com/noah-isme/smart-timetable-api/internal/models"
)

// AssignmentRepository provides typed access to the assignment list.
type AssignmentRepository struct {
	store *Store
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(store *Store) *AssignmentRepository {
	return &AssignmentRepository{store: store}
}

// List returns all assignments.
func (r *AssignmentRepository) List() []models.Assignment {
	return r.store.Snapshot().Assignments
}

// Get returns the assignment with the given id.
func (r *AssignmentRepository) Get(id string) (models.Assignment, bool) {
	for _, a := range r.store.Snapshot().Assignments {
		if a.ID == id {
			return a, true
		}
	}
	return models.Assignment{}, false
}

// Upsert inserts or replaces an assignment.
func (r *AssignmentRepository) Upsert(assignment models.Assignment) error {
	return r.store.Update(func(d *models.PlannerData) error {
		for i, a := range d.Assignments {
			if a.ID == assignment.ID {
				d.Assignments[i] = assignment
				return nil
			}
		}
		d.Assignments = append(d.Assignments, assignment)
		return nil
	})
}

// Delete removes an assignment.
func (r *AssignmentRepository) Delete(id string) error {
	return r.store.Update(func(d *models.PlannerData) error {
		kept := d.Assignments[:0]
		for _, a := range d.Assignments {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		d.Assignments = kept
		return nil
	})
}

// ExamRepository provides typed access to the exam list.
type ExamRepository struct {
	store *Store
}

// NewExamRepository constructs the repository.
func NewExamRepository(store *Store) *ExamRepository {
	return &ExamRepository{store: store}
}

// List returns all exams.
func (r *ExamRepository) List() []models.Exam {
	return r.store.Snapshot().Exams
}

// Get returns the exam with the given id.
func (r *ExamRepository) Get(id string) (models.Exam, bool) {
	for _, e := range r.store.Snapshot().Exams {
		if e.ID == id {
			return e, true
		}
	}
	return models.Exam{}, false
}

// Upsert inserts or replaces an exam.
func (r *ExamRepository) Upsert(exam models.Exam) error {
	return r.store.Update(func(d *models.PlannerData) error {
		for i, e := range d.Exams {
			if e.ID == exam.ID {
				d.Exams[i] = exam
				return nil
			}
		}
		d.Exams = append(d.Exams, exam)
		return nil
	})
}

// Delete removes an exam.
func (r *ExamRepository) Delete(id string) error {
	return r.store.Update(func(d *models.PlannerData) error {
		kept := d.Exams[:0]
		for _, e := range d.Exams {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		d.Exams = kept
		return nil
	})
}

// NoteRepository provides typed access to the smart note list.
type NoteRepository struct {
	store *Store
}

// NewNoteRepository constructs the repository.
func NewNoteRepository(store *Store) *NoteRepository {
	return &NoteRepository{store: store}
}

// List returns all notes.
func (r *NoteRepository) List() []models.SmartNote {
	return r.store.Snapshot().SmartNotes
}

// Get returns the note with the given id.
func (r *NoteRepository) Get(id string) (models.SmartNote, bool) {
	for _, n := range r.store.Snapshot().SmartNotes {
		if n.ID == id {
			return n, true
		}
	}
	return models.SmartNote{}, false
}

// Upsert inserts or replaces a note.
func (r *NoteRepository) Upsert(note models.SmartNote) error {
	return r.store.Update(func(d *models.PlannerData) error {
		for i, n := range d.SmartNotes {
			if n.ID == note.ID {
				d.SmartNotes[i] = note
				return nil
			}
		}
		d.SmartNotes = append(d.SmartNotes, note)
		return nil
	})
}

// Delete removes a note.
func (r *NoteRepository) Delete(id string) error {
	return r.store.Update(func(d *models.PlannerData) error {
		kept := d.SmartNotes[:0]
		for _, n := range d.SmartNotes {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		d.SmartNotes = kept
		return nil
	})
}

// SettingsRepository provides typed access to the semester settings.
type SettingsRepository struct {
	store *Store
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the current settings.
func (r *SettingsRepository) Get() models.SemesterSettings {
	return r.store.Snapshot().Settings
}

// Update persists new settings.
func (r *SettingsRepository) Update(settings models.SemesterSettings) error {
	return r.store.Update(func(d *models.PlannerData) error {
		d.Settings = settings
		return nil
	})
}
