package repository

import (
	"github.com/noah-isme/smart-timetable-api/internal/models"
)

// CourseRepository provides typed access to the course list inside the store.
type CourseRepository struct {
	store *Store
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(store *Store) *CourseRepository {
	return &CourseRepository{store: store}
}

// List returns all courses.
func (r *CourseRepository) List() []models.Course {
	return r.store.Snapshot().Courses
}

// Get returns the course with the given id.
func (r *CourseRepository) Get(id int64) (models.Course, bool) {
	for _, c := range r.store.Snapshot().Courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// Upsert inserts the course or replaces the entry sharing its id.
func (r *CourseRepository) Upsert(course models.Course) error {
	return r.store.Update(func(d *models.PlannerData) error {
		for i, c := range d.Courses {
			if c.ID == course.ID {
				d.Courses[i] = course
				return nil
			}
		}
		d.Courses = append(d.Courses, course)
		return nil
	})
}

// Delete removes the course. Assignments, exams and attendance records
// referencing it are intentionally left in place.
func (r *CourseRepository) Delete(id int64) error {
	return r.store.Update(func(d *models.PlannerData) error {
		kept := d.Courses[:0]
		for _, c := range d.Courses {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		d.Courses = kept

		favs := d.Favorites[:0]
		for _, f := range d.Favorites {
			if f != id {
				favs = append(favs, f)
			}
		}
		d.Favorites = favs
		return nil
	})
}

// SetFavorite flips the favourite state of a course, keeping the id list and
// the per-course flag in sync (both encodings exist in the document format).
func (r *CourseRepository) SetFavorite(id int64, favorite bool) error {
	return r.store.Update(func(d *models.PlannerData) error {
		found := false
		for i, c := range d.Courses {
			if c.ID == id {
				d.Courses[i].IsFavorite = favorite
				found = true
			}
		}
		if !found {
			return errNotFound
		}

		favs := d.Favorites[:0]
		for _, f := range d.Favorites {
			if f != id {
				favs = append(favs, f)
			}
		}
		if favorite {
			favs = append(favs, id)
		}
		d.Favorites = favs
		return nil
	})
}
