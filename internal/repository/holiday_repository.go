package repository

import (
	"github.com/noah-isme/smart-timetable-api/internal/models"
)

// HolidayRepository provides typed access to the holiday list.
type HolidayRepository struct {
	store *Store
}

// NewHolidayRepository constructs the repository.
func NewHolidayRepository(store *Store) *HolidayRepository {
	return &HolidayRepository{store: store}
}

// List returns all holidays.
func (r *HolidayRepository) List() []models.Holiday {
	return r.store.Snapshot().Holidays
}

// Add appends a holiday.
func (r *HolidayRepository) Add(holiday models.Holiday) error {
	return r.store.Update(func(d *models.PlannerData) error {
		d.Holidays = append(d.Holidays, holiday)
		return nil
	})
}

// Delete removes the holiday at the given position.
func (r *HolidayRepository) Delete(index int) error {
	return r.store.Update(func(d *models.PlannerData) error {
		if index < 0 || index >= len(d.Holidays) {
			return errNotFound
		}
		d.Holidays = append(d.Holidays[:index], d.Holidays[index+1:]...)
		return nil
	})
}
