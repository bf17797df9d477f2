package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDay(t *testing.T) {
	assert.Equal(t, DaySunday, NormalizeDay(0))
	assert.Equal(t, DayMonday, NormalizeDay(1))
	assert.Equal(t, DayMonday, NormalizeDay(2))
	assert.Equal(t, DaySunday, NormalizeDay(8))
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex(DayMonday))
	assert.Equal(t, 5, WeekdayIndex(DaySaturday))
	assert.Equal(t, 6, WeekdayIndex(DaySunday))
	assert.Equal(t, 6, WeekdayIndex(0))
	assert.Equal(t, 0, WeekdayIndex(1))
	assert.Equal(t, 0, WeekdayIndex(99))
}

func TestCourseScheduledOn(t *testing.T) {
	c := Course{Weeks: []int{22, 24}}
	assert.True(t, c.ScheduledOn(22))
	assert.False(t, c.ScheduledOn(23))
	assert.False(t, Course{}.ScheduledOn(22))
}

func TestCourseIsNote(t *testing.T) {
	assert.True(t, Course{Day: DayNote}.IsNote())
	assert.False(t, Course{Day: DayFriday}.IsNote())
}
