package schedule

import (
	"errors"
	"time"
)

var (
	ErrNoTimesInDay   = errors.New("at least one delivery time is required")
	ErrWindowInverted = errors.New("end date must not precede start date")
)

// Recurrence describes how delivery dates repeat inside a bounded window.
// DaysOfWeek is consulted only for weekly schedules.
type Recurrence struct {
	frequency  Frequency
	start      time.Time
	end        time.Time
	daysOfWeek DaySet
	timesInDay []TimeOfDay
}

func NewRecurrence(frequency Frequency, start, end time.Time, daysOfWeek DaySet, timesInDay []TimeOfDay) (Recurrence, error) {
	if !frequency.IsValid() {
		return Recurrence{}, ErrInvalidFrequency
	}
	if len(timesInDay) == 0 {
		return Recurrence{}, ErrNoTimesInDay
	}
	if end.Before(start) {
		return Recurrence{}, ErrWindowInverted
	}

	times := make([]TimeOfDay, len(timesInDay))
	copy(times, timesInDay)

	return Recurrence{
		frequency:  frequency,
		start:      start,
		end:        end,
		daysOfWeek: daysOfWeek,
		timesInDay: times,
	}, nil
}

func (r Recurrence) Frequency() Frequency { return r.frequency }
func (r Recurrence) Start() time.Time     { return r.start }
func (r Recurrence) End() time.Time       { return r.end }
func (r Recurrence) DaysOfWeek() DaySet   { return r.daysOfWeek }

func (r Recurrence) TimesInDay() []TimeOfDay {
	times := make([]TimeOfDay, len(r.timesInDay))
	copy(times, r.timesInDay)
	return times
}

func (r Recurrence) matches(day time.Time) bool {
	switch r.frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return r.daysOfWeek.Contains(day.Weekday())
	case FrequencyMonthly:
		// Naive day-of-month equality: months without the start day
		// (e.g. day 31 in February) are skipped, matching the storefront.
		return day.Day() == r.start.Day()
	case FrequencyOnce:
		return sameCalendarDay(day, r.start)
	default:
		return false
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
