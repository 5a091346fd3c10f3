package request

import (
	"time"

	"lunchbox/internal/domain/schedule"

	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	LunchID               uuid.UUID `json:"lunch_id" binding:"required"`
	Name                  string    `json:"name" binding:"required"`
	Frequency             string    `json:"frequency" binding:"required"`
	StartDate             time.Time `json:"start_date" binding:"required"`
	EndDate               time.Time `json:"end_date" binding:"required"`
	DaysOfWeek            []string  `json:"days_of_week,omitempty"`
	TimesInDay            []string  `json:"times_in_day" binding:"required,min=1"`
	DeliveryFeeTotalCents int64     `json:"delivery_fee_total_cents"`
}

// ToDomain builds the recurrence rule and the fee budget. Weekday names
// and times are validated strictly; a malformed value fails the whole
// request rather than being silently defaulted.
func (r CreateScheduleRequest) ToDomain() (schedule.Recurrence, schedule.Money, error) {
	frequency, err := schedule.NewFrequency(r.Frequency)
	if err != nil {
		return schedule.Recurrence{}, schedule.Money{}, err
	}

	daySet, err := schedule.NewDaySet(r.DaysOfWeek)
	if err != nil {
		return schedule.Recurrence{}, schedule.Money{}, err
	}

	times := make([]schedule.TimeOfDay, 0, len(r.TimesInDay))
	for _, raw := range r.TimesInDay {
		t, err := schedule.NewTimeOfDay(raw)
		if err != nil {
			return schedule.Recurrence{}, schedule.Money{}, err
		}
		times = append(times, t)
	}

	recurrence, err := schedule.NewRecurrence(frequency, r.StartDate, r.EndDate, daySet, times)
	if err != nil {
		return schedule.Recurrence{}, schedule.Money{}, err
	}

	return recurrence, schedule.NewMoney(r.DeliveryFeeTotalCents), nil
}
