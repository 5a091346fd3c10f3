package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWeekday   = errors.New("invalid weekday name")
)

// TimeOfDay is a wall-clock delivery time within a day.
type TimeOfDay struct {
	hour   int
	minute int
}

// NewTimeOfDay parses a 24-hour "HH:MM" string. Malformed input is
// rejected outright rather than defaulting to noon.
func NewTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	return TimeOfDay{hour: hour, minute: minute}, nil
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// On places the time of day onto the given calendar day, in that day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.hour, t.minute, 0, 0, day.Location())
}

// DaySet is a set of weekdays, built from case-insensitive weekday names.
type DaySet struct {
	days map[time.Weekday]bool
}

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func NewDaySet(names []string) (DaySet, error) {
	days := make(map[time.Weekday]bool, len(names))
	for _, name := range names {
		day, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return DaySet{}, ErrInvalidWeekday
		}
		days[day] = true
	}
	return DaySet{days: days}, nil
}

func (d DaySet) Contains(w time.Weekday) bool {
	return d.days[w]
}

func (d DaySet) IsEmpty() bool {
	return len(d.days) == 0
}

// Names returns the contained weekdays as lowercase names, Sunday first.
func (d DaySet) Names() []string {
	names := make([]string, 0, len(d.days))
	for w := time.Sunday; w <= time.Saturday; w++ {
		if d.days[w] {
			names = append(names, strings.ToLower(w.String()))
		}
	}
	return names
}

// Money is an amount in integer cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyBy(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

// SplitEvenly divides the amount into n parts that sum exactly to the
// original. The remainder cents go to the earliest parts, so parts differ
// by at most one cent.
func (m Money) SplitEvenly(n int) []Money {
	if n <= 0 {
		return nil
	}

	base := m.cents / int64(n)
	remainder := m.cents % int64(n)

	parts := make([]Money, n)
	for i := range parts {
		cents := base
		if int64(i) < remainder {
			cents++
		}
		parts[i] = Money{cents: cents}
	}
	return parts
}
