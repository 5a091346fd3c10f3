//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"lunchbox/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.NewTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func mustDaySet(t *testing.T, names ...string) schedule.DaySet {
	t.Helper()
	ds, err := schedule.NewDaySet(names)
	require.NoError(t, err)
	return ds
}

func mustRecurrence(t *testing.T, freq schedule.Frequency, start, end time.Time, days schedule.DaySet, times ...schedule.TimeOfDay) schedule.Recurrence {
	t.Helper()
	r, err := schedule.NewRecurrence(freq, start, end, days, times)
	require.NoError(t, err)
	return r
}

func date(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func TestNewRecurrence(t *testing.T) {
	noon := mustTime(t, "12:00")

	start := date(2026, time.March, 1, 0, 0)
	end := date(2026, time.March, 31, 23, 59)

	t.Run("invalid frequency", func(t *testing.T) {
		_, err := schedule.NewRecurrence("fortnightly", start, end, schedule.DaySet{}, []schedule.TimeOfDay{noon})
		assert.ErrorIs(t, err, schedule.ErrInvalidFrequency)
	})

	t.Run("no delivery times", func(t *testing.T) {
		_, err := schedule.NewRecurrence(schedule.FrequencyDaily, start, end, schedule.DaySet{}, nil)
		assert.ErrorIs(t, err, schedule.ErrNoTimesInDay)
	})

	t.Run("inverted window", func(t *testing.T) {
		_, err := schedule.NewRecurrence(schedule.FrequencyDaily, end, start, schedule.DaySet{}, []schedule.TimeOfDay{noon})
		assert.ErrorIs(t, err, schedule.ErrWindowInverted)
	})
}

func TestExpandDaily(t *testing.T) {
	noon := mustTime(t, "12:00")

	t.Run("one date per day, endpoints inclusive", func(t *testing.T) {
		r := mustRecurrence(t, schedule.FrequencyDaily,
			date(2026, time.March, 1, 0, 0), date(2026, time.March, 5, 23, 59),
			schedule.DaySet{}, noon)

		exp := r.Expand()
		require.Len(t, exp.Dates, 5)
		assert.False(t, exp.Truncated)
		assert.Equal(t, date(2026, time.March, 1, 12, 0), exp.Dates[0])
		assert.Equal(t, date(2026, time.March, 5, 12, 0), exp.Dates[4])
	})

	t.Run("time of day before window start on the first day is dropped", func(t *testing.T) {
		r := mustRecurrence(t, schedule.FrequencyDaily,
			date(2026, time.March, 1, 14, 0), date(2026, time.March, 3, 23, 59),
			schedule.DaySet{}, noon)

		exp := r.Expand()
		require.Len(t, exp.Dates, 2)
		assert.Equal(t, date(2026, time.March, 2, 12, 0), exp.Dates[0])
	})

	t.Run("time of day after window end on the last day is dropped", func(t *testing.T) {
		r := mustRecurrence(t, schedule.FrequencyDaily,
			date(2026, time.March, 1, 0, 0), date(2026, time.March, 3, 10, 0),
			schedule.DaySet{}, noon)

		exp := r.Expand()
		require.Len(t, exp.Dates, 2)
		assert.Equal(t, date(2026, time.March, 2, 12, 0), exp.Dates[1])
	})

	t.Run("timestamp exactly on the window boundary is kept", func(t *testing.T) {
		r := mustRecurrence(t, schedule.FrequencyDaily,
			date(2026, time.March, 1, 12, 0), date(2026, time.March, 2, 12, 0),
			schedule.DaySet{}, noon)

		exp := r.Expand()
		require.Len(t, exp.Dates, 2)
	})

	t.Run("multiple times per day in ascending order", func(t *testing.T) {
		r := mustRecurrence(t, schedule.FrequencyDaily,
			date(2026, time.March, 1, 0, 0), date(2026, time.March, 2, 23, 59),
			schedule.DaySet{}, mustTime(t, "08:00"), mustTime(t, "18:30"))

		exp := r.Expand()
		require.Len(t, exp.Dates, 4)
		assert.Equal(t, date(2026, time.March, 1, 8, 0), exp.Dates[0])
		assert.Equal(t, date(2026, time.March, 1, 18, 30), exp.Dates[1])
		assert.Equal(t, date(2026, time.March, 2, 8, 0), exp.Dates[2])
		assert.Equal(t, date(2026, time.March, 2, 18, 30), exp.Dates[3])
	})
}

func TestExpandWeekly(t *testing.T) {
	noon := mustTime(t, "12:00")

	t.Run("only listed weekdays match", func(t *testing.T) {
		// March 2026: the 2nd is a Monday.
		r := mustRecurrence(t, schedule.FrequencyWeekly,
			date(2026, time.March, 1, 0, 0), date(2026, time.March, 14, 23, 59),
			mustDaySet(t, "monday", "friday"), noon)

		exp := r.Expand()
		require.Len(t, exp.Dates, 4)
		assert.Equal(t, date(2026, time.March, 2, 12, 0), exp.Dates[0])
		assert.Equal(t, date(2026, time.March, 6, 12, 0), exp.Dates[1])
		assert.Equal(t, date(2026, time.March, 9, 12, 0), exp.Dates[2])
		assert.Equal(t, date(2026, time.March, 13, 12, 0), exp.Dates[3])
	})

	t.Run("empty day set matches nothing", func(t *testing.T) {
		r := mustRecurrence(t, schedule.FrequencyWeekly,
			date(2026, time.March, 1, 0, 0), date(2026, time.March, 31, 23, 59),
			schedule.DaySet{}, noon)

		exp := r.Expand()
		assert.True(t, exp.IsEmpty())
		assert.False(t, exp.Truncated)
	})
}

func TestExpandMonthly(t *testing.T) {
	noon := mustTime(t, "12:00")

	t.Run("same day of month each month", func(t *testing.T) {
		r := mustRecurrence(t, schedule.FrequencyMonthly,
			date(2026, time.January, 15, 0, 0), date(2026, time.April, 30, 23, 59),
			schedule.DaySet{}, noon)

		exp := r.Expand()
		require.Len(t, exp.Dates, 4)
		assert.Equal(t, date(2026, time.January, 15, 12, 0), exp.Dates[0])
		assert.Equal(t, date(2026, time.February, 15, 12, 0), exp.Dates[1])
		assert.Equal(t, date(2026, time.March, 15, 12, 0), exp.Dates[2])
		assert.Equal(t, date(2026, time.April, 15, 12, 0), exp.Dates[3])
	})

	t.Run("months without the start day are skipped", func(t *testing.T) {
		// Day 31 never occurs in February or April.
		r := mustRecurrence(t, schedule.FrequencyMonthly,
			date(2026, time.January, 31, 0, 0), date(2026, time.May, 31, 23, 59),
			schedule.DaySet{}, noon)

		exp := r.Expand()
		require.Len(t, exp.Dates, 3)
		assert.Equal(t, date(2026, time.January, 31, 12, 0), exp.Dates[0])
		assert.Equal(t, date(2026, time.March, 31, 12, 0), exp.Dates[1])
		assert.Equal(t, date(2026, time.May, 31, 12, 0), exp.Dates[2])
	})
}

func TestExpandOnce(t *testing.T) {
	t.Run("single day, all times", func(t *testing.T) {
		r := mustRecurrence(t, schedule.FrequencyOnce,
			date(2026, time.March, 10, 0, 0), date(2026, time.March, 20, 23, 59),
			schedule.DaySet{}, mustTime(t, "09:00"), mustTime(t, "17:00"))

		exp := r.Expand()
		require.Len(t, exp.Dates, 2)
		assert.Equal(t, date(2026, time.March, 10, 9, 0), exp.Dates[0])
		assert.Equal(t, date(2026, time.March, 10, 17, 0), exp.Dates[1])
	})

	t.Run("start time past the delivery times yields nothing", func(t *testing.T) {
		r := mustRecurrence(t, schedule.FrequencyOnce,
			date(2026, time.March, 10, 20, 0), date(2026, time.March, 20, 23, 59),
			schedule.DaySet{}, mustTime(t, "12:00"))

		exp := r.Expand()
		assert.True(t, exp.IsEmpty())
	})
}

func TestExpandTruncation(t *testing.T) {
	noon := mustTime(t, "12:00")

	t.Run("scan stops at the bound and reports truncation", func(t *testing.T) {
		start := date(2026, time.January, 1, 0, 0)
		end := start.AddDate(0, 0, schedule.MaxScanDays+500)
		r := mustRecurrence(t, schedule.FrequencyDaily, start, end, schedule.DaySet{}, noon)

		exp := r.Expand()
		assert.True(t, exp.Truncated)
		assert.Len(t, exp.Dates, schedule.MaxScanDays)
	})

	t.Run("window just inside the bound is not truncated", func(t *testing.T) {
		start := date(2026, time.January, 1, 0, 0)
		end := start.AddDate(0, 0, schedule.MaxScanDays-1)
		r := mustRecurrence(t, schedule.FrequencyDaily, start, end, schedule.DaySet{}, noon)

		exp := r.Expand()
		assert.False(t, exp.Truncated)
		assert.Len(t, exp.Dates, schedule.MaxScanDays)
	})
}

func TestExpandDeterminism(t *testing.T) {
	r := mustRecurrence(t, schedule.FrequencyWeekly,
		date(2026, time.March, 1, 0, 0), date(2026, time.June, 30, 23, 59),
		mustDaySet(t, "tuesday", "thursday"), mustTime(t, "11:30"), mustTime(t, "18:00"))

	first := r.Expand()
	second := r.Expand()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Expansion mismatch between runs (-want +got):\n%s", diff)
	}

	for i := 1; i < len(first.Dates); i++ {
		assert.True(t, first.Dates[i-1].Before(first.Dates[i]), "dates must be strictly ascending")
	}
}
