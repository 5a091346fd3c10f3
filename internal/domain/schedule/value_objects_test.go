//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"lunchbox/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		cases := []struct {
			input  string
			hour   int
			minute int
		}{
			{"00:00", 0, 0},
			{"09:05", 9, 5},
			{"12:30", 12, 30},
			{"23:59", 23, 59},
			{" 08:15 ", 8, 15},
		}
		for _, tc := range cases {
			t.Run(tc.input, func(t *testing.T) {
				tod, err := schedule.NewTimeOfDay(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.hour, tod.Hour())
				assert.Equal(t, tc.minute, tod.Minute())
			})
		}
	})

	t.Run("malformed input is rejected, never defaulted", func(t *testing.T) {
		for _, input := range []string{
			"",
			"12",
			"12:30:00",
			"24:00",
			"12:60",
			"-1:00",
			"ab:cd",
			"12:3x",
			"noon",
		} {
			t.Run(input, func(t *testing.T) {
				_, err := schedule.NewTimeOfDay(input)
				assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
			})
		}
	})

	t.Run("String round-trips zero padded", func(t *testing.T) {
		tod, err := schedule.NewTimeOfDay("7:5")
		require.NoError(t, err)
		assert.Equal(t, "07:05", tod.String())
	})

	t.Run("On places the clock time onto the day", func(t *testing.T) {
		tod, err := schedule.NewTimeOfDay("12:30")
		require.NoError(t, err)

		day := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		ts := tod.On(day)
		assert.Equal(t, time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC), ts)
	})
}

func TestNewDaySet(t *testing.T) {
	t.Run("case insensitive names", func(t *testing.T) {
		ds, err := schedule.NewDaySet([]string{"Monday", "FRIDAY", "sunday"})
		require.NoError(t, err)
		assert.True(t, ds.Contains(time.Monday))
		assert.True(t, ds.Contains(time.Friday))
		assert.True(t, ds.Contains(time.Sunday))
		assert.False(t, ds.Contains(time.Tuesday))
	})

	t.Run("unknown name fails", func(t *testing.T) {
		_, err := schedule.NewDaySet([]string{"monday", "funday"})
		assert.ErrorIs(t, err, schedule.ErrInvalidWeekday)
	})

	t.Run("empty set", func(t *testing.T) {
		ds, err := schedule.NewDaySet(nil)
		require.NoError(t, err)
		assert.True(t, ds.IsEmpty())
		assert.Empty(t, ds.Names())
	})

	t.Run("Names returns lowercase, Sunday first", func(t *testing.T) {
		ds, err := schedule.NewDaySet([]string{"Wednesday", "Sunday", "monday"})
		require.NoError(t, err)
		assert.Equal(t, []string{"sunday", "monday", "wednesday"}, ds.Names())
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		ds, err := schedule.NewDaySet([]string{"monday", "Monday", " monday "})
		require.NoError(t, err)
		assert.Equal(t, []string{"monday"}, ds.Names())
	})
}

func TestMoneySplitEvenly(t *testing.T) {
	t.Run("divides exactly when possible", func(t *testing.T) {
		parts := schedule.NewMoney(900).SplitEvenly(3)
		require.Len(t, parts, 3)
		for _, p := range parts {
			assert.Equal(t, int64(300), p.Cents())
		}
	})

	t.Run("remainder cents go to the earliest parts", func(t *testing.T) {
		parts := schedule.NewMoney(1000).SplitEvenly(3)
		require.Len(t, parts, 3)
		assert.Equal(t, int64(334), parts[0].Cents())
		assert.Equal(t, int64(333), parts[1].Cents())
		assert.Equal(t, int64(333), parts[2].Cents())
	})

	t.Run("parts always sum to the original", func(t *testing.T) {
		for _, total := range []int64{0, 1, 99, 100, 101, 12345} {
			for n := 1; n <= 7; n++ {
				parts := schedule.NewMoney(total).SplitEvenly(n)
				require.Len(t, parts, n)

				var sum int64
				for _, p := range parts {
					sum += p.Cents()
				}
				assert.Equal(t, total, sum, "total=%d n=%d", total, n)
			}
		}
	})

	t.Run("parts differ by at most one cent", func(t *testing.T) {
		parts := schedule.NewMoney(1003).SplitEvenly(4)
		minCents, maxCents := parts[0].Cents(), parts[0].Cents()
		for _, p := range parts {
			if p.Cents() < minCents {
				minCents = p.Cents()
			}
			if p.Cents() > maxCents {
				maxCents = p.Cents()
			}
		}
		assert.LessOrEqual(t, maxCents-minCents, int64(1))
	})

	t.Run("non-positive part count yields nil", func(t *testing.T) {
		assert.Nil(t, schedule.NewMoney(500).SplitEvenly(0))
		assert.Nil(t, schedule.NewMoney(500).SplitEvenly(-1))
	})
}

func TestMoneyArithmetic(t *testing.T) {
	a := schedule.NewMoney(150)
	b := schedule.NewMoney(250)

	assert.Equal(t, int64(400), a.Add(b).Cents())
	assert.Equal(t, int64(450), a.MultiplyBy(3).Cents())
	assert.InDelta(t, 1.5, a.Dollars(), 0.0001)
	assert.False(t, a.IsNegative())
	assert.True(t, schedule.NewMoney(-1).IsNegative())
}
