package schedule

import "time"

// MaxScanDays bounds the day-by-day scan so a pathological window cannot
// run away. Hitting the bound is reported via Expansion.Truncated rather
// than losing dates silently.
const MaxScanDays = 1000

// Expansion is the concrete outcome of expanding a Recurrence: every
// delivery timestamp inside the window, in ascending scan order.
type Expansion struct {
	Dates     []time.Time
	Truncated bool
}

func (e Expansion) IsEmpty() bool {
	return len(e.Dates) == 0
}

// Expand walks the window one calendar day at a time, both endpoints
// inclusive, and emits one timestamp per matching day per time of day.
// A timestamp is kept only if it still falls within [start, end] after
// the clock time is applied; a time of day on the boundary day can push
// it outside the window.
func (r Recurrence) Expand() Expansion {
	var dates []time.Time
	truncated := false

	day := startOfDay(r.start)
	endDay := startOfDay(r.end)

	for scanned := 0; !day.After(endDay); scanned++ {
		if scanned >= MaxScanDays {
			truncated = true
			break
		}

		if r.matches(day) {
			for _, tod := range r.timesInDay {
				ts := tod.On(day)
				if !ts.Before(r.start) && !ts.After(r.end) {
					dates = append(dates, ts)
				}
			}
			if r.frequency == FrequencyOnce {
				break
			}
		}

		day = day.AddDate(0, 0, 1)
	}

	return Expansion{Dates: dates, Truncated: truncated}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
