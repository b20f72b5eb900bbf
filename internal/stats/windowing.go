package stats

import (
	"math"
	"time"
)

// dayKeyLayout is the canonical local-calendar-date key format.
const dayKeyLayout = "2006-01-02"

// DayKey converts a timestamp to its local calendar-date key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// Window is a contiguous day-granular calendar range. Both bounds are
// inclusive and snapped to the start of their day.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow creates a window with normalized day boundaries.
func NewWindow(start, end time.Time) Window {
	return Window{Start: snapToDay(start), End: snapToDay(end)}
}

// LastNDays returns the fixed window of n calendar days ending on the
// day containing ref (ref-day minus n-1 through ref-day).
func LastNDays(n int, ref time.Time) Window {
	end := snapToDay(ref)
	return Window{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

func snapToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Days returns every day start within the window, in order.
func (w Window) Days() []time.Time {
	var days []time.Time
	for current := w.Start; !current.After(w.End); current = current.AddDate(0, 0, 1) {
		days = append(days, current)
	}
	return days
}

// DayCount returns the number of calendar days in the window.
func (w Window) DayCount() int {
	return len(w.Days())
}

// Index returns the zero-based day offset of t within the window, or -1
// if t falls outside it.
func (w Window) Index(t time.Time) int {
	tNorm := snapToDay(t)
	if tNorm.Before(w.Start) || tNorm.After(w.End) {
		return -1
	}
	// Rounded hour arithmetic avoids DST-shift drift.
	return int(math.Round(tNorm.Sub(w.Start).Hours() / 24))
}
