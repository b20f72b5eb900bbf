package stats

import "time"

// weekDays is the fixed span of the week view.
const weekDays = 7

// Transition marks a course change on a specific day.
type Transition struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TimeSeries is a chart-ready series: ordered date-key labels, values of
// equal length in positional correspondence, and a sparse map of
// course-transition markers keyed by label.
type TimeSeries struct {
	Labels      []string              `json:"labels"`
	Values      []float64             `json:"values"`
	Transitions map[string]Transition `json:"transitions,omitempty"`
}

// fullRange spans the first through last active day. Returns a zero
// window and false when no day has activity.
func fullRange(daily []DailyAggregate) (Window, bool) {
	if len(daily) == 0 {
		return Window{}, false
	}
	first, err := time.ParseInLocation(dayKeyLayout, daily[0].Date, time.Local)
	if err != nil {
		return Window{}, false
	}
	last, err := time.ParseInLocation(dayKeyLayout, daily[len(daily)-1].Date, time.Local)
	if err != nil {
		return Window{}, false
	}
	return NewWindow(first, last), true
}

func indexByDate(daily []DailyAggregate) map[string]DailyAggregate {
	byDate := make(map[string]DailyAggregate, len(daily))
	for _, d := range daily {
		byDate[d.Date] = d
	}
	return byDate
}

// projectTransitions copies the transition markers that fall inside the
// produced label range onto the output map.
func projectTransitions(daily []DailyAggregate, labels []string) map[string]Transition {
	inRange := make(map[string]bool, len(labels))
	for _, l := range labels {
		inRange[l] = true
	}

	var out map[string]Transition
	for _, d := range daily {
		if !d.CourseTransition || !inRange[d.Date] {
			continue
		}
		if out == nil {
			out = make(map[string]Transition)
		}
		out[d.Date] = Transition{From: d.FromCourse, To: d.ToCourse}
	}
	return out
}

// cumulativeSeries zero-fills the full first-to-last active range and
// accumulates the chosen per-day statistic. A missing day contributes
// the additive identity, so the series is contiguous and, for
// non-negative inputs, non-decreasing.
func cumulativeSeries(daily []DailyAggregate, value func(DailyAggregate) float64) TimeSeries {
	window, ok := fullRange(daily)
	if !ok {
		return TimeSeries{}
	}
	byDate := indexByDate(daily)

	var series TimeSeries
	running := 0.0
	for _, day := range window.Days() {
		key := DayKey(day)
		if agg, ok := byDate[key]; ok {
			running += value(agg)
		}
		series.Labels = append(series.Labels, key)
		series.Values = append(series.Values, running)
	}
	series.Transitions = projectTransitions(daily, series.Labels)
	return series
}

// CumulativeXPSeries is the running XP total over the zero-filled
// calendar range from first to last active day.
func CumulativeXPSeries(s Snapshot) TimeSeries {
	return cumulativeSeries(s.Daily, func(d DailyAggregate) float64 { return float64(d.XP) })
}

// CumulativeCountSeries is the running activity count over the same
// zero-filled range.
func CumulativeCountSeries(s Snapshot) TimeSeries {
	return cumulativeSeries(s.Daily, func(d DailyAggregate) float64 { return float64(d.Count) })
}

// RollingXPSeries is the trailing rolling average of daily XP, evaluated
// at every day with recorded activity. The window covers calendar days
// (missing days count zero) and shrinks at the head of the range instead
// of padding.
func RollingXPSeries(s Snapshot, windowDays int) TimeSeries {
	return rollingSeries(s.Daily, windowDays, func(sum tally, span int) float64 {
		return round1(float64(sum.xp) / float64(span))
	})
}

// RollingAttainmentSeries is the trailing rolling attainment rate
// (earned over possible, diagnostic-adjusted), evaluated at active days
// with the same shrinking head window.
func RollingAttainmentSeries(s Snapshot, windowDays int) TimeSeries {
	return rollingSeries(s.Daily, windowDays, func(sum tally, span int) float64 {
		return percent(sum.earned, sum.possible)
	})
}

type tally struct {
	xp       int
	earned   int
	possible int
}

func rollingSeries(daily []DailyAggregate, windowDays int, value func(tally, int) float64) TimeSeries {
	window, ok := fullRange(daily)
	if !ok {
		return TimeSeries{}
	}
	if windowDays < 1 {
		windowDays = weekDays
	}
	byDate := indexByDate(daily)

	var series TimeSeries
	for _, d := range daily {
		day, err := time.ParseInLocation(dayKeyLayout, d.Date, time.Local)
		if err != nil {
			continue
		}

		span := window.Index(day) + 1
		if span > windowDays {
			span = windowDays
		}

		var sum tally
		for offset := 0; offset < span; offset++ {
			key := DayKey(day.AddDate(0, 0, -offset))
			if agg, ok := byDate[key]; ok {
				sum.xp += agg.XP
				sum.earned += agg.TotalEarned
				sum.possible += agg.TotalPossible
			}
		}

		series.Labels = append(series.Labels, d.Date)
		series.Values = append(series.Values, value(sum, span))
	}
	series.Transitions = projectTransitions(daily, series.Labels)
	return series
}

// windowedXPSeries zero-fills daily XP over an arbitrary fixed window.
func windowedXPSeries(daily []DailyAggregate, window Window) TimeSeries {
	byDate := indexByDate(daily)

	var series TimeSeries
	for _, day := range window.Days() {
		key := DayKey(day)
		xp := 0.0
		if agg, ok := byDate[key]; ok {
			xp = float64(agg.XP)
		}
		series.Labels = append(series.Labels, key)
		series.Values = append(series.Values, xp)
	}
	series.Transitions = projectTransitions(daily, series.Labels)
	return series
}

// WeekXPSeries is daily (or cumulative daily) XP over the fixed
// seven-calendar-day window ending on the day containing ref.
func WeekXPSeries(s Snapshot, ref time.Time, cumulative bool) TimeSeries {
	return weekSeries(s.Daily, ref, cumulative, func(d DailyAggregate) float64 {
		return float64(d.XP)
	})
}

// WeekCountSeries is daily (or cumulative daily) activity count over the
// same fixed window.
func WeekCountSeries(s Snapshot, ref time.Time, cumulative bool) TimeSeries {
	return weekSeries(s.Daily, ref, cumulative, func(d DailyAggregate) float64 {
		return float64(d.Count)
	})
}

func weekSeries(daily []DailyAggregate, ref time.Time, cumulative bool, value func(DailyAggregate) float64) TimeSeries {
	window := LastNDays(weekDays, ref)
	byDate := indexByDate(daily)

	var series TimeSeries
	running := 0.0
	for _, day := range window.Days() {
		key := DayKey(day)
		v := 0.0
		if agg, ok := byDate[key]; ok {
			v = value(agg)
		}
		if cumulative {
			running += v
			v = running
		}
		series.Labels = append(series.Labels, key)
		series.Values = append(series.Values, v)
	}
	series.Transitions = projectTransitions(daily, series.Labels)
	return series
}

// WeekAttainmentSeries is the daily attainment rate over the fixed
// seven-day window. Days without activity display 100, a visualization
// convention for the week view, not a claim of actual performance.
func WeekAttainmentSeries(s Snapshot, ref time.Time) TimeSeries {
	window := LastNDays(weekDays, ref)
	byDate := indexByDate(s.Daily)

	var series TimeSeries
	for _, day := range window.Days() {
		key := DayKey(day)
		rate := 100.0
		if agg, ok := byDate[key]; ok && agg.TotalPossible > 0 {
			rate = percent(agg.TotalEarned, agg.TotalPossible)
		}
		series.Labels = append(series.Labels, key)
		series.Values = append(series.Values, rate)
	}
	series.Transitions = projectTransitions(s.Daily, series.Labels)
	return series
}
