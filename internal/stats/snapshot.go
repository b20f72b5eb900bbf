package stats

import (
	"time"

	"github.com/graubenh/mathacademy-dashboard/internal/activity"
)

// successThreshold is the minimum per-record attainment counted as a
// success.
const successThreshold = 70

// DayHighlight names a single best day and the metric that won it.
type DayHighlight struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// WeekdayHighlight names the weekday with the highest mean XP per
// activity.
type WeekdayHighlight struct {
	Weekday string  `json:"weekday"`
	MeanXP  float64 `json:"meanXP"`
}

// HourHighlight names the hour of day with the highest summed XP.
type HourHighlight struct {
	Hour int `json:"hour"`
	XP   int `json:"xp"`
}

// Snapshot is the complete statistics view over one in-scope activity
// sequence. It is derived, never stored: every call recomputes from
// scratch, so snapshots have no identity beyond the call that produced
// them.
type Snapshot struct {
	TotalXP         int                   `json:"totalXP"`
	TotalActivities int                   `json:"totalActivities"`
	CategoryCounts  map[activity.Type]int `json:"categoryCounts"`

	PerfectCount int     `json:"perfectCount"`
	PassCount    int     `json:"passCount"`
	FailCount    int     `json:"failCount"`
	SuccessRate  float64 `json:"successRate"`

	AvgXPPerDay     float64           `json:"avgXPPerDay"`
	BestDay         *DayHighlight     `json:"bestDay,omitempty"`
	BestAccuracyDay *DayHighlight     `json:"bestAccuracyDay,omitempty"`
	BestWeekday     *WeekdayHighlight `json:"bestWeekday,omitempty"`
	PeakHour        *HourHighlight    `json:"peakHour,omitempty"`

	Last14Days TimeSeries `json:"last14Days"`

	// Daily carries the per-day aggregates the snapshot was reduced
	// from, for series construction over the same scope.
	Daily []DailyAggregate `json:"daily"`
}

// ComputeSnapshot reduces an activity sequence to its Snapshot, with the
// current clock anchoring the last-14-days window.
func ComputeSnapshot(activities []activity.Activity) Snapshot {
	return ComputeSnapshotAt(activities, time.Now())
}

// ComputeSnapshotAt is ComputeSnapshot with an explicit reference time.
// Empty input yields the zero-valued snapshot rather than failing.
func ComputeSnapshotAt(activities []activity.Activity, ref time.Time) Snapshot {
	snap := Snapshot{
		CategoryCounts: make(map[activity.Type]int),
	}
	if len(activities) == 0 {
		return snap
	}

	snap.Daily = GroupByDay(activities)
	snap.TotalActivities = len(activities)

	var totalEarned, totalPossible int
	for _, a := range activities {
		snap.TotalXP += a.Earned
		totalEarned += a.Earned
		totalPossible += possibleXP(a)

		if a.Type != activity.Unclassified {
			snap.CategoryCounts[a.Type]++
		}

		// Outcome partition. Diagnostics pass on any earned XP since
		// they have no target to clear; graded work that beats its
		// nominal possible counts as perfect.
		switch {
		case a.Type == activity.Diagnostic:
			if a.Earned > 0 {
				snap.PassCount++
			} else {
				snap.FailCount++
			}
		case a.Earned > a.Base:
			snap.PerfectCount++
		case a.Earned > 0:
			snap.PassCount++
		default:
			snap.FailCount++
		}
	}

	snap.SuccessRate = percent(totalEarned, totalPossible)
	snap.AvgXPPerDay = round1(float64(snap.TotalXP) / float64(len(snap.Daily)))

	snap.BestDay = bestDayByXP(snap.Daily)
	snap.BestAccuracyDay = bestDayByAccuracy(activities)
	snap.BestWeekday = bestWeekday(activities)
	snap.PeakHour = peakHour(activities)
	snap.Last14Days = windowedXPSeries(snap.Daily, LastNDays(14, ref))

	return snap
}

func bestDayByXP(daily []DailyAggregate) *DayHighlight {
	var best *DayHighlight
	for _, d := range daily {
		if best == nil || float64(d.XP) > best.Value {
			best = &DayHighlight{Date: d.Date, Value: float64(d.XP)}
		}
	}
	return best
}

// bestDayByAccuracy compares per-day attainment with diagnostics
// excluded from both sides of the ratio, since a placement always scores
// at target and would dilute the comparison.
func bestDayByAccuracy(activities []activity.Activity) *DayHighlight {
	type tally struct{ earned, possible int }
	days := make(map[string]*tally)
	var order []string

	for _, a := range activities {
		if a.Type == activity.Diagnostic {
			continue
		}
		key := DayKey(a.Timestamp)
		day, ok := days[key]
		if !ok {
			day = &tally{}
			days[key] = day
			order = append(order, key)
		}
		day.earned += a.Earned
		day.possible += possibleXP(a)
	}

	var best *DayHighlight
	for _, key := range order {
		day := days[key]
		if day.possible == 0 {
			continue
		}
		rate := percent(day.earned, day.possible)
		if best == nil || rate > best.Value {
			best = &DayHighlight{Date: key, Value: rate}
		}
	}
	return best
}

// bestWeekday picks the weekday with the highest mean XP per activity;
// ties keep the first weekday in Sunday-to-Saturday order.
func bestWeekday(activities []activity.Activity) *WeekdayHighlight {
	var earned [7]int
	var counts [7]int
	for _, a := range activities {
		wd := int(a.Timestamp.Weekday())
		earned[wd] += a.Earned
		counts[wd]++
	}

	var best *WeekdayHighlight
	for wd := 0; wd < 7; wd++ {
		if counts[wd] == 0 {
			continue
		}
		mean := round1(float64(earned[wd]) / float64(counts[wd]))
		if best == nil || mean > best.MeanXP {
			best = &WeekdayHighlight{
				Weekday: time.Weekday(wd).String(),
				MeanXP:  mean,
			}
		}
	}
	return best
}

// peakHour picks the hour of day with the highest summed XP; ties keep
// the lowest hour.
func peakHour(activities []activity.Activity) *HourHighlight {
	var xp [24]int
	for _, a := range activities {
		xp[a.Timestamp.Hour()] += a.Earned
	}

	var best *HourHighlight
	for hour := 0; hour < 24; hour++ {
		if xp[hour] == 0 {
			continue
		}
		if best == nil || xp[hour] > best.XP {
			best = &HourHighlight{Hour: hour, XP: xp[hour]}
		}
	}
	return best
}
