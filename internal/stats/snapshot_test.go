package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/graubenh/mathacademy-dashboard/internal/activity"
)

func TestComputeSnapshot_Totals(t *testing.T) {
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 8, Base: 10},
		{Timestamp: day(2026, time.January, 5), Type: activity.Review, Earned: 5, Base: 5},
		{Timestamp: day(2026, time.January, 6), Type: activity.Diagnostic, Earned: 63, Base: 63},
	}

	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.TotalActivities != len(activities) {
		t.Errorf("TotalActivities = %d, expected %d", snap.TotalActivities, len(activities))
	}
	if snap.TotalXP != 76 {
		t.Errorf("TotalXP = %d, expected 76", snap.TotalXP)
	}
}

func TestComputeSnapshot_OutcomePartition(t *testing.T) {
	activities := []activity.Activity{
		// Perfect: earned beyond nominal possible.
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 12, Base: 10},
		// Pass: within target.
		{Timestamp: day(2026, time.January, 5), Type: activity.Review, Earned: 5, Base: 5},
		// Fail: nothing earned.
		{Timestamp: day(2026, time.January, 5), Type: activity.Quiz, Earned: 0, Base: 50},
		// Diagnostic with earned XP passes.
		{Timestamp: day(2026, time.January, 6), Type: activity.Diagnostic, Earned: 63, Base: 63},
		// Diagnostic with nothing earned fails.
		{Timestamp: day(2026, time.January, 6), Type: activity.Diagnostic, Earned: 0, Base: 0},
	}

	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.PerfectCount != 1 || snap.PassCount != 2 || snap.FailCount != 2 {
		t.Errorf("Partition = %d/%d/%d, expected 1/2/2",
			snap.PerfectCount, snap.PassCount, snap.FailCount)
	}
	if snap.PerfectCount+snap.PassCount+snap.FailCount != snap.TotalActivities {
		t.Errorf("Outcome partition must cover every record exactly once")
	}
}

func TestComputeSnapshot_SuccessRate(t *testing.T) {
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 8, Base: 10},
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 2, Base: 10},
	}

	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.SuccessRate != 50.0 {
		t.Errorf("SuccessRate = %v, expected 50.0", snap.SuccessRate)
	}
}

func TestComputeSnapshot_SuccessRateUnclamped(t *testing.T) {
	// Earned beyond nominal possible is reported as-is, not clamped.
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 15, Base: 10},
	}

	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.SuccessRate != 150.0 {
		t.Errorf("SuccessRate = %v, expected 150.0", snap.SuccessRate)
	}
}

func TestComputeSnapshot_SuccessRateOneDecimal(t *testing.T) {
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 1, Base: 3},
	}

	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.SuccessRate != 33.3 {
		t.Errorf("SuccessRate = %v, expected 33.3", snap.SuccessRate)
	}
}

func TestComputeSnapshot_CategoryCountsExcludeUnclassified(t *testing.T) {
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 8, Base: 10},
		{Timestamp: day(2026, time.January, 5), Type: activity.Unclassified, Earned: 3, Base: 10},
	}

	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.CategoryCounts[activity.Lesson] != 1 {
		t.Errorf("Lesson count = %d, expected 1", snap.CategoryCounts[activity.Lesson])
	}
	if _, ok := snap.CategoryCounts[activity.Unclassified]; ok {
		t.Errorf("Unclassified records must not appear in category counts")
	}
	// But they still count toward totals and XP.
	if snap.TotalActivities != 2 || snap.TotalXP != 11 {
		t.Errorf("Totals = %d/%d XP, expected 2/11", snap.TotalActivities, snap.TotalXP)
	}
}

func TestComputeSnapshot_AvgXPPerDay(t *testing.T) {
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 10, Base: 10},
		{Timestamp: day(2026, time.January, 7), Type: activity.Lesson, Earned: 21, Base: 30},
	}

	// Two distinct active days, not three calendar days.
	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.AvgXPPerDay != 15.5 {
		t.Errorf("AvgXPPerDay = %v, expected 15.5", snap.AvgXPPerDay)
	}
}

func TestComputeSnapshot_BestDays(t *testing.T) {
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 8, Base: 10},
		{Timestamp: day(2026, time.January, 6), Type: activity.Lesson, Earned: 30, Base: 40},
		// Perfect accuracy on a low-XP day.
		{Timestamp: day(2026, time.January, 7), Type: activity.Review, Earned: 5, Base: 5},
		// A monster diagnostic must not win the accuracy comparison.
		{Timestamp: day(2026, time.January, 8), Type: activity.Diagnostic, Earned: 90, Base: 90},
	}

	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.BestDay == nil || snap.BestDay.Date != "2026-01-08" {
		t.Errorf("BestDay = %+v, expected 2026-01-08 (diagnostic XP counts)", snap.BestDay)
	}
	if snap.BestAccuracyDay == nil || snap.BestAccuracyDay.Date != "2026-01-07" {
		t.Errorf("BestAccuracyDay = %+v, expected 2026-01-07 with diagnostics excluded", snap.BestAccuracyDay)
	}
	if snap.BestAccuracyDay != nil && snap.BestAccuracyDay.Value != 100.0 {
		t.Errorf("BestAccuracyDay rate = %v, expected 100.0", snap.BestAccuracyDay.Value)
	}
}

func TestComputeSnapshot_BestWeekdayTieKeepsFirst(t *testing.T) {
	// 2026-01-04 is a Sunday, 2026-01-05 a Monday; equal means tie to
	// the earlier weekday in Sun-to-Sat order.
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 4), Type: activity.Lesson, Earned: 10, Base: 10},
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Earned: 10, Base: 10},
	}

	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.BestWeekday == nil || snap.BestWeekday.Weekday != "Sunday" {
		t.Errorf("BestWeekday = %+v, expected Sunday on tie", snap.BestWeekday)
	}
}

func TestComputeSnapshot_PeakHourTieKeepsLowest(t *testing.T) {
	morning := time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC)
	evening := time.Date(2026, time.January, 5, 21, 15, 0, 0, time.UTC)
	activities := []activity.Activity{
		{Timestamp: morning, Type: activity.Lesson, Earned: 10, Base: 10},
		{Timestamp: evening, Type: activity.Lesson, Earned: 10, Base: 10},
	}

	snap := ComputeSnapshotAt(activities, day(2026, time.January, 10))
	if snap.PeakHour == nil || snap.PeakHour.Hour != 9 {
		t.Errorf("PeakHour = %+v, expected hour 9 on tie", snap.PeakHour)
	}
}

func TestComputeSnapshot_Last14Days(t *testing.T) {
	ref := day(2026, time.January, 20)
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 18), Type: activity.Lesson, Earned: 10, Base: 10},
	}

	snap := ComputeSnapshotAt(activities, ref)
	if len(snap.Last14Days.Labels) != 14 {
		t.Fatalf("Last14Days has %d labels, expected 14", len(snap.Last14Days.Labels))
	}
	if snap.Last14Days.Labels[0] != "2026-01-07" || snap.Last14Days.Labels[13] != "2026-01-20" {
		t.Errorf("Window = %s..%s, expected 2026-01-07..2026-01-20",
			snap.Last14Days.Labels[0], snap.Last14Days.Labels[13])
	}
	if snap.Last14Days.Values[11] != 10 {
		t.Errorf("Active day value = %v, expected 10", snap.Last14Days.Values[11])
	}
}

func TestComputeSnapshot_EmptyInput(t *testing.T) {
	snap := ComputeSnapshotAt(nil, day(2026, time.January, 10))
	if snap.TotalXP != 0 || snap.TotalActivities != 0 {
		t.Errorf("Empty input must yield zero totals")
	}
	if snap.SuccessRate != 0 {
		t.Errorf("SuccessRate = %v, expected 0", snap.SuccessRate)
	}
	if snap.CategoryCounts == nil || len(snap.CategoryCounts) != 0 {
		t.Errorf("CategoryCounts must be an empty map, got %v", snap.CategoryCounts)
	}
	if len(snap.Last14Days.Labels) != 0 {
		t.Errorf("Empty input must yield an empty series")
	}
	if snap.BestDay != nil || snap.BestWeekday != nil || snap.PeakHour != nil {
		t.Errorf("Empty input must yield no highlights")
	}
}

func TestComputeSnapshot_Idempotent(t *testing.T) {
	activities := []activity.Activity{
		{Timestamp: day(2026, time.January, 5), Type: activity.Lesson, Course: "MF I", Earned: 8, Base: 10},
		{Timestamp: day(2026, time.January, 6), Type: activity.Diagnostic, Course: "MF II", Earned: 63, Base: 63},
	}
	ref := day(2026, time.January, 10)

	first := ComputeSnapshotAt(activities, ref)
	second := ComputeSnapshotAt(activities, ref)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Snapshot computation must be a pure function of its input")
	}
}
