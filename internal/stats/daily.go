package stats

import (
	"sort"

	"github.com/graubenh/mathacademy-dashboard/internal/activity"
)

// defaultPossible stands in for non-diagnostic records whose achievable
// XP never parsed.
const defaultPossible = 10

// DailyAggregate is one local calendar day's worth of activity, keyed by
// its YYYY-MM-DD date string.
type DailyAggregate struct {
	Date          string `json:"date"`
	XP            int    `json:"xp"`
	Count         int    `json:"count"`
	TotalEarned   int    `json:"totalEarned"`
	TotalPossible int    `json:"totalPossible"`
	// Courses lists the distinct course names seen, in insertion order.
	Courses []string `json:"courses,omitempty"`
	// CourseTransition marks a day whose course of record differs from
	// the nearest preceding day that recorded a course.
	CourseTransition bool   `json:"courseTransition,omitempty"`
	FromCourse       string `json:"fromCourse,omitempty"`
	ToCourse         string `json:"toCourse,omitempty"`
}

// possibleXP applies the diagnostic-aware substitution: a diagnostic's
// achievable XP is whatever it earned; graded work uses its base, or
// defaultPossible when the base never parsed.
func possibleXP(a activity.Activity) int {
	if a.Type == activity.Diagnostic {
		return a.Earned
	}
	if a.Base > 0 {
		return a.Base
	}
	return defaultPossible
}

// GroupByDay buckets activities into per-local-calendar-day aggregates,
// sorted ascending by date key, with course transitions marked.
func GroupByDay(activities []activity.Activity) []DailyAggregate {
	buckets := make(map[string]*DailyAggregate)
	seenCourses := make(map[string]map[string]bool)

	for _, a := range activities {
		key := DayKey(a.Timestamp)
		agg, ok := buckets[key]
		if !ok {
			agg = &DailyAggregate{Date: key}
			buckets[key] = agg
			seenCourses[key] = make(map[string]bool)
		}

		agg.XP += a.Earned
		agg.Count++
		agg.TotalEarned += a.Earned
		agg.TotalPossible += possibleXP(a)

		if a.Course != "" && !seenCourses[key][a.Course] {
			seenCourses[key][a.Course] = true
			agg.Courses = append(agg.Courses, a.Course)
		}
	}

	result := make([]DailyAggregate, 0, len(buckets))
	for _, agg := range buckets {
		result = append(result, *agg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	markTransitions(result)
	return result
}

// markTransitions flags days whose course of record changed. The course
// of record is the day's first-inserted course; days without any course
// neither trigger nor break a comparison chain. Mixed-course days
// compare only their first course; the full course list stays
// available on the aggregate.
func markTransitions(daily []DailyAggregate) {
	previous := ""
	for i := range daily {
		if len(daily[i].Courses) == 0 {
			continue
		}
		current := daily[i].Courses[0]
		if previous != "" && current != previous {
			daily[i].CourseTransition = true
			daily[i].FromCourse = previous
			daily[i].ToCourse = current
		}
		previous = current
	}
}
