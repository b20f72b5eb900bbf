package activity

import (
	"math"
	"time"
)

// Type defines the closed taxonomy of learning-activity categories.
type Type string

const (
	// Diagnostic is a placement or supplemental assessment; scored as
	// always-at-target (possible XP equals earned XP).
	Diagnostic Type = "diagnostic"
	// Lesson is a regular graded lesson.
	Lesson Type = "lesson"
	// Review is a spaced-repetition review task.
	Review Type = "review"
	// Multistep is a multi-part graded problem.
	Multistep Type = "multistep"
	// Quiz is a timed assessment; detected by title since the source log
	// files quizzes under a generic "Assessment" label.
	Quiz Type = "quiz"
	// Unclassified marks records whose category token matched no known
	// type. They still count toward totals and XP, but are excluded
	// from per-category counts.
	Unclassified Type = ""
)

// Activity represents a single logged learning task with an XP outcome.
// It is the primary unit of the ingestion pipeline: created once by the
// parser, never mutated downstream.
type Activity struct {
	// Timestamp is when the task was logged. Records whose section
	// header fails to resolve carry the parse-time clock instead.
	Timestamp time.Time `json:"ts"`
	// Type is the taxonomy tag assigned at parse time.
	Type Type `json:"type"`
	// Course is the course of study the task belongs to (may be empty).
	Course string `json:"course,omitempty"`
	// Title is the free-text task description.
	Title string `json:"title"`
	// Earned is the XP actually awarded.
	Earned int `json:"earned"`
	// Base is the achievable XP. For diagnostics Base equals Earned by
	// convention, since a placement has no meaningful target.
	Base int `json:"base"`
}

// Percentage returns earned XP as a share of achievable XP, rounded to the
// nearest whole percent. A record with no achievable XP scores 100.
func (a Activity) Percentage() int {
	if a.Base <= 0 {
		return 100
	}
	return int(math.Round(float64(a.Earned) / float64(a.Base) * 100))
}

// IsSuccess reports whether the record cleared the 70% attainment bar.
func (a Activity) IsSuccess() bool {
	return a.Percentage() >= 70
}
