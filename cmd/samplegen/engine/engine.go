package engine

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

type GeneratorConfig struct {
	Scenario string // "steady", "grind", "journey"
	Days     int
	Now      time.Time
	Seed     int64
}

var courses = []string{
	"Mathematical Foundations I",
	"Mathematical Foundations II",
	"Mathematical Foundations III",
}

var lessonTitles = []string{
	"Intro to Limits",
	"Polynomial Long Division",
	"Properties of Exponents",
	"Systems of Linear Equations",
	"The Unit Circle",
	"Derivatives of Trig Functions",
	"Completing the Square",
	"Logarithmic Identities",
}

var reviewTitles = []string{
	"Factoring Quadratics",
	"Radicals & Rational Exponents",
	"Graphing Linear Inequalities",
	"Arithmetic Sequences",
}

// Generate produces a synthetic activity-log export in the same text format
// the site renders: one weekday-prefixed date header per day followed by
// activity lines.
func Generate(cfg GeneratorConfig) string {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	// The journey scenario switches courses partway through the range and
	// opens each course with a placement diagnostic.
	courseIdx := 0
	switchDay := cfg.Days / 2

	var sb strings.Builder
	start := cfg.Now.AddDate(0, 0, -(cfg.Days - 1))

	for d := 0; d < cfg.Days; d++ {
		day := start.AddDate(0, 0, d)
		courseStart := cfg.Scenario == "journey" && (d == 0 || d == switchDay)

		// Steady learners skip the occasional day. Days that open a course
		// always appear so the placement diagnostic is never lost.
		if !courseStart && cfg.Scenario != "grind" && rng.Float64() < 0.2 {
			continue
		}

		sb.WriteString(formatHeader(day))
		sb.WriteString("\n")

		if courseStart {
			if d == switchDay {
				courseIdx++
			}
			xp := 40 + rng.Intn(60)
			fmt.Fprintf(&sb, "%s Placement %d / XP\n", courses[courseIdx], xp)
		}

		count := 2 + rng.Intn(3)
		if cfg.Scenario == "grind" {
			count = 4 + rng.Intn(4)
		}

		for i := 0; i < count; i++ {
			course := courses[courseIdx]
			kind, title := pickActivity(rng)
			base := 10 + rng.Intn(3)*2
			earned := sampleEarned(rng, base, cfg.Scenario)
			clock := formatClock(rng)
			fmt.Fprintf(&sb, "%s %s %s %d / %d XP %s\n", course, kind, title, earned, base, clock)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func pickActivity(rng *rand.Rand) (kind, title string) {
	switch r := rng.Float64(); {
	case r < 0.55:
		return "Lesson", lessonTitles[rng.Intn(len(lessonTitles))]
	case r < 0.80:
		return "Review", reviewTitles[rng.Intn(len(reviewTitles))]
	case r < 0.92:
		return "Multistep", lessonTitles[rng.Intn(len(lessonTitles))]
	default:
		return "Quiz", "Unit Quiz"
	}
}

func sampleEarned(rng *rand.Rand, base int, scenario string) int {
	// Most attempts land in the 70-100% band, grinders fail more often.
	failChance := 0.08
	if scenario == "grind" {
		failChance = 0.18
	}
	switch {
	case rng.Float64() < failChance:
		return rng.Intn(base * 6 / 10) // below the pass threshold
	case rng.Float64() < 0.10:
		return base + 1 + rng.Intn(3) // bonus XP above base
	default:
		return base*7/10 + rng.Intn(base*3/10+1)
	}
}

// formatHeader renders a day as the site does: "Thu, Oct 16th, 2025".
func formatHeader(t time.Time) string {
	return fmt.Sprintf("%s, %s %s, %d", t.Format("Mon"), t.Format("Jan"), ordinal(t.Day()), t.Year())
}

func ordinal(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

func formatClock(rng *rand.Rand) string {
	hour := 7 + rng.Intn(15)
	minute := rng.Intn(60)
	t := time.Date(2000, 1, 1, hour, minute, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// Save writes the generated export to path.
func Save(path, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}
