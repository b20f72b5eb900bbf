package activity

import "strings"

// diagnosticLabels are the raw category tokens the source log uses for
// placement-style work. "Assessment" is in this set even though quizzes
// also appear under it; the quiz-title override below disambiguates.
var diagnosticLabels = []string{"diagnostic", "assessment", "supplemental diagnostic"}

// Classify maps a raw category token and task title onto the closed
// taxonomy. The title check runs first: quizzes are logged under the
// generic "Assessment" label, so title sniffing is the only reliable
// discriminator. Unknown tokens yield Unclassified.
func Classify(rawType, title string) Type {
	if strings.Contains(strings.ToLower(title), "quiz") {
		return Quiz
	}

	lower := strings.ToLower(strings.TrimSpace(rawType))
	if matchesAny(lower, diagnosticLabels) {
		return Diagnostic
	}

	switch lower {
	case "lesson":
		return Lesson
	case "review":
		return Review
	case "multistep":
		return Multistep
	case "quiz":
		return Quiz
	}
	return Unclassified
}

// IsDiagnostic reports whether a raw record gets the diagnostic XP
// treatment (possible = earned). A quiz title always disqualifies, even
// under a diagnostic raw label. This is the single shared predicate for
// the substitution rule; downstream code reads the Type assigned here
// rather than re-deriving it.
func IsDiagnostic(rawType, title string) bool {
	return Classify(rawType, title) == Diagnostic
}

func matchesAny(s string, labels []string) bool {
	for _, l := range labels {
		if s == l {
			return true
		}
	}
	return false
}
