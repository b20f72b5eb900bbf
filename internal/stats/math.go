package stats

import "math"

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// percent returns earned as a one-decimal percentage of possible.
// A zero denominator yields 0, never a division error; the rate is not
// clamped, so earned beyond nominal possible reads above 100.
func percent(earned, possible int) float64 {
	if possible <= 0 {
		return 0
	}
	return round1(float64(earned) / float64(possible) * 100)
}
