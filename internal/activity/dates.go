package activity

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	weekdayPrefix = regexp.MustCompile(`(?i)^\s*(?:sun|mon|tue|wed|thu|fri|sat)[a-z]*,\s*`)
	ordinalSuffix = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)\b`)
)

// dateLayouts are tried in order against the normalized remainder of a
// header ("Oct 16, 2025" after stripping weekday and ordinal).
var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
}

var dateTimeLayouts = []string{
	"Jan 2, 2006 3:04 PM",
	"January 2, 2006 3:04 PM",
	"Jan 2, 2006 15:04",
	"January 2, 2006 15:04",
}

// Resolver parses the loosely formatted calendar headers found in
// activity-log exports ("Thu, Oct 16th, 2025"). Failures recover to the
// current clock rather than erroring: downstream aggregation tolerates an
// approximate date better than a dropped record.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

// NewResolver returns a Resolver interpreting dates in loc. A nil loc
// means the process-local zone, since the log's activity times are local
// to the learner's day.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{loc: loc, now: time.Now}
}

// ResolveHeader parses a date-section header into the start of that
// calendar day. On failure it returns the current time.
func (r *Resolver) ResolveHeader(text string) time.Time {
	normalized := r.normalize(text)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, normalized, r.loc); err == nil {
			return t
		}
	}
	log.Debug().Str("header", text).Msg("unresolvable date header, falling back to now")
	return r.now()
}

// ResolveDateTime parses a date plus clock-time pair for record kinds
// that carry a time of day, with the same now-fallback as ResolveHeader.
func (r *Resolver) ResolveDateTime(dateStr, timeStr string) time.Time {
	combined := r.normalize(dateStr) + " " + strings.TrimSpace(timeStr)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, combined, r.loc); err == nil {
			return t
		}
	}
	log.Debug().Str("date", dateStr).Str("time", timeStr).Msg("unresolvable date-time, falling back to now")
	return r.now()
}

func (r *Resolver) normalize(text string) string {
	s := weekdayPrefix.ReplaceAllString(text, "")
	s = ordinalSuffix.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
