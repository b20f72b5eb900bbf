package activity

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// minSectionLength filters out noise between adjacent headers
	// (page numbers, stray whitespace from the text extraction).
	minSectionLength = 10

	// defaultDiagnosticXP stands in when a placement line carries no
	// readable score.
	defaultDiagnosticXP = 63
)

var (
	headerPattern = regexp.MustCompile(
		`(?:Sun|Mon|Tue|Wed|Thu|Fri|Sat)[a-z]*,\s*` +
			`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+` +
			`\d{1,2}(?:st|nd|rd|th)?,\s*\d{4}`)

	coursePart = `([A-Z][\w.&'-]*(?:\s+[\w.&'-]+)*?)`

	diagnosticPattern = regexp.MustCompile(
		coursePart + `\s+(Placement|Supplemental)\s+(?:(\d+)\s*)?/\s*XP`)

	gradedPattern = regexp.MustCompile(
		coursePart + `\s+(Lesson|Review|Quiz|Diagnostic|Multistep)\s+` +
			`(.*?)\s*(\d+)\s*/\s*(\d+)\s*XP` +
			`(?:\s+(\d{1,2}:\d{2}\s*(?:AM|PM)?))?`)
)

// extractor recovers activity records from one date section. The two
// structural patterns live behind this interface so a format drift in the
// source export touches exactly one implementation.
type extractor interface {
	extract(section string, sec sectionContext) []Activity
}

// sectionContext carries the resolved day and raw header text of the
// section being scanned.
type sectionContext struct {
	day    time.Time
	header string
}

// Parser scans raw extracted text for date-section headers and recovers
// structured Activity records from each section. It is stateless across
// calls and safe for concurrent use with distinct inputs.
type Parser struct {
	resolver   *Resolver
	extractors []extractor
}

// NewParser returns a Parser resolving dates in loc (nil means local).
func NewParser(loc *time.Location) *Parser {
	r := NewResolver(loc)
	return &Parser{
		resolver: r,
		extractors: []extractor{
			gradedExtractor{resolver: r},
			diagnosticExtractor{},
		},
	}
}

// Parse converts a complete text blob into an ordered Activity sequence.
// Output order is an artifact of extraction order, not a contract: within
// a section, graded records precede diagnostics. Callers should re-sort by
// timestamp before order-sensitive use. Empty or header-free input yields
// an empty slice; substituting placeholder data is the caller's call.
func (p *Parser) Parse(text string) []Activity {
	headers := headerPattern.FindAllStringIndex(text, -1)
	if len(headers) == 0 {
		log.Debug().Int("bytes", len(text)).Msg("no date headers found in input")
		return nil
	}

	var activities []Activity
	for i, loc := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		section := text[loc[1]:end]
		if len(section) < minSectionLength {
			continue
		}

		sec := sectionContext{
			day:    p.resolver.ResolveHeader(text[loc[0]:loc[1]]),
			header: text[loc[0]:loc[1]],
		}

		for _, ex := range p.extractors {
			activities = append(activities, ex.extract(section, sec)...)
		}
	}

	// A candidate without a usable timestamp is dropped, not surfaced.
	kept := activities[:0]
	for _, a := range activities {
		if a.Timestamp.IsZero() {
			continue
		}
		kept = append(kept, a)
	}

	log.Debug().
		Int("sections", len(headers)).
		Int("records", len(kept)).
		Msg("parsed activity log")
	return kept
}

// gradedExtractor matches earned/possible records:
//
//	<Course> <Category> <description> <earned> / <possible> XP [<clock time>]
type gradedExtractor struct {
	resolver *Resolver
}

func (g gradedExtractor) extract(section string, sec sectionContext) []Activity {
	matches := gradedPattern.FindAllStringSubmatch(section, -1)
	out := make([]Activity, 0, len(matches))
	for _, m := range matches {
		earned, err := strconv.Atoi(m[4])
		if err != nil {
			earned = 0
		}
		base, err := strconv.Atoi(m[5])
		if err != nil {
			base = 0
		}

		ts := sec.day
		if m[6] != "" {
			ts = g.resolver.ResolveDateTime(sec.header, m[6])
		}

		out = append(out, Activity{
			Timestamp: ts,
			Type:      Classify(m[2], m[3]),
			Course:    strings.TrimSpace(m[1]),
			Title:     strings.TrimSpace(m[3]),
			Earned:    earned,
			Base:      base,
		})
	}
	return out
}

// diagnosticExtractor matches placement-style single-value records:
//
//	<Course> (Placement|Supplemental) <N> / XP
//
// Diagnostics score at target by convention: base equals earned.
type diagnosticExtractor struct{}

func (diagnosticExtractor) extract(section string, sec sectionContext) []Activity {
	matches := diagnosticPattern.FindAllStringSubmatch(section, -1)
	out := make([]Activity, 0, len(matches))
	for _, m := range matches {
		xp := defaultDiagnosticXP
		if m[3] != "" {
			if n, err := strconv.Atoi(m[3]); err == nil {
				xp = n
			}
		}

		out = append(out, Activity{
			Timestamp: sec.day,
			Type:      Diagnostic,
			Course:    strings.TrimSpace(m[1]),
			Title:     m[2],
			Earned:    xp,
			Base:      xp,
		})
	}
	return out
}
