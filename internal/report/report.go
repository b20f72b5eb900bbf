// Package report renders a self-contained HTML dashboard from a snapshot.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"sync"
	"time"

	"github.com/graubenh/mathacademy-dashboard/internal/stats"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
)

// payload is the data blob inlined into the page for the chart script.
type payload struct {
	Snapshot       stats.Snapshot   `json:"snapshot"`
	CumulativeXP   stats.TimeSeries `json:"cumulativeXP"`
	RollingXP      stats.TimeSeries `json:"rollingXP"`
	WeekXP         stats.TimeSeries `json:"weekXP"`
	WeekAttainment stats.TimeSeries `json:"weekAttainment"`
	GeneratedAt    string           `json:"generatedAt"`
}

var (
	minifyOnce sync.Once
	minifiedJS string
	minifyErr  error
)

// chartScript returns the dashboard script minified by esbuild. The source
// is minified once per process.
func chartScript() (string, error) {
	minifyOnce.Do(func() {
		result := api.Transform(chartJS, api.TransformOptions{
			Loader:            api.LoaderJS,
			MinifyWhitespace:  true,
			MinifyIdentifiers: true,
			MinifySyntax:      true,
		})
		if len(result.Errors) > 0 {
			minifyErr = fmt.Errorf("minifying chart script: %s", result.Errors[0].Text)
			return
		}
		minifiedJS = string(result.Code)
	})
	return minifiedJS, minifyErr
}

// Render produces the full HTML document for the given snapshot.
func Render(snap stats.Snapshot, ref time.Time) ([]byte, error) {
	script, err := chartScript()
	if err != nil {
		return nil, err
	}

	data := payload{
		Snapshot:       snap,
		CumulativeXP:   stats.CumulativeXPSeries(snap),
		RollingXP:      stats.RollingXPSeries(snap, 7),
		WeekXP:         stats.WeekXPSeries(snap, ref, false),
		WeekAttainment: stats.WeekAttainmentSeries(snap, ref),
		GeneratedAt:    ref.Format("2006-01-02 15:04"),
	}
	blob, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding dashboard payload: %w", err)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, map[string]interface{}{
		"Snapshot": snap,
		"Payload":  template.JS(blob),
		"Script":   template.JS(script),
		"Date":     data.GeneratedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the dashboard to path and optionally opens it in a browser.
func Write(snap stats.Snapshot, path string, open bool) error {
	html, err := Render(snap, time.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, html, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.Info().Str("path", path).Msg("Wrote dashboard report")

	if open {
		if err := browser.OpenFile(path); err != nil {
			log.Warn().Err(err).Msg("Failed to open report in browser")
		}
	}
	return nil
}
