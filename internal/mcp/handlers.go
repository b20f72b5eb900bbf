package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/graubenh/mathacademy-dashboard/internal/activity"
	"github.com/graubenh/mathacademy-dashboard/internal/stats"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

type ingestReportInput struct {
	Text    string `json:"text"`
	Replace bool   `json:"replace,omitempty"`
}

type getSnapshotInput struct{}

type getSeriesInput struct {
	Kind       string `json:"kind"`
	WindowDays int    `json:"windowDays,omitempty"`
}

type ingestSummary struct {
	Added int `json:"added"`
	Total int `json:"total"`
}

func (s *Server) handleIngestReport(ctx context.Context, req *sdk.CallToolRequest, in ingestReportInput) (*sdk.CallToolResult, any, error) {
	parser := activity.NewParser(s.cfg.Location)
	parsed := parser.Parse(in.Text)

	s.mu.Lock()
	if in.Replace {
		s.activities = nil
	}
	s.activities = append(s.activities, parsed...)
	total := len(s.activities)
	s.mu.Unlock()

	log.Info().Int("added", len(parsed)).Int("total", total).Msg("Ingested activity report")
	return textResult(ingestSummary{Added: len(parsed), Total: total}), nil, nil
}

func (s *Server) handleGetSnapshot(ctx context.Context, req *sdk.CallToolRequest, in getSnapshotInput) (*sdk.CallToolResult, any, error) {
	return textResult(s.snapshot()), nil, nil
}

func (s *Server) handleGetSeries(ctx context.Context, req *sdk.CallToolRequest, in getSeriesInput) (*sdk.CallToolResult, any, error) {
	snap := s.snapshot()
	now := time.Now()

	windowDays := in.WindowDays
	if windowDays <= 0 {
		windowDays = 7
	}

	var series stats.TimeSeries
	switch in.Kind {
	case "cumulative_xp":
		series = stats.CumulativeXPSeries(snap)
	case "cumulative_count":
		series = stats.CumulativeCountSeries(snap)
	case "rolling_xp":
		series = stats.RollingXPSeries(snap, windowDays)
	case "rolling_attainment":
		series = stats.RollingAttainmentSeries(snap, windowDays)
	case "week_xp":
		series = stats.WeekXPSeries(snap, now, false)
	case "week_count":
		series = stats.WeekCountSeries(snap, now, false)
	case "week_attainment":
		series = stats.WeekAttainmentSeries(snap, now)
	default:
		return nil, nil, fmt.Errorf("unknown series kind: %s", in.Kind)
	}

	return textResult(series), nil, nil
}
