package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/graubenh/mathacademy-dashboard/internal/config"

	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const sampleReport = `Thu, Jan 8th, 2026
Mathematical Foundations I Lesson Intro to Limits 8 / 10 XP
Mathematical Foundations I Placement 63 / XP
`

func newTestServer() *Server {
	return NewServer(&config.AppConfig{Location: time.UTC}, "test")
}

func resultText(t *testing.T, res *sdk.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("Expected a single content block, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(*sdk.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestHandleIngestReport(t *testing.T) {
	s := newTestServer()

	res, _, err := s.handleIngestReport(context.Background(), nil, ingestReportInput{Text: sampleReport})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	var summary ingestSummary
	if err := json.Unmarshal([]byte(resultText(t, res)), &summary); err != nil {
		t.Fatalf("Result is not valid JSON: %v", err)
	}
	if summary.Added != 2 || summary.Total != 2 {
		t.Errorf("Summary = %+v, expected 2 added, 2 total", summary)
	}

	// A second ingest accumulates unless replace is set.
	res, _, _ = s.handleIngestReport(context.Background(), nil, ingestReportInput{Text: sampleReport})
	_ = json.Unmarshal([]byte(resultText(t, res)), &summary)
	if summary.Total != 4 {
		t.Errorf("Total = %d, expected 4 after accumulating", summary.Total)
	}

	res, _, _ = s.handleIngestReport(context.Background(), nil, ingestReportInput{Text: sampleReport, Replace: true})
	_ = json.Unmarshal([]byte(resultText(t, res)), &summary)
	if summary.Total != 2 {
		t.Errorf("Total = %d, expected 2 after replace", summary.Total)
	}
}

func TestHandleGetSnapshot(t *testing.T) {
	s := newTestServer()
	if _, _, err := s.handleIngestReport(context.Background(), nil, ingestReportInput{Text: sampleReport}); err != nil {
		t.Fatal(err)
	}

	res, _, err := s.handleGetSnapshot(context.Background(), nil, getSnapshotInput{})
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	var snap struct {
		TotalXP         int `json:"totalXP"`
		TotalActivities int `json:"totalActivities"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &snap); err != nil {
		t.Fatalf("Result is not valid JSON: %v", err)
	}
	if snap.TotalXP != 71 || snap.TotalActivities != 2 {
		t.Errorf("Snapshot = %+v, expected 71 XP over 2 activities", snap)
	}
}

func TestHandleGetSeries(t *testing.T) {
	s := newTestServer()
	if _, _, err := s.handleIngestReport(context.Background(), nil, ingestReportInput{Text: sampleReport}); err != nil {
		t.Fatal(err)
	}

	for _, kind := range []string{"cumulative_xp", "cumulative_count", "rolling_xp", "rolling_attainment", "week_xp", "week_count", "week_attainment"} {
		res, _, err := s.handleGetSeries(context.Background(), nil, getSeriesInput{Kind: kind})
		if err != nil {
			t.Fatalf("series %s failed: %v", kind, err)
		}
		if !strings.Contains(resultText(t, res), "labels") {
			t.Errorf("series %s result lacks labels", kind)
		}
	}

	if _, _, err := s.handleGetSeries(context.Background(), nil, getSeriesInput{Kind: "bogus"}); err == nil {
		t.Error("Expected an error for an unknown series kind")
	}
}

func TestToolSchemas_KindEnumCoversHandlers(t *testing.T) {
	schema := getSeriesTool.InputSchema.(*jsonschema.Schema).Properties["kind"]
	if schema == nil {
		t.Fatal("kind property missing from schema")
	}
	if len(schema.Enum) != 7 {
		t.Errorf("Expected 7 series kinds in the schema, got %d", len(schema.Enum))
	}
	s := newTestServer()
	for _, kind := range schema.Enum {
		if _, _, err := s.handleGetSeries(context.Background(), nil, getSeriesInput{Kind: kind.(string)}); err != nil {
			t.Errorf("Schema advertises %v but the handler rejects it: %v", kind, err)
		}
	}
}
