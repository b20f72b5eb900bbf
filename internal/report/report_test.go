package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/graubenh/mathacademy-dashboard/internal/activity"
	"github.com/graubenh/mathacademy-dashboard/internal/stats"
)

func sampleSnapshot() stats.Snapshot {
	day := time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC)
	return stats.ComputeSnapshotAt([]activity.Activity{
		{Timestamp: day, Type: activity.Lesson, Course: "Mathematical Foundations I", Title: "Intro to Limits", Earned: 8, Base: 10},
		{Timestamp: day.AddDate(0, 0, 1), Type: activity.Lesson, Course: "Mathematical Foundations II", Title: "Polynomials", Earned: 10, Base: 10},
	}, day.AddDate(0, 0, 2))
}

func TestRender(t *testing.T) {
	html, err := Render(sampleSnapshot(), time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	page := string(html)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Math Academy Dashboard",
		"window.DASHBOARD",
		"cumulativeXP",
		"2026-01-08",
		"Mathematical Foundations II",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Rendered page missing %q", want)
		}
	}

	// The inline script is minified, so the readable source names are gone.
	if strings.Contains(page, "drawSeries") {
		t.Error("Chart script does not appear to be minified")
	}
	if !strings.Contains(page, "DASHBOARD") {
		t.Error("Minified script lost the payload global")
	}
}

func TestRender_EmptySnapshot(t *testing.T) {
	snap := stats.ComputeSnapshotAt(nil, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC))
	html, err := Render(snap, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Render failed on empty snapshot: %v", err)
	}
	if !strings.Contains(string(html), "Total XP") {
		t.Error("Empty snapshot still renders the summary cards")
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.html")
	if err := Write(sampleSnapshot(), path, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Report file missing: %v", err)
	}
	if !strings.Contains(string(data), "Math Academy Dashboard") {
		t.Error("Report file lacks expected content")
	}
}
