// Package mcp exposes the dashboard over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/graubenh/mathacademy-dashboard/internal/activity"
	"github.com/graubenh/mathacademy-dashboard/internal/config"
	"github.com/graubenh/mathacademy-dashboard/internal/stats"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Server holds the state for the MCP server.
type Server struct {
	cfg     *config.AppConfig
	version string

	mu         sync.Mutex
	activities []activity.Activity
}

// NewServer creates a new MCP server.
func NewServer(cfg *config.AppConfig, version string) *Server {
	return &Server{cfg: cfg, version: version}
}

// Serve runs the protocol loop over Stdio until the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	srv := sdk.NewServer(&sdk.Implementation{
		Name:    "madash",
		Version: s.version,
	}, nil)

	sdk.AddTool(srv, ingestReportTool, s.handleIngestReport)
	sdk.AddTool(srv, getSnapshotTool, s.handleGetSnapshot)
	sdk.AddTool(srv, getSeriesTool, s.handleGetSeries)

	log.Info().Str("version", s.version).Msg("Starting MCP server on stdio")
	return srv.Run(ctx, &sdk.StdioTransport{})
}

// Load seeds the server with already-parsed activities, used when the
// process starts with data files on the command line.
func (s *Server) Load(activities []activity.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append(s.activities, activities...)
}

func (s *Server) snapshot() stats.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.ComputeSnapshot(s.activities)
}

func textResult(data interface{}) *sdk.CallToolResult {
	out, _ := json.MarshalIndent(data, "", "  ")
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: string(out)}},
	}
}
