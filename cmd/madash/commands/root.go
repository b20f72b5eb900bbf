package commands

import (
	"github.com/graubenh/mathacademy-dashboard/internal/activity"
	"github.com/graubenh/mathacademy-dashboard/internal/config"
	"github.com/graubenh/mathacademy-dashboard/internal/ingest"
	"github.com/graubenh/mathacademy-dashboard/internal/logging"
	"github.com/graubenh/mathacademy-dashboard/internal/mcp"
	"github.com/graubenh/mathacademy-dashboard/internal/stats"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "madash [files...]",
	Short: "madash is a Math Academy activity-log dashboard and MCP server",
	Long: `madash parses pasted Math Academy activity-log exports into structured records
and computes XP statistics, daily aggregates, and chart-ready time series.
Run with no subcommand to serve the analytics as MCP tools over stdio.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("madash starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(cfg, Version)
		if len(args) > 0 {
			activities, err := loadActivities(cmd, args)
			if err != nil {
				return err
			}
			server.Load(activities)
		}
		log.Info().Msg("MCP Server starting Stdio loop")
		return server.Serve(cmd.Context())
	},
}

// loadActivities reads the named export files ("-" for stdin) and parses
// them into activity records using the configured timezone.
func loadActivities(cmd *cobra.Command, args []string) ([]activity.Activity, error) {
	text, err := ingest.ReadSources(cmd.Context(), args)
	if err != nil {
		return nil, err
	}
	parser := activity.NewParser(cfg.Location)
	activities := parser.Parse(text)
	log.Debug().Int("records", len(activities)).Msg("Parsed activity records")
	return activities, nil
}

func computeSnapshot(cmd *cobra.Command, args []string) (stats.Snapshot, error) {
	activities, err := loadActivities(cmd, args)
	if err != nil {
		return stats.Snapshot{}, err
	}
	return stats.ComputeSnapshot(activities), nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
