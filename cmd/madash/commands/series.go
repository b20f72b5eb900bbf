package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/graubenh/mathacademy-dashboard/internal/stats"

	"github.com/spf13/cobra"
)

var (
	seriesKind   string
	seriesWindow int
)

var seriesCmd = &cobra.Command{
	Use:   "series [files...]",
	Short: "Build a chart-ready time series from one or more export files",
	Long: `Parses the given export files and prints the requested series as JSON.
Kinds: cumulative_xp, cumulative_count, rolling_xp, rolling_attainment,
week_xp, week_count, week_attainment.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := computeSnapshot(cmd, args)
		if err != nil {
			return err
		}

		now := time.Now()
		var series stats.TimeSeries
		switch seriesKind {
		case "cumulative_xp":
			series = stats.CumulativeXPSeries(snap)
		case "cumulative_count":
			series = stats.CumulativeCountSeries(snap)
		case "rolling_xp":
			series = stats.RollingXPSeries(snap, seriesWindow)
		case "rolling_attainment":
			series = stats.RollingAttainmentSeries(snap, seriesWindow)
		case "week_xp":
			series = stats.WeekXPSeries(snap, now, false)
		case "week_count":
			series = stats.WeekCountSeries(snap, now, false)
		case "week_attainment":
			series = stats.WeekAttainmentSeries(snap, now)
		default:
			return fmt.Errorf("unknown series kind: %s", seriesKind)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(series)
	},
}

func init() {
	seriesCmd.Flags().StringVarP(&seriesKind, "kind", "k", "cumulative_xp", "series kind to build")
	seriesCmd.Flags().IntVarP(&seriesWindow, "window", "w", 7, "trailing window in days for rolling series")
	rootCmd.AddCommand(seriesCmd)
}
