package commands

import (
	"path/filepath"

	"github.com/graubenh/mathacademy-dashboard/internal/report"

	"github.com/spf13/cobra"
)

var (
	reportOutput string
	reportOpen   bool
)

var reportCmd = &cobra.Command{
	Use:   "report [files...]",
	Short: "Render a self-contained HTML dashboard from one or more export files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := computeSnapshot(cmd, args)
		if err != nil {
			return err
		}

		out := reportOutput
		if out == "" {
			out = filepath.Join(cfg.ReportDir, "dashboard.html")
		}
		return report.Write(snap, out, reportOpen || cfg.OpenBrowser)
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file (defaults to <data>/reports/dashboard.html)")
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "open the report in the default browser")
	rootCmd.AddCommand(reportCmd)
}
