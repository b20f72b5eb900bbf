package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [files...]",
	Short: "Compute the statistics snapshot for one or more export files",
	Long: `Parses the given export files (or stdin when a file is "-") and prints the
full statistics snapshot as JSON: totals, outcome partition, success rate,
highlight days, the last-14-days series, and per-day aggregates.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := computeSnapshot(cmd, args)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
