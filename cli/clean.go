package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sensor-cleaner/controller"
)

var (
	cleanInput  string
	cleanOutput string
	cleanStats  string
	cleanTSCol  string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean and normalize the raw merged sensor CSV",
	Long: `Standardizes activity labels (jumping, standing, still, walking,
running), parses the nanosecond epoch timestamp column, drops rows with
missing timestamp/activity, rows with all axes empty, and exact duplicates,
sorts by time, then writes the cleaned CSV plus a JSON stats summary.`,
	RunE: runCleanCmd,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanInput, "input", "", "raw merged CSV path (overrides config)")
	cleanCmd.Flags().StringVar(&cleanOutput, "output", "", "cleaned CSV path (overrides config)")
	cleanCmd.Flags().StringVar(&cleanStats, "stats", "", "stats JSON path (overrides config)")
	cleanCmd.Flags().StringVar(&cleanTSCol, "timestamp-column", "", "pin the timestamp source column")
}

func runCleanCmd(cmd *cobra.Command, args []string) error {
	sc := cfg.Clean
	if cleanInput != "" {
		sc.InputPath = cleanInput
	}
	if cleanOutput != "" {
		sc.OutputPath = cleanOutput
	}
	if cleanStats != "" {
		sc.StatsPath = cleanStats
	}
	if cleanTSCol != "" {
		sc.TimestampColumn = cleanTSCol
	}

	stats, err := controller.NewCleanController(sc).Run()
	if err != nil {
		return err
	}
	color.Green("✓ cleaned %d → %d rows, output at %s", stats.RowsBefore, stats.RowsAfter, sc.OutputPath)
	return nil
}
