package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sensor-cleaner/controller"
)

var (
	finalizeInput  string
	finalizeOutput string
)

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Produce the final CSV from the cleaned one",
	Long: `Guarantees a lowercase "activity" column, a title-case "Activity"
column derived from it, and a "timestamp_iso" column, then writes the full
table to the final CSV. Idempotent on its own output.`,
	RunE: runFinalizeCmd,
}

func init() {
	finalizeCmd.Flags().StringVar(&finalizeInput, "input", "", "cleaned CSV path (overrides config)")
	finalizeCmd.Flags().StringVar(&finalizeOutput, "output", "", "final CSV path (overrides config)")
}

func runFinalizeCmd(cmd *cobra.Command, args []string) error {
	fc := cfg.Finalize
	if finalizeInput != "" {
		fc.InputPath = finalizeInput
	}
	if finalizeOutput != "" {
		fc.OutputPath = finalizeOutput
	}

	if err := controller.NewFinalizeController(fc).Run(); err != nil {
		return err
	}
	color.Green("✓ finalized, output at %s", fc.OutputPath)
	return nil
}
