package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sensor-cleaner/controller"
	"sensor-cleaner/utils"
	"sensor-cleaner/views"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run both stages in sequence (clean, then finalize)",
	RunE:  runPipelineCmd,
}

func runPipelineCmd(cmd *cobra.Command, args []string) error {
	stats, err := controller.NewCleanController(cfg.Clean).Run()
	if err != nil {
		return err
	}
	utils.L().Info("stage %s complete (%d → %d rows)", views.StageClean,
		stats.RowsBefore, stats.RowsAfter)

	// The finalizer reads the cleaner's output unless configured otherwise.
	fc := cfg.Finalize
	if fc.InputPath == "" {
		fc.InputPath = cfg.Clean.OutputPath
	}
	if err := controller.NewFinalizeController(fc).Run(); err != nil {
		return err
	}
	utils.L().Info("stage %s complete", views.StageFinalize)

	color.Green("✓ pipeline finished, final CSV at %s", fc.OutputPath)
	return nil
}
