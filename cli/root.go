package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sensor-cleaner/utils"
)

// version can be overridden at build time via:
// go build -ldflags "-X sensor-cleaner/cli.version=1.2.3"
var version = "1.0.0"

var (
	cfgPath string
	logPath string
	cfg     *utils.PipelineConfig
)

var rootCmd = &cobra.Command{
	Use:   "sensor-cleaner",
	Short: "Batch cleaner for merged multi-sensor motion CSVs",
	Long: color.CyanString("Sensor-Cleaner · multi-sensor motion CSV cleaning pipeline") + `

Two sequential batch stages:
  clean     normalize activity labels and timestamps, drop bad rows, sort
  finalize  guarantee activity/Activity/timestamp_iso columns`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = utils.LoadPipelineConfig(cfgPath)
		if err != nil {
			return err
		}
		utils.InitLogger(utils.ParseLogLevel(cfg.LogLevel), logPath)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config/pipeline.yaml",
		"path to pipeline.yaml (missing file = compiled-in defaults)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "",
		"optional log file path (stdout is always included)")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(finalizeCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
