package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ─── Stage configs ──────────────────────────────────────────────────────

// CleanConfig controls the raw-cleaning stage.
type CleanConfig struct {
	InputPath  string `yaml:"input_path"`
	OutputPath string `yaml:"output_path"`
	StatsPath  string `yaml:"stats_path"`
	// TimestampColumn pins the timestamp source column. When empty the
	// stage discovers it: "time", then "timestamp", then the first
	// all-numeric column (logged loudly, since guessing can pick the
	// wrong column on a shifted schema).
	TimestampColumn string `yaml:"timestamp_column"`
}

// FinalizeConfig controls the finalizing stage.
type FinalizeConfig struct {
	InputPath  string `yaml:"input_path"`
	OutputPath string `yaml:"output_path"`
}

// PipelineConfig is the top-level structure for pipeline.yaml.
type PipelineConfig struct {
	Clean    CleanConfig    `yaml:"clean"`
	Finalize FinalizeConfig `yaml:"finalize"`
	LogLevel string         `yaml:"log_level"`
}

// DefaultPipelineConfig mirrors the fixed relative paths the pipeline was
// originally run with; used when no config file is present.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Clean: CleanConfig{
			InputPath:  "data/merged_all_sensors.csv",
			OutputPath: "data/merged_all_sensors_cleaned.csv",
			StatsPath:  "data/merged_all_sensors_cleaned_stats.json",
		},
		Finalize: FinalizeConfig{
			InputPath:  "data/merged_all_sensors_cleaned.csv",
			OutputPath: "data/merged_all_sensors_cleaned_final.csv",
		},
		LogLevel: "info",
	}
}

// LoadPipelineConfig reads and parses pipeline.yaml. A missing file is not
// an error: the compiled-in defaults are returned so the tool stays usable
// with zero setup. A present-but-malformed file is fatal to the caller.
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	cfg := DefaultPipelineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read pipeline config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse pipeline config: %w", err)
	}
	return cfg, nil
}
