package controller

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sensor-cleaner/models"
	"sensor-cleaner/utils"
	"sensor-cleaner/views"
)

func writeRawCSV(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "raw.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runClean(t *testing.T, content string, tsCol string) (*models.CleanStats, *models.Table, utils.CleanConfig) {
	t.Helper()
	dir := t.TempDir()
	cfg := utils.CleanConfig{
		InputPath:       writeRawCSV(t, dir, content),
		OutputPath:      filepath.Join(dir, "cleaned.csv"),
		StatsPath:       filepath.Join(dir, "stats.json"),
		TimestampColumn: tsCol,
	}
	stats, err := NewCleanController(cfg).Run()
	require.NoError(t, err)
	out, err := views.ReadTable(cfg.OutputPath)
	require.NoError(t, err)
	return stats, out, cfg
}

const rawFixture = "time,x,y,z,Sensor,SourceFile,Activity\n" +
	"1700000000000000000,0.1,0.2,0.3,acc,a.csv,rene-running-2025-10-29\n" +
	"1700000001000000000,,,,acc,a.csv,walking\n" + // all axes empty
	"1700000002000000000,0.4,,,acc,a.csv,Walk\n" +
	"notanumber,0.5,0.6,0.7,acc,a.csv,standing\n" + // bad timestamp
	"1700000003000000000,0.8,0.9,1.0,acc,a.csv,\n" + // missing activity
	"1700000000500000000,1.1,1.2,1.3,acc,b.csv,jog\n" + // out of order
	"1700000000000000000,0.1,0.2,0.3,acc,a.csv,rene-running-2025-10-29\n" + // exact dup
	"1700000004000000000,2.0,2.1,2.2,gyro,b.csv,JUMPING\n"

func TestCleanEndToEnd(t *testing.T) {
	stats, out, cfg := runClean(t, rawFixture, "")

	// Only the present subset of the canonical column list is written,
	// in canonical order (no seconds_elapsed in this fixture).
	assert.Equal(t, []string{
		"time", "timestamp_iso", "x", "y", "z", "Sensor", "SourceFile", "activity_clean",
	}, out.Columns)

	require.Equal(t, 4, out.Len())
	assert.Equal(t, []string{
		"1700000000000000000", "2023-11-14T22:13:20.000000Z",
		"0.1", "0.2", "0.3", "acc", "a.csv", "running",
	}, out.Rows[0])

	// Non-decreasing timestamp order, duplicates gone.
	assert.Equal(t, []string{
		"1700000000000000000",
		"1700000000500000000",
		"1700000002000000000",
		"1700000004000000000",
	}, out.Column("time"))
	assert.Equal(t, []string{"running", "running", "walking", "jumping"},
		out.Column("activity_clean"))

	// Stats contract.
	assert.Equal(t, 8, stats.RowsBefore)
	assert.Equal(t, 4, stats.RowsAfter)
	assert.Equal(t, 2, stats.RemovedTimestampOrActivity)
	assert.Equal(t, map[string]int{"running": 2, "walking": 1, "jumping": 1},
		stats.ActivityCounts)
	assert.GreaterOrEqual(t, stats.RowsBefore-stats.RowsAfter, stats.RemovedTimestampOrActivity)
	// Full post-transform column list, derived columns included.
	assert.Equal(t, []string{
		"time", "x", "y", "z", "Sensor", "SourceFile", "Activity",
		"timestamp", "activity_clean", "timestamp_iso",
	}, stats.Columns)

	// The stats file holds the same summary.
	data, err := os.ReadFile(cfg.StatsPath)
	require.NoError(t, err)
	var onDisk models.CleanStats
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, *stats, onDisk)
}

func TestCleanSecondsFallback(t *testing.T) {
	raw := "time,x,Activity\n" +
		"1700000000.5,0.1,walking\n" +
		"1700000000.25,0.2,running\n"
	_, out, _ := runClean(t, raw, "")

	assert.Equal(t, []string{
		"2023-11-14T22:13:20.250000Z",
		"2023-11-14T22:13:20.500000Z",
	}, out.Column("timestamp_iso"))
}

func TestCleanLowercaseActivityColumn(t *testing.T) {
	raw := "time,x,activity\n" +
		"1,0.1,Jogging\n"
	_, out, _ := runClean(t, raw, "")
	assert.Equal(t, []string{"running"}, out.Column("activity_clean"))
}

func TestCleanNumericColumnFallback(t *testing.T) {
	// No time/timestamp column: the first all-numeric column is used.
	raw := "Sensor,reading,x,Activity\n" +
		"acc,1700000000000000000,0.1,walking\n"
	_, out, _ := runClean(t, raw, "")
	assert.Equal(t, []string{"2023-11-14T22:13:20.000000Z"}, out.Column("timestamp_iso"))
}

func TestCleanConfiguredTimestampColumn(t *testing.T) {
	raw := "ts_ns,time,x,Activity\n" +
		"1700000000000000000,9,0.1,walking\n"
	_, out, _ := runClean(t, raw, "ts_ns")
	assert.Equal(t, []string{"2023-11-14T22:13:20.000000Z"}, out.Column("timestamp_iso"))
}

func TestCleanErrors(t *testing.T) {
	dir := t.TempDir()
	base := utils.CleanConfig{
		OutputPath: filepath.Join(dir, "cleaned.csv"),
		StatsPath:  filepath.Join(dir, "stats.json"),
	}

	t.Run("missing input file", func(t *testing.T) {
		cfg := base
		cfg.InputPath = filepath.Join(dir, "nope.csv")
		_, err := NewCleanController(cfg).Run()
		assert.Error(t, err)
	})

	t.Run("configured column absent", func(t *testing.T) {
		cfg := base
		cfg.InputPath = writeRawCSV(t, t.TempDir(), "time,Activity\n1,walking\n")
		cfg.TimestampColumn = "ts"
		_, err := NewCleanController(cfg).Run()
		assert.ErrorContains(t, err, `"ts" not found`)
	})

	t.Run("no numeric column to fall back to", func(t *testing.T) {
		cfg := base
		cfg.InputPath = writeRawCSV(t, t.TempDir(), "Sensor,Activity\nacc,walking\n")
		_, err := NewCleanController(cfg).Run()
		assert.ErrorContains(t, err, "no timestamp column")
	})

	t.Run("nothing parseable even as seconds", func(t *testing.T) {
		cfg := base
		cfg.InputPath = writeRawCSV(t, t.TempDir(), "time,Activity\nlater,walking\n")
		_, err := NewCleanController(cfg).Run()
		assert.ErrorContains(t, err, "no parseable values")
	})
}

func TestCleanNoActivityColumn(t *testing.T) {
	raw := "time,x\n" +
		"1700000000000000000,0.1\n"
	stats, out, _ := runClean(t, raw, "")

	// Every row drops: a null activity is never emitted.
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, 1, stats.RowsBefore)
	assert.Equal(t, 0, stats.RowsAfter)
	assert.Equal(t, 1, stats.RemovedTimestampOrActivity)
	assert.Empty(t, stats.ActivityCounts)
}
