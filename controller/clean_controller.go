package controller

import (
	"fmt"
	"os"
	"strconv"

	"sensor-cleaner/models"
	"sensor-cleaner/services/transform"
	"sensor-cleaner/utils"
	"sensor-cleaner/views"
)

// CleanController is the first pipeline stage. It reads the raw merged
// sensor CSV, normalizes activity labels and timestamps, filters
// invalid/duplicate/empty rows, sorts by time, and writes the cleaned CSV
// plus a JSON stats summary.
type CleanController struct {
	cfg utils.CleanConfig
}

// NewCleanController creates the stage from its config section.
func NewCleanController(cfg utils.CleanConfig) *CleanController {
	return &CleanController{cfg: cfg}
}

// Run executes the full cleaning pass and returns the stats summary.
func (c *CleanController) Run() (*models.CleanStats, error) {
	utils.L().Info("reading %s", c.cfg.InputPath)
	tbl, err := views.ReadTable(c.cfg.InputPath)
	if err != nil {
		return nil, err
	}
	rowsBefore := tbl.Len()
	utils.L().Info("initial rows: %d", rowsBefore)

	tsCol, err := c.timestampColumn(tbl)
	if err != nil {
		return nil, err
	}
	if err := parseTimestamps(tbl, tsCol); err != nil {
		return nil, err
	}
	normalizeActivities(tbl)

	// Filter order matters for the stats contract: the missing
	// timestamp/activity count is reported separately from the axis and
	// duplicate filters.
	tsIdx := tbl.ColIndex("timestamp")
	acIdx := tbl.ColIndex("activity_clean")
	removedTsAct := tbl.Filter(func(row []string) bool {
		return row[tsIdx] != "" && row[acIdx] != ""
	})
	utils.L().Info("rows after removing missing timestamp/activity: %d (removed %d)",
		tbl.Len(), removedTsAct)

	var axisIdxs []int
	for _, a := range views.AxisColumns {
		if i := tbl.ColIndex(a); i >= 0 {
			axisIdxs = append(axisIdxs, i)
		}
	}
	if len(axisIdxs) > 0 {
		removed := tbl.Filter(func(row []string) bool {
			for _, i := range axisIdxs {
				if row[i] != "" {
					return true
				}
			}
			return false
		})
		utils.L().Info("rows after dropping rows with all axes empty: %d (removed %d)",
			tbl.Len(), removed)
	}

	removedDup := tbl.DropDuplicates()
	utils.L().Info("rows after dropping exact duplicates: %d (removed %d)",
		tbl.Len(), removedDup)

	// Stable: rows sharing a timestamp keep their input order.
	tbl.SortStable(func(a, b []string) bool {
		ai, _ := strconv.ParseInt(a[tsIdx], 10, 64)
		bi, _ := strconv.ParseInt(b[tsIdx], 10, 64)
		return ai < bi
	})

	iso := make([]string, tbl.Len())
	for i, row := range tbl.Rows {
		ns, _ := strconv.ParseInt(row[tsIdx], 10, 64)
		iso[i] = utils.FormatISO(ns)
	}
	tbl.SetColumn("timestamp_iso", iso)

	out := tbl.Project(views.CleanedColumns)
	utils.L().Info("writing cleaned CSV to %s", c.cfg.OutputPath)
	if err := views.WriteTable(c.cfg.OutputPath, out); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, row := range tbl.Rows {
		counts[row[acIdx]]++
	}
	stats := &models.CleanStats{
		RowsBefore:                 rowsBefore,
		RowsAfter:                  tbl.Len(),
		RemovedTimestampOrActivity: removedTsAct,
		ActivityCounts:             counts,
		Columns:                    append([]string(nil), tbl.Columns...),
	}

	data, err := stats.JSON()
	if err != nil {
		return nil, fmt.Errorf("encode stats: %w", err)
	}
	if err := os.WriteFile(c.cfg.StatsPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write stats: %w", err)
	}

	utils.L().Info("summary:\n%s", data)
	utils.L().Info("cleaned CSV: %s", c.cfg.OutputPath)
	utils.L().Info("stats JSON: %s", c.cfg.StatsPath)
	return stats, nil
}

// timestampColumn picks the timestamp source column: the configured
// override if set, else "time"/"timestamp", else the first all-numeric
// column. No numeric column at all is an error rather than a guess.
func (c *CleanController) timestampColumn(t *models.Table) (string, error) {
	if c.cfg.TimestampColumn != "" {
		if !t.HasColumn(c.cfg.TimestampColumn) {
			return "", fmt.Errorf("configured timestamp column %q not found (columns: %v)",
				c.cfg.TimestampColumn, t.Columns)
		}
		return c.cfg.TimestampColumn, nil
	}
	for _, cand := range views.TimestampCandidates {
		if t.HasColumn(cand) {
			return cand, nil
		}
	}
	for i, name := range t.Columns {
		if t.IsNumericColumn(i) {
			utils.L().Warn("using %s as timestamp column (first numeric fallback); "+
				"pin timestamp_column in the config if this is wrong", name)
			return name, nil
		}
	}
	return "", fmt.Errorf("no timestamp column found (columns: %v)", t.Columns)
}

// parseTimestamps materializes a "timestamp" column of ns-epoch integers.
// Cells that fail to parse become empty (dropped by the filter step). If
// nothing parses as nanoseconds the whole column is retried as seconds;
// if that also yields nothing, the run aborts.
func parseTimestamps(t *models.Table, tsCol string) error {
	utils.L().Info("parsing timestamp column %s", tsCol)
	idx := t.ColIndex(tsCol)

	ts := make([]string, t.Len())
	valid := 0
	for i, row := range t.Rows {
		if ns, ok := utils.ParseEpochNanos(row[idx]); ok {
			ts[i] = strconv.FormatInt(ns, 10)
			valid++
		}
	}

	if valid == 0 && t.Len() > 0 {
		utils.L().Warn("no values parsed as nanoseconds, retrying as seconds")
		for i, row := range t.Rows {
			if ns, ok := utils.ParseEpochSeconds(row[idx]); ok {
				ts[i] = strconv.FormatInt(ns, 10)
				valid++
			}
		}
		if valid == 0 {
			return fmt.Errorf("timestamp column %q has no parseable values", tsCol)
		}
	}

	t.SetColumn("timestamp", ts)
	return nil
}

// normalizeActivities materializes the "activity_clean" column from the
// raw activity column ("Activity" preferred over "activity"). With no
// activity column every cell stays empty and the filter step drops all rows.
func normalizeActivities(t *models.Table) {
	actCol := ""
	switch {
	case t.HasColumn("Activity"):
		actCol = "Activity"
	case t.HasColumn("activity"):
		actCol = "activity"
	}

	clean := make([]string, t.Len())
	if actCol == "" {
		utils.L().Warn("no activity column found; creating placeholder activity_clean")
	} else {
		idx := t.ColIndex(actCol)
		for i, row := range t.Rows {
			if label, ok := transform.NormalizeActivity(row[idx]); ok {
				clean[i] = label
			}
		}
	}
	t.SetColumn("activity_clean", clean)
}
