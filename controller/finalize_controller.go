package controller

import (
	"strings"

	"sensor-cleaner/models"
	"sensor-cleaner/services/transform"
	"sensor-cleaner/utils"
	"sensor-cleaner/views"
)

// FinalizeController is the second pipeline stage. It reads the cleaned
// CSV and guarantees three columns in the final output: lowercase
// "activity", title-case "Activity", and "timestamp_iso". Every other
// column passes through untouched.
type FinalizeController struct {
	cfg utils.FinalizeConfig
}

// NewFinalizeController creates the stage from its config section.
func NewFinalizeController(cfg utils.FinalizeConfig) *FinalizeController {
	return &FinalizeController{cfg: cfg}
}

// Run executes the finalizing pass. Running it on its own output is a
// no-op for the managed columns.
func (c *FinalizeController) Run() error {
	utils.L().Info("reading %s", c.cfg.InputPath)
	tbl, err := views.ReadTable(c.cfg.InputPath)
	if err != nil {
		return err
	}
	utils.L().Info("initial rows: %d", tbl.Len())

	ensureActivity(tbl)
	ensureTimestampISO(tbl)

	utils.L().Info("writing final CSV to %s", c.cfg.OutputPath)
	if err := views.WriteTable(c.cfg.OutputPath, tbl); err != nil {
		return err
	}
	utils.L().Info("done, final rows: %d", tbl.Len())
	return nil
}

// ensureActivity guarantees consistent "activity" (trimmed lowercase) and
// "Activity" (title case, always re-derived) columns. The source is, in
// preference order: an existing "activity" column, the cleaner's
// "activity_clean", an original "Activity", else empty strings.
func ensureActivity(t *models.Table) {
	if !t.HasColumn("activity") {
		switch {
		case t.HasColumn("activity_clean"):
			t.SetColumn("activity", t.Column("activity_clean"))
		case t.HasColumn("Activity"):
			t.SetColumn("activity", t.Column("Activity"))
		default:
			utils.L().Warn("no activity column found; creating placeholder with empty strings")
			t.SetColumn("activity", make([]string, t.Len()))
			t.SetColumn("Activity", make([]string, t.Len()))
			return
		}
	}

	idx := t.ColIndex("activity")
	title := make([]string, t.Len())
	for i, row := range t.Rows {
		norm := strings.ToLower(strings.TrimSpace(row[idx]))
		row[idx] = norm
		title[i] = transform.TitleCase(norm)
	}
	t.SetColumn("Activity", title)
}

// ensureTimestampISO derives "timestamp_iso" from a raw "timestamp"
// column when the cleaner's ISO column is absent. Cells are parsed as
// ns-epoch; if none parse, the column is retried with generic layouts.
// Unparseable cells stay empty.
func ensureTimestampISO(t *models.Table) {
	if t.HasColumn("timestamp_iso") || !t.HasColumn("timestamp") {
		return
	}
	idx := t.ColIndex("timestamp")

	iso := make([]string, t.Len())
	valid := 0
	for i, row := range t.Rows {
		if ns, ok := utils.ParseEpochNanos(row[idx]); ok {
			iso[i] = utils.FormatISO(ns)
			valid++
		}
	}
	if valid == 0 && t.Len() > 0 {
		utils.L().Warn("timestamp column is not nanosecond epoch, retrying generic parse")
		for i, row := range t.Rows {
			if ns, ok := utils.ParseFlexible(row[idx]); ok {
				iso[i] = utils.FormatISO(ns)
			}
		}
	}
	t.SetColumn("timestamp_iso", iso)
}
