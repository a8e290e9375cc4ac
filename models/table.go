package models

import (
	"sort"
	"strconv"
	"strings"
)

// Table is an in-memory, column-ordered frame of string cells. The empty
// string marks a missing value, matching how blank CSV cells round-trip.
// Both pipeline stages operate on whole tables; inputs are small enough
// that streaming is not worth the complexity.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColIndex returns the position of a column, or -1 if absent.
func (t *Table) ColIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColIndex(name) >= 0
}

// Column returns a copy of one column's cells.
func (t *Table) Column(name string) []string {
	idx := t.ColIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// SetColumn overwrites an existing column in place, or appends a new one
// at the end of the column order. values must have one cell per row.
func (t *Table) SetColumn(name string, values []string) {
	idx := t.ColIndex(name)
	if idx < 0 {
		t.Columns = append(t.Columns, name)
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], values[i])
		}
		return
	}
	for i := range t.Rows {
		t.Rows[i][idx] = values[i]
	}
}

// Filter keeps only the rows for which keep returns true, preserving order.
// Returns the number of rows removed.
func (t *Table) Filter(keep func(row []string) bool) int {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	removed := len(t.Rows) - len(kept)
	t.Rows = kept
	return removed
}

// DropDuplicates removes rows that are exactly equal across all columns,
// keeping the first occurrence. Returns the number of rows removed.
func (t *Table) DropDuplicates() int {
	seen := make(map[string]struct{}, len(t.Rows))
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		// \x1f never appears in CSV cell data, so the join is unambiguous.
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	removed := len(t.Rows) - len(kept)
	t.Rows = kept
	return removed
}

// SortStable reorders rows by the given comparison; equal rows keep their
// relative input order.
func (t *Table) SortStable(less func(a, b []string) bool) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return less(t.Rows[i], t.Rows[j])
	})
}

// Project returns a new table containing only the named columns, in the
// given order. Unknown names are skipped.
func (t *Table) Project(names []string) *Table {
	idxs := make([]int, 0, len(names))
	cols := make([]string, 0, len(names))
	for _, n := range names {
		if i := t.ColIndex(n); i >= 0 {
			idxs = append(idxs, i)
			cols = append(cols, n)
		}
	}

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		sub := make([]string, len(idxs))
		for k, i := range idxs {
			sub[k] = row[i]
		}
		rows[r] = sub
	}
	return &Table{Columns: cols, Rows: rows}
}

// IsNumericColumn reports whether a column has at least one non-empty cell
// and every non-empty cell parses as a number. Used by the timestamp
// column fallback.
func (t *Table) IsNumericColumn(idx int) bool {
	nonEmpty := 0
	for _, row := range t.Rows {
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return false
		}
		nonEmpty++
	}
	return nonEmpty > 0
}
