package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{
		Columns: []string{"time", "x", "activity"},
		Rows: [][]string{
			{"3", "0.1", "walking"},
			{"1", "0.2", "running"},
			{"2", "", "running"},
			{"1", "0.2", "running"},
		},
	}
}

func TestColIndex(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, 0, tbl.ColIndex("time"))
	assert.Equal(t, 2, tbl.ColIndex("activity"))
	assert.Equal(t, -1, tbl.ColIndex("missing"))
	assert.True(t, tbl.HasColumn("x"))
	assert.False(t, tbl.HasColumn("X"))
}

func TestColumnAndSetColumn(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, []string{"3", "1", "2", "1"}, tbl.Column("time"))
	assert.Nil(t, tbl.Column("missing"))

	// Overwrite in place keeps column order.
	tbl.SetColumn("x", []string{"a", "b", "c", "d"})
	assert.Equal(t, []string{"time", "x", "activity"}, tbl.Columns)
	assert.Equal(t, "c", tbl.Rows[2][1])

	// New column appends at the end.
	tbl.SetColumn("label", []string{"l1", "l2", "l3", "l4"})
	assert.Equal(t, []string{"time", "x", "activity", "label"}, tbl.Columns)
	assert.Equal(t, "l4", tbl.Rows[3][3])
}

func TestFilter(t *testing.T) {
	tbl := sampleTable()
	removed := tbl.Filter(func(row []string) bool { return row[1] != "" })
	assert.Equal(t, 1, removed)
	assert.Equal(t, 3, tbl.Len())
	for _, row := range tbl.Rows {
		assert.NotEmpty(t, row[1])
	}
}

func TestDropDuplicates(t *testing.T) {
	tbl := sampleTable()
	removed := tbl.DropDuplicates()
	assert.Equal(t, 1, removed)
	require.Equal(t, 3, tbl.Len())
	// First occurrence wins.
	assert.Equal(t, []string{"3", "0.1", "walking"}, tbl.Rows[0])
	assert.Equal(t, []string{"1", "0.2", "running"}, tbl.Rows[1])
}

func TestSortStable(t *testing.T) {
	tbl := &Table{
		Columns: []string{"time", "seq"},
		Rows: [][]string{
			{"2", "a"},
			{"1", "b"},
			{"1", "c"},
			{"0", "d"},
		},
	}
	tbl.SortStable(func(a, b []string) bool { return a[0] < b[0] })
	assert.Equal(t, [][]string{
		{"0", "d"},
		{"1", "b"}, // ties keep input order
		{"1", "c"},
		{"2", "a"},
	}, tbl.Rows)
}

func TestProject(t *testing.T) {
	tbl := sampleTable()
	out := tbl.Project([]string{"activity", "missing", "time"})
	assert.Equal(t, []string{"activity", "time"}, out.Columns)
	require.Equal(t, 4, out.Len())
	assert.Equal(t, []string{"walking", "3"}, out.Rows[0])

	// Source table is untouched.
	assert.Equal(t, []string{"time", "x", "activity"}, tbl.Columns)
}

func TestIsNumericColumn(t *testing.T) {
	tbl := &Table{
		Columns: []string{"id", "value", "empty", "mixed"},
		Rows: [][]string{
			{"a1", "1.5", "", "1"},
			{"a2", "2", "", "two"},
		},
	}
	assert.False(t, tbl.IsNumericColumn(0)) // non-numeric
	assert.True(t, tbl.IsNumericColumn(1))
	assert.False(t, tbl.IsNumericColumn(2)) // no values at all
	assert.False(t, tbl.IsNumericColumn(3)) // one bad cell spoils it
}
