package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"sensor-cleaner/models"
)

const ioBufSize = 256 * 1024

// ReadTable loads a whole CSV file into a models.Table. Column names are
// trimmed of whitespace and a leading BOM; short rows are padded with
// empty cells so every row matches the header width.
func ReadTable(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReaderSize(f, ioBufSize))
	r.FieldsPerRecord = -1 // merged exports are occasionally ragged

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csv read header %s: %w", path, err)
	}
	cols := make([]string, len(header))
	for i, c := range header {
		cols[i] = strings.TrimSpace(strings.Trim(c, "\uFEFF"))
	}

	t := &models.Table{Columns: cols}
	rowNum := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("csv read row %d of %s: %w", rowNum, path, err)
		}
		row := make([]string, len(cols))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteTable writes a table (header plus all rows) to a CSV file through a
// buffered writer, flushed once at the end. Single pass, single flush: the
// pipeline stages are one-shot batch runs, so no periodic flusher is needed.
func WriteTable(path string, t *models.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, ioBufSize)
	w := csv.NewWriter(bw)

	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("csv write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv flush %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("csv flush %s: %w", path, err)
	}
	return nil
}
