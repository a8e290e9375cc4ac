package models

import "encoding/json"

// CleanStats is the JSON side artifact written next to the cleaned CSV.
// Field names are part of the on-disk contract.
type CleanStats struct {
	RowsBefore                 int            `json:"rows_before"`
	RowsAfter                  int            `json:"rows_after"`
	RemovedTimestampOrActivity int            `json:"removed_timestamp_or_activity"`
	ActivityCounts             map[string]int `json:"activity_counts"`
	Columns                    []string       `json:"columns"`
}

// JSON renders the stats as indented JSON, as written to the stats file.
func (s *CleanStats) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
