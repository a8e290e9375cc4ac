package views

// Column schemas for the pipeline's CSV artifacts. This file is the single
// source of truth for column naming and ordering.

// Stage identifies a pipeline stage for schema lookups and logging.
type Stage int

const (
	StageClean Stage = iota
	StageFinalize
)

var stageNames = map[Stage]string{
	StageClean:    "clean",
	StageFinalize: "finalize",
}

func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return "unknown"
}

// CleanedColumns is the canonical ordered column list for the cleaned CSV.
// Only the subset actually present in the data is written.
var CleanedColumns = []string{
	"time", "timestamp_iso", "seconds_elapsed",
	"x", "y", "z",
	"Sensor", "SourceFile", "activity_clean",
}

// AxisColumns are the sensor axis columns; a row with every present axis
// cell empty carries no measurement and is dropped by the cleaner.
var AxisColumns = []string{"x", "y", "z"}

// TimestampCandidates are the preferred timestamp source columns, checked
// in order before falling back to the first numeric column.
var TimestampCandidates = []string{"time", "timestamp"}
