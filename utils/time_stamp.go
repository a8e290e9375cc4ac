package utils

import (
	"strconv"
	"strings"
	"time"
)

// ISOLayout is the output timestamp format: UTC ISO-8601 with microsecond
// precision and a literal Z suffix.
const ISOLayout = "2006-01-02T15:04:05.000000Z"

// NanoToTime converts a nanosecond Unix timestamp to time.Time in UTC.
func NanoToTime(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}

// FormatISO renders a ns-epoch timestamp as an ISO-8601 UTC string.
func FormatISO(ns int64) string {
	return NanoToTime(ns).Format(ISOLayout)
}

// ParseEpochNanos interprets a raw cell as integer nanoseconds since Unix
// epoch. Returns ok=false for empty or non-integer cells; fractional
// values belong to the seconds interpretation.
func ParseEpochNanos(cell string) (int64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	ns, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return ns, true
}

// ParseEpochSeconds interprets a raw cell as (possibly fractional) seconds
// since Unix epoch, converted to nanoseconds. The integer and fractional
// parts are scaled separately so microsecond precision survives the
// float64 round-trip.
func ParseEpochSeconds(cell string) (int64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * float64(time.Second))
	return sec*int64(time.Second) + nsec, true
}

// flexibleLayouts are tried in order by ParseFlexible.
var flexibleLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
}

// ParseFlexible is the last-resort timestamp parser used by the finalizer:
// common datetime layouts first, then numeric seconds since epoch.
func ParseFlexible(cell string) (int64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().UnixNano(), true
		}
	}
	return ParseEpochSeconds(cell)
}
