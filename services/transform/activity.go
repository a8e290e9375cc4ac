// Package transform holds the pure normalization primitives shared by the
// cleaning and finalizing stages.
package transform

import (
	"strings"
	"unicode"
)

// Canonical activity vocabulary.
const (
	ActivityJumping  = "jumping"
	ActivityStanding = "standing"
	ActivityStill    = "still"
	ActivityWalking  = "walking"
	ActivityRunning  = "running"
)

// substringRules map raw labels to the canonical vocabulary by substring
// containment. Checked in this priority order: session labels often carry
// prefixes/suffixes (e.g. "rene-running-2025-10-29"), so exact matching
// is too strict. A label containing several needles resolves to the first.
var substringRules = []struct {
	needle string
	label  string
}{
	{"jump", ActivityJumping},
	{"stand", ActivityStanding},
	{"still", ActivityStill},
	{"walk", ActivityWalking},
	{"run", ActivityRunning},
}

// synonyms are exact-match aliases, checked after the substring rules.
var synonyms = map[string]string{
	"jog":     ActivityRunning,
	"jogging": ActivityRunning,
}

// NormalizeActivity lowercases and trims a raw activity label and maps it
// onto the canonical vocabulary. Labels matching no rule are kept verbatim
// (lowercased, trimmed). ok is false for empty/missing labels.
func NormalizeActivity(raw string) (label string, ok bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	for _, rule := range substringRules {
		if strings.Contains(s, rule.needle) {
			return rule.label, true
		}
	}
	if canon, hit := synonyms[s]; hit {
		return canon, true
	}
	return s, true
}

// TitleCase uppercases the first letter of every word and lowercases the
// rest, treating any non-letter as a word boundary ("walk-then-run" →
// "Walk-Then-Run").
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
