package model

import (
	"fmt"
	"time"
)

// Approach timestamps carry minute precision only; the source rows never
// include seconds and the canonical form never introduces them.
const (
	// sourceTimeLayout is the layout used by the NASA close-approach rows,
	// e.g. "2020-Jan-01 12:00".
	sourceTimeLayout = "2006-Jan-02 15:04"

	// canonicalTimeLayout is the layout emitted everywhere by this tool,
	// e.g. "2020-01-01 12:00". Canonical strings round-trip exactly through
	// ParseApproachTime and FormatApproachTime.
	canonicalTimeLayout = "2006-01-02 15:04"
)

// ParseApproachTime parses an approach timestamp in either the NASA source
// layout or the canonical layout. Timestamps are UTC.
func ParseApproachTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(sourceTimeLayout, s, time.UTC)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation(canonicalTimeLayout, s, time.UTC)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unparseable approach time %q", s)
}

// FormatApproachTime formats a timestamp in the canonical minute-precision
// layout.
func FormatApproachTime(t time.Time) string {
	return t.UTC().Format(canonicalTimeLayout)
}
