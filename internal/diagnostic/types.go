// Package diagnostic collects non-fatal data-quality findings from a load.
//
// The datasets are not guaranteed mutually consistent, so conditions such as
// a close approach whose designation matches no loaded object are recorded
// here for auditing instead of aborting the run.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity is the severity level of a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Finding is a single data-quality observation.
type Finding struct {
	// Severity of the finding.
	Severity Severity
	// Code is a stable identifier for this kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Dataset is the source file the finding relates to, if any.
	Dataset string
	// Record is the 1-based record ordinal within the dataset, if any.
	Record int
}

// String returns a formatted finding string.
func (f Finding) String() string {
	var b strings.Builder
	b.WriteString(f.Severity.String())

	if f.Code != "" {
		fmt.Fprintf(&b, " [%s]", f.Code)
	}
	if f.Dataset != "" {
		b.WriteString(" " + f.Dataset)
		if f.Record > 0 {
			fmt.Fprintf(&b, ":%d", f.Record)
		}
	}

	b.WriteString(": " + f.Message)

	return b.String()
}

// Diagnostics accumulates findings across a load.
type Diagnostics struct {
	Findings []Finding
}

// AddWarning records a warning-level finding.
func (d *Diagnostics) AddWarning(code, message, dataset string, record int) {
	d.Findings = append(d.Findings, Finding{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Dataset:  dataset,
		Record:   record,
	})
}

// AddInfo records an info-level finding.
func (d *Diagnostics) AddInfo(code, message, dataset string, record int) {
	d.Findings = append(d.Findings, Finding{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Dataset:  dataset,
		Record:   record,
	})
}

// Count returns the number of findings with the given code.
func (d Diagnostics) Count(code string) int {
	n := 0
	for _, f := range d.Findings {
		if f.Code == code {
			n++
		}
	}

	return n
}

// Merge appends another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Findings = append(d.Findings, other.Findings...)
}
