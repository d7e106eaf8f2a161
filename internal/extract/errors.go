package extract

import (
	"errors"
	"fmt"
)

// ErrFormat marks malformed or missing required source data. Any load that
// returns it surfaces no partial result.
var ErrFormat = errors.New("malformed source data")

// FormatError reports a structural or per-record defect in a source dataset.
type FormatError struct {
	// Dataset is the path of the offending file.
	Dataset string
	// Record is the 1-based ordinal of the offending record, or 0 when the
	// defect is structural (bad header, missing top-level key).
	Record int
	// Err is the underlying cause.
	Err error
}

func (e *FormatError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("%s: record %d: %v", e.Dataset, e.Record, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Dataset, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFormat) match any FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func formatErr(dataset string, record int, err error) error {
	return &FormatError{Dataset: dataset, Record: record, Err: err}
}

func formatErrf(dataset string, record int, format string, args ...any) error {
	return formatErr(dataset, record, fmt.Errorf(format, args...))
}
