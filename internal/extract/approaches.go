package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"neo-explorer/internal/model"
)

// Row positions in the close-approach dataset. The document carries a
// "fields" list naming every position, but the contract here is positional:
// only these four matter to the loader.
const (
	posDesignation = 0
	posTime        = 3
	posDistance    = 4
	posVelocity    = 7

	// minRowLen is the shortest row that still holds all required positions.
	minRowLen = posVelocity + 1
)

// LoadApproaches reads the close-approach dataset at path and returns one
// approach per row, in row order. Numeric positions coerce to float64
// whether the document supplies them as JSON numbers or as numeric strings.
func LoadApproaches(path string) ([]*model.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening close-approach dataset: %w", err)
	}
	defer f.Close()

	var doc struct {
		Data [][]any `json:"data"`
	}
	dec := json.NewDecoder(f)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, formatErrf(path, 0, "decoding document: %v", err)
	}
	if doc.Data == nil {
		return nil, formatErrf(path, 0, `document has no "data" key`)
	}

	approaches := make([]*model.CloseApproach, 0, len(doc.Data))
	for i, row := range doc.Data {
		if len(row) < minRowLen {
			return nil, formatErrf(path, i+1, "row has %d positions, need at least %d", len(row), minRowLen)
		}

		des, err := stringPos(row, posDesignation)
		if err != nil {
			return nil, formatErr(path, i+1, err)
		}
		ts, err := stringPos(row, posTime)
		if err != nil {
			return nil, formatErr(path, i+1, err)
		}
		dist, err := floatPos(row, posDistance)
		if err != nil {
			return nil, formatErr(path, i+1, err)
		}
		vel, err := floatPos(row, posVelocity)
		if err != nil {
			return nil, formatErr(path, i+1, err)
		}

		ca, err := model.NewCloseApproach(des, ts, dist, vel)
		if err != nil {
			return nil, formatErr(path, i+1, err)
		}

		approaches = append(approaches, ca)
	}

	return approaches, nil
}

// stringPos coerces a row position to a string. Designations occasionally
// arrive as bare numbers; those keep their literal representation.
func stringPos(row []any, pos int) (string, error) {
	switch v := row[pos].(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("position %d: expected string, got %T", pos, v)
	}
}

// floatPos coerces a row position to a float64, accepting both JSON numbers
// and numeric strings.
func floatPos(row []any, pos int) (float64, error) {
	switch v := row[pos].(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("position %d: %w", pos, err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("position %d: non-numeric value %q", pos, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("position %d: expected number, got %T", pos, v)
	}
}
