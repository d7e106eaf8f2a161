package extract

import (
	"encoding/csv"
	"fmt"
	"os"

	"neo-explorer/internal/model"
)

// Column names in the tabular NEO dataset. Positions are not guaranteed, so
// columns are located through the header row.
const (
	colDesignation = "pdes"
	colName        = "name"
	colDiameter    = "diameter"
	colHazard      = "pha"
)

// LoadNEOs reads the NEO dataset at path and returns one object per data
// row, in file order. Only the designation column is required; missing or
// empty name, diameter, and hazard columns coerce to their absent-value
// states in the entity constructor.
func LoadNEOs(path string) ([]*model.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening NEO dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, formatErrf(path, 0, "reading header row: %v", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	if _, ok := cols[colDesignation]; !ok {
		return nil, formatErrf(path, 0, "header has no %q column", colDesignation)
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, formatErrf(path, 0, "reading rows: %v", err)
	}

	neos := make([]*model.NearEarthObject, 0, len(rows))
	for i, row := range rows {
		neo, err := model.NewNearEarthObject(
			field(row, colDesignation),
			field(row, colName),
			field(row, colDiameter),
			field(row, colHazard),
		)
		if err != nil {
			return nil, formatErr(path, i+1, err)
		}

		neos = append(neos, neo)
	}

	return neos, nil
}
