// Package export serializes linked close approaches to CSV or JSON.
//
// Both writers consume approaches that have been linked to their owning
// object; the flat CSV form carries the object's fields inline while the
// JSON form nests them under a "neo" sub-record. The internal no-name and
// unknown-diameter sentinels are translated to true empty fields only here,
// never inside the model.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"neo-explorer/internal/model"
)

const filePerm = 0o644

// csvFields is the flat output header, in contract order.
var csvFields = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// WriteCSV writes one flat row per approach. The designation column carries
// the owning object's display name; an unnamed object leaves the name column
// empty and an unknown diameter is written as NaN. The hazard column is the
// flattened boolean (unknown reports as false).
func WriteCSV(path string, approaches []*model.CloseApproach) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvFields); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, ca := range approaches {
		if !ca.Linked() {
			return fmt.Errorf("approach %d (%s) is not linked to an object", i+1, ca.Designation)
		}

		row := []string{
			ca.TimeStr(),
			formatFloat(ca.Distance),
			formatFloat(ca.Velocity),
			ca.NEO.Fullname(),
			ca.NEO.Name,
			formatFloat(ca.NEO.Diameter),
			strconv.FormatBool(ca.NEO.Hazard.Bool()),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	return nil
}

// jsonNEO is the nested owning-object record.
type jsonNEO struct {
	Designation string   `json:"designation"`
	Name        string   `json:"name"`
	DiameterKM  *float64 `json:"diameter_km"`
	Hazardous   bool     `json:"potentially_hazardous"`
}

// jsonApproach is one output record: the approach's own fields plus the
// owning object nested under "neo".
type jsonApproach struct {
	DatetimeUTC  string  `json:"datetime_utc"`
	DistanceAU   float64 `json:"distance_au"`
	VelocityKMS  float64 `json:"velocity_km_s"`
	NearEarthObj jsonNEO `json:"neo"`
}

// WriteJSON writes the approaches as a JSON array. JSON has no NaN, so an
// unknown diameter serializes as null; an unnamed object serializes with an
// empty name string.
func WriteJSON(path string, approaches []*model.CloseApproach) error {
	records := make([]jsonApproach, 0, len(approaches))
	for i, ca := range approaches {
		if !ca.Linked() {
			return fmt.Errorf("approach %d (%s) is not linked to an object", i+1, ca.Designation)
		}

		var diameter *float64
		if !math.IsNaN(ca.NEO.Diameter) {
			d := ca.NEO.Diameter
			diameter = &d
		}

		records = append(records, jsonApproach{
			DatetimeUTC: ca.TimeStr(),
			DistanceAU:  ca.Distance,
			VelocityKMS: ca.Velocity,
			NearEarthObj: jsonNEO{
				Designation: ca.NEO.Designation,
				Name:        ca.NEO.Name,
				DiameterKM:  diameter,
				Hazardous:   ca.NEO.Hazard.Bool(),
			},
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding approaches: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	return nil
}

// WriteFile picks the output format from the path's extension:
// ".csv" or ".json".
func WriteFile(path string, approaches []*model.CloseApproach) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return WriteCSV(path, approaches)
	case ".json":
		return WriteJSON(path, approaches)
	default:
		return fmt.Errorf("unsupported output extension %q (want .csv or .json)", ext)
	}
}

// formatFloat renders a float in its shortest round-trippable form; NaN
// renders literally as "NaN".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
