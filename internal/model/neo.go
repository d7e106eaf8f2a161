package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// NearEarthObject is a single near-Earth object.
//
// Designation is the primary identifier and the sole join key to the
// close-approach dataset; it is never empty and never changes after
// construction. Name and Diameter are frequently missing upstream: a missing
// name is stored as the empty string (HasName reports the distinction), and a
// missing diameter is stored as NaN so it can never be mistaken for a real
// measurement.
type NearEarthObject struct {
	Designation string
	Name        string
	Diameter    float64
	Hazard      HazardState

	// Approaches holds the object's close approaches in dataset order.
	// It starts empty and is populated only by the database linker.
	Approaches []*CloseApproach
}

// NewNearEarthObject builds an object from raw source fields, coercing each
// one exactly once:
//
//   - designation: kept verbatim (the source value may look numeric but is
//     always treated as a string); must be non-empty
//   - name: empty stays empty, never replaced by a placeholder word
//   - diameter: empty becomes NaN; anything else must parse as a float
//   - hazard: "Y"/"N"/"" per ParseHazardState
func NewNearEarthObject(designation, name, diameter, hazard string) (*NearEarthObject, error) {
	if designation == "" {
		return nil, errors.New("missing primary designation")
	}

	d := math.NaN()
	if diameter != "" {
		var err error
		d, err = strconv.ParseFloat(diameter, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid diameter %q: %w", diameter, err)
		}
	}

	h, err := ParseHazardState(hazard)
	if err != nil {
		return nil, err
	}

	return &NearEarthObject{
		Designation: designation,
		Name:        name,
		Diameter:    d,
		Hazard:      h,
		Approaches:  make([]*CloseApproach, 0),
	}, nil
}

// HasName returns true if the object has an IAU name.
func (n *NearEarthObject) HasName() bool {
	return n.Name != ""
}

// HasDiameter returns true if the object's diameter is known.
func (n *NearEarthObject) HasDiameter() bool {
	return !math.IsNaN(n.Diameter)
}

// Fullname returns the display name: designation and name joined with a
// single space, or the designation alone for unnamed objects.
func (n *NearEarthObject) Fullname() string {
	if n.HasName() {
		return n.Designation + " " + n.Name
	}

	return n.Designation
}

// String returns a human-readable summary of the object.
func (n *NearEarthObject) String() string {
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and is %s",
		n.Fullname(), n.Diameter, n.Hazard)
}
