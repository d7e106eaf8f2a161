package model

import (
	"errors"
	"fmt"
	"time"
)

// CloseApproach is a single historical pass of an NEO by Earth.
//
// Designation carries the owning object's identifier as it appeared in the
// close-approach row, captured before the join is resolved. NEO is a
// lookup-only back-reference set at most once by the database linker; the
// owning object's Approaches slice is the ownership edge, so an approach is
// never reachable through NEO alone.
type CloseApproach struct {
	Time        time.Time
	Distance    float64
	Velocity    float64
	Designation string

	// NEO is nil until the linker resolves the designation, and stays nil
	// for approaches whose designation matches no loaded object.
	NEO *NearEarthObject
}

// NewCloseApproach builds an approach from raw source fields. The timestamp
// is parsed at minute precision; distance (AU) and velocity (km/s) arrive
// already coerced by the parser.
func NewCloseApproach(designation, timestamp string, distance, velocity float64) (*CloseApproach, error) {
	if designation == "" {
		return nil, errors.New("missing owning designation")
	}

	t, err := ParseApproachTime(timestamp)
	if err != nil {
		return nil, err
	}

	return &CloseApproach{
		Time:        t,
		Distance:    distance,
		Velocity:    velocity,
		Designation: designation,
	}, nil
}

// Linked returns true once the approach has been joined to its object.
func (c *CloseApproach) Linked() bool {
	return c.NEO != nil
}

// TimeStr returns the approach time in the canonical minute-precision form.
func (c *CloseApproach) TimeStr() string {
	return FormatApproachTime(c.Time)
}

// String returns a human-readable summary of the approach.
func (c *CloseApproach) String() string {
	name := c.Designation
	if c.Linked() {
		name = c.NEO.Fullname()
	}

	return fmt.Sprintf("at %s, %s approaches Earth at a distance of %.2f au and a velocity of %.2f km/s",
		c.TimeStr(), name, c.Distance, c.Velocity)
}
