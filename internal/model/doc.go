// Package model defines the entity types built from the NASA datasets.
//
// A NearEarthObject describes one near-Earth object: its primary designation
// (required, unique), optional IAU name, optional diameter, and a tri-state
// hazard flag. A CloseApproach describes one historical pass of an NEO by
// Earth: approach time, nominal distance, and relative velocity.
//
// All value coercion happens exactly once, in the constructors. After
// construction the only permitted mutation is the association wired up by
// the database package: an object's Approaches slice and an approach's NEO
// back-reference.
package model
