package model

import "fmt"

// HazardState is the tri-state potentially-hazardous flag of an NEO.
//
// The source dataset encodes the flag as a single-letter code ("Y"/"N") and
// sometimes omits it entirely; an omitted flag must stay distinguishable from
// "not hazardous", so the zero value is HazardUnknown rather than a boolean.
type HazardState int

const (
	HazardUnknown HazardState = iota
	HazardNo
	HazardYes
)

// ParseHazardState maps a source hazard code to a HazardState.
// An empty code means the field was absent. Any other code is a defect.
func ParseHazardState(code string) (HazardState, error) {
	switch code {
	case "":
		return HazardUnknown, nil
	case "Y":
		return HazardYes, nil
	case "N":
		return HazardNo, nil
	default:
		return HazardUnknown, fmt.Errorf("unrecognized hazard code %q", code)
	}
}

// Known returns true if the flag was present in the source data.
func (h HazardState) Known() bool {
	return h != HazardUnknown
}

// Bool collapses the tri-state down to a boolean for flat outputs, where a
// single hazard column must hold a parseable value. HazardUnknown maps to
// false, matching the falsy treatment of the missing flag in the upstream
// dataset documentation. Callers that must distinguish the unknown state
// compare against the HazardState constants instead.
func (h HazardState) Bool() bool {
	return h == HazardYes
}

// String returns a human-readable state name.
func (h HazardState) String() string {
	switch h {
	case HazardYes:
		return "hazardous"
	case HazardNo:
		return "not hazardous"
	default:
		return "unknown"
	}
}
