package database

import (
	"errors"
	"fmt"

	"neo-explorer/internal/diagnostic"
	"neo-explorer/internal/model"
)

// ErrDuplicateDesignation marks two objects sharing a primary designation.
// The designation index must be a bijection, so this aborts the load.
var ErrDuplicateDesignation = errors.New("duplicate primary designation")

// CodeUnlinkedApproach is the diagnostic code recorded for every approach
// whose designation matches no loaded object.
const CodeUnlinkedApproach = "unlinked-approach"

// NEODatabase holds the fully linked object graph.
type NEODatabase struct {
	neos       []*model.NearEarthObject
	approaches []*model.CloseApproach

	byDesignation map[string]*model.NearEarthObject

	unlinked int
	diags    diagnostic.Diagnostics
}

// New links the loaded datasets into a database. Objects are indexed by
// designation first; a duplicate designation fails the whole load. Each
// approach is then resolved in dataset order: on a hit the approach's NEO
// reference is set and the approach is appended to the object's Approaches,
// on a miss the approach stays unlinked and a warning finding is recorded.
//
// On error no database is returned; a partially linked graph never escapes.
func New(neos []*model.NearEarthObject, approaches []*model.CloseApproach) (*NEODatabase, error) {
	db := &NEODatabase{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*model.NearEarthObject, len(neos)),
	}

	for i, neo := range neos {
		if _, exists := db.byDesignation[neo.Designation]; exists {
			return nil, fmt.Errorf("object %d (%s): %w", i+1, neo.Designation, ErrDuplicateDesignation)
		}
		db.byDesignation[neo.Designation] = neo
	}

	for i, ca := range approaches {
		neo, ok := db.byDesignation[ca.Designation]
		if !ok {
			db.unlinked++
			db.diags.AddWarning(CodeUnlinkedApproach,
				fmt.Sprintf("no object with designation %q", ca.Designation),
				"close-approach dataset", i+1)
			continue
		}

		ca.NEO = neo
		neo.Approaches = append(neo.Approaches, ca)
	}

	return db, nil
}

// NEOs returns all loaded objects in dataset order.
func (db *NEODatabase) NEOs() []*model.NearEarthObject {
	return db.neos
}

// Approaches returns all loaded approaches in dataset order, linked or not.
func (db *NEODatabase) Approaches() []*model.CloseApproach {
	return db.approaches
}

// GetByDesignation returns the object with the given primary designation.
func (db *NEODatabase) GetByDesignation(designation string) (*model.NearEarthObject, bool) {
	neo, ok := db.byDesignation[designation]
	return neo, ok
}

// Unlinked returns the number of approaches whose designation matched no
// loaded object.
func (db *NEODatabase) Unlinked() int {
	return db.unlinked
}

// Diagnostics returns the data-quality findings recorded during linking.
func (db *NEODatabase) Diagnostics() diagnostic.Diagnostics {
	return db.diags
}
