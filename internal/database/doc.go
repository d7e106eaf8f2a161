// Package database links the two loaded datasets into one object graph.
//
// New builds a designation index over the objects, rejects duplicate
// designations, and resolves every approach's designation against the index:
// a hit wires both sides of the association, a miss leaves the approach
// unlinked and records a diagnostic finding. The finished database is
// read-only; no writer exists after New returns.
package database
