// Package intervalmap implements a generic interval map: a collection of
// half-open [start, end) ranges over uint64 coordinates, each tagged with
// a user-chosen, comparable attribute.
//
// The underlying structure is a treap, a randomly-prioritized balanced
// binary search tree, augmented with the maximum end value in each
// subtree so the leftmost-overlap search runs in O(log n) instead of
// scanning the whole tree.
//
//	Add()         O(log n)
//	Delete()      O(log n)
//	LookupPoint() O(log n)
//	LookupRange() O(log n)
//	Iterate()     O(n)
//
// Add and Delete maintain two invariants on every call: stored ranges
// never overlap, and adjacent ranges carrying the same attribute are
// always coalesced into one. Overlapping a range with Add trims, splits,
// or drops the ranges it overlaps rather than stacking them, so lookups
// never need to consider more than one candidate.
//
// Unlike a persistent treap, this package mutates in place: Add and
// Delete are ordinary single-writer mutations, not copy-on-write. Callers
// serialize access to a Tree themselves, or use SyncTree for a mutex-
// guarded wrapper.
//
// The package has no inherent tie to IP addressing, but the
// internal/ipattr adapter shows the motivating use case this style of
// augmented treap is good at: representing dynamic address tables for
// access control lists and address management, where ranges are added,
// removed, and queried far more often than the whole table is walked.
package intervalmap
