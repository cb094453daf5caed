package intervalmap

import "sync"

// SyncTree wraps a Tree with a mutex, matching the concurrency model the
// specification assigns to the demo driver rather than the library: the
// core itself never locks, but most callers want a ready-made serialized
// handle rather than rolling their own.
type SyncTree[A comparable] struct {
	mu   sync.Mutex
	tree *Tree[A]
}

// NewSyncTree returns an empty, mutex-guarded interval map.
func NewSyncTree[A comparable]() *SyncTree[A] {
	return &SyncTree[A]{tree: NewTree[A]()}
}

func (t *SyncTree[A]) Add(start, end uint64, attr A) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Add(start, end, attr)
}

func (t *SyncTree[A]) Delete(start, end uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Delete(start, end)
}

func (t *SyncTree[A]) LookupRange(start, end uint64) (attr A, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.LookupRange(start, end)
}

func (t *SyncTree[A]) LookupPoint(addr uint64) (attr A, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.LookupPoint(addr)
}

func (t *SyncTree[A]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.Clear()
}

// Iterate holds the lock for the duration of the walk; visit must not
// call back into the SyncTree or it will deadlock.
func (t *SyncTree[A]) Iterate(visit func(start, end uint64, attr A) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.Iterate(visit)
}

func (t *SyncTree[A]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Len()
}
