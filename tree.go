package intervalmap

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Tree is the handle to an interval map: a collection of half-open
// [start, end) ranges over uint64 coordinates, each tagged with an
// attribute of type A, maintained non-overlapping and coalesced. The zero
// value is not usable; construct one with NewTree or NewTreeWithAllocator.
//
// A Tree is not safe for concurrent use; callers serialize access to a
// single tree themselves, or wrap it with SyncTree.
type Tree[A comparable] struct {
	root  *node[A]
	alloc nodeAllocator[A]
	size  int

	// logger, if set, receives debug-level events for otherwise silent
	// bulk operations (currently just Clear). Nil is a no-op, matching
	// the nop-logger convention used throughout the corpus.
	logger *zap.Logger
}

// NewTree returns an empty interval map backed by the default, GC-managed
// node allocator.
func NewTree[A comparable]() *Tree[A] {
	return &Tree[A]{alloc: gcAllocator[A]{}}
}

// NewTreeWithAllocator returns an empty interval map backed by a per-tree
// free-list allocator that recycles erased nodes instead of handing them
// to the garbage collector. Prefer this for workloads that churn Add and
// Delete heavily.
func NewTreeWithAllocator[A comparable]() *Tree[A] {
	return &Tree[A]{alloc: newFreeListAllocator[A]()}
}

// SetLogger attaches a structured logger for otherwise silent bulk
// operations. Passing nil disables logging (the default).
func (t *Tree[A]) SetLogger(l *zap.Logger) {
	t.logger = l
}

// Len returns the number of stored, non-overlapping intervals.
func (t *Tree[A]) Len() int {
	return t.size
}

func (t *Tree[A]) makeNode(start, end uint64, attr A) *node[A] {
	n := t.alloc.alloc()
	if n == nil {
		return nil
	}
	n.start, n.end, n.attr = start, end, attr
	n.prio = newPrio()
	n.subtreeMaxEnd = end
	return n
}

// eraseAndFree unlinks o from the tree and returns it to the allocator.
func (t *Tree[A]) eraseAndFree(o *node[A]) {
	eraseNode(&t.root, o)
	t.alloc.free(o)
	t.size--
}

// Add makes [start, end) present with attribute attr, overwriting any
// previous attribute on that range, and coalesces with neighbouring ranges
// of equal attribute. Fails with ErrInvalidArgument if end <= start.
func (t *Tree[A]) Add(start, end uint64, attr A) error {
	if end <= start {
		return ErrInvalidArgument
	}

	n := t.makeNode(start, end, attr)
	if n == nil {
		return ErrOutOfMemory
	}

	l := lowestOverlap(t.root, start, end)
	if l == nil {
		insertNode(&t.root, n)
		t.size++
		t.coalesce(n)
		return nil
	}

	cur := l
	for cur != nil && cur.start < end {
		o := cur
		cur = next(o)

		switch {
		case start == o.start && end == o.end:
			// A: exact match, overwrite the type and discard N. The new
			// attribute may now match a touching neighbour (e.g.
			// Add(0,5,1); Add(5,10,2); Add(5,10,1)), so O is coalesced.
			o.attr = attr
			t.alloc.free(n)
			t.coalesce(o)
			return nil

		case start <= o.start && end >= o.end:
			// B: N entirely covers O, drop O.
			t.eraseAndFree(o)

		case start <= o.start && end < o.end:
			// C: N overlaps O's left side, shrink O from the left.
			eraseNode(&t.root, o)
			o.start = end
			insertNode(&t.root, o)
			cur = nil // stop the walk

		case start > o.start && end >= o.end:
			// D: N overlaps O's right side, shrink O from the right.
			eraseNode(&t.root, o)
			o.end = start
			insertNode(&t.root, o)

		default:
			// E: O strictly contains N.
			if o.attr == attr {
				t.alloc.free(n)
				return nil
			}

			left := t.makeNode(o.start, start, o.attr)
			if left == nil {
				t.alloc.free(n)
				return ErrOutOfMemory
			}

			eraseNode(&t.root, o)
			o.start = end // reuse o as the right fragment
			t.size++      // left is a brand new stored interval

			insertNode(&t.root, o)
			insertNode(&t.root, left)
			insertNode(&t.root, n)
			t.size++
			return nil
		}
	}

	insertNode(&t.root, n)
	t.size++
	t.coalesce(n)
	return nil
}

// coalesce merges n with its in-order predecessor and successor if they
// touch and share n's attribute, per invariant (3). It only ever extends
// an end field, never a start: the successor merge is applied first so
// that if the predecessor also matches, it absorbs n's final (possibly
// already-extended) end and n is the one erased. No survivor's key
// (start) ever changes, so the tree never needs repositioning a node in
// place.
func (t *Tree[A]) coalesce(n *node[A]) {
	if s := next(n); s != nil && n.end == s.start && n.attr == s.attr {
		n.end = s.end
		t.eraseAndFree(s)
	}
	if p := prev(n); p != nil && p.end == n.start && p.attr == n.attr {
		p.end = n.end
		t.eraseAndFree(n)
	}
}

// Delete removes any stored attribute from [start, end), truncating or
// splitting surrounding ranges as needed. Fails with ErrInvalidArgument if
// end <= start.
func (t *Tree[A]) Delete(start, end uint64) error {
	if end <= start {
		return ErrInvalidArgument
	}

	l := lowestOverlap(t.root, start, end)
	cur := l
	for cur != nil && cur.start < end {
		o := cur
		cur = next(o)

		switch {
		case start <= o.start && end >= o.end:
			// a: erase O entirely.
			t.eraseAndFree(o)

		case start <= o.start && end < o.end:
			// b: trim the beginning of O.
			eraseNode(&t.root, o)
			o.start = end
			insertNode(&t.root, o)
			cur = nil // stop the walk

		case start > o.start && end >= o.end:
			// c: trim the end of O.
			eraseNode(&t.root, o)
			o.end = start
			insertNode(&t.root, o)

		default:
			// d: split O, carving an interior hole.
			left := t.makeNode(o.start, start, o.attr)
			if left == nil {
				return ErrOutOfMemory
			}

			eraseNode(&t.root, o)
			o.start = end // reuse o as the right fragment
			t.size++

			insertNode(&t.root, o)
			insertNode(&t.root, left)
			return nil
		}
	}
	return nil
}

// LookupRange returns the attribute of the leftmost stored interval that
// overlaps [start, end), or ErrNotFound if none does. Fails with
// ErrInvalidArgument if end <= start.
func (t *Tree[A]) LookupRange(start, end uint64) (attr A, err error) {
	if end <= start {
		return attr, ErrInvalidArgument
	}
	n := lowestOverlap(t.root, start, end)
	if n == nil {
		return attr, ErrNotFound
	}
	return n.attr, nil
}

// LookupPoint returns the attribute of the stored interval covering addr,
// or ErrNotFound if none does. Defined as LookupRange(addr, addr+1);
// addr == math.MaxUint64 always returns ErrNotFound since addr+1 would
// overflow into an invalid (empty) range.
func (t *Tree[A]) LookupPoint(addr uint64) (attr A, err error) {
	if addr == ^uint64(0) {
		return attr, ErrNotFound
	}
	return t.LookupRange(addr, addr+1)
}

// Clear removes every stored interval. The tree is empty on return.
func (t *Tree[A]) Clear() {
	// Walk the whole tree before freeing anything: a recycling allocator
	// clears a freed node's links, which next() would otherwise follow.
	var nodes []*node[A]
	for n := first(t.root); n != nil; n = next(n) {
		if t.logger != nil {
			t.logger.Debug("intervalmap: clearing range",
				zap.Uint64("start", n.start),
				zap.Uint64("end", n.end),
				zap.Any("attr", n.attr))
		}
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		t.alloc.free(n)
	}
	t.root = nil
	t.size = 0
}

// Iterate walks the stored intervals in order of start and invokes visit
// with each (start, end, attr). Iteration stops early if visit returns
// false. visit must not mutate the tree.
func (t *Tree[A]) Iterate(visit func(start, end uint64, attr A) bool) {
	for n := first(t.root); n != nil; n = next(n) {
		if !visit(n.start, n.end, n.attr) {
			return
		}
	}
}

// String renders the stored intervals in order, one per line, as
// "[start,end)=attr". Mainly useful for tests and debugging.
func (t *Tree[A]) String() string {
	var b strings.Builder
	t.Iterate(func(start, end uint64, attr A) bool {
		fmt.Fprintf(&b, "[%d,%d)=%v\n", start, end, attr)
		return true
	})
	return b.String()
}
