package intervalmap

import "math/rand"

// node is the basic recursive data structure of the augmented treap: a
// balanced binary search tree keyed on start, randomly prioritized to keep
// the tree balanced in expectation, and augmented with subtreeMaxEnd so the
// overlap search can prune whole subtrees.
//
// Parent pointers are carried explicitly (rather than threaded through a
// recursive split/join, as a classic persistent treap would) so next/prev
// can walk the in-order sequence without a stack, mirroring the rbtree
// rb_next/rb_prev convention this package's case analysis is built on.
type node[A comparable] struct {
	start, end    uint64
	attr          A
	subtreeMaxEnd uint64
	prio          uint64

	parent, left, right *node[A]
}

// subtreeMax returns n.subtreeMaxEnd, or 0 for a nil subtree. 0 is always a
// safe "absent" sentinel because every stored interval has end >= 1
// (start < end and start is a uint64).
func subtreeMax[A comparable](n *node[A]) uint64 {
	if n == nil {
		return 0
	}
	return n.subtreeMaxEnd
}

// recalc recomputes n.subtreeMaxEnd from n.end and the children's cached
// values. Only one level deep is considered, same as the teacher treap's
// recalc: callers are responsible for calling this bottom-up along any
// structurally changed path.
func (n *node[A]) recalc() {
	if n == nil {
		return
	}
	m := n.end
	if v := subtreeMax(n.left); v > m {
		m = v
	}
	if v := subtreeMax(n.right); v > m {
		m = v
	}
	n.subtreeMaxEnd = m
}

// rotateLeft rotates n down and n.right up, fixing parent links and
// recomputing the augmentation at both the rotated-down and rotated-up
// node, per the augmentation contract in §4.1.
func rotateLeft[A comparable](n *node[A]) *node[A] {
	r := n.right
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.parent = n.parent
	r.left = n
	n.parent = r

	n.recalc()
	r.recalc()
	return r
}

// rotateRight rotates n down and n.left up, symmetric to rotateLeft.
func rotateRight[A comparable](n *node[A]) *node[A] {
	l := n.left
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.parent = n.parent
	l.right = n
	n.parent = l

	n.recalc()
	l.recalc()
	return l
}

// replaceChild repoints parent's child pointer (or the tree root) from
// oldChild to newChild.
func replaceChild[A comparable](root **node[A], parent, oldChild, newChild *node[A]) {
	switch {
	case parent == nil:
		*root = newChild
	case parent.left == oldChild:
		parent.left = newChild
	default:
		parent.right = newChild
	}
	if newChild != nil {
		newChild.parent = parent
	}
}

// insertNode links n into the tree keyed on n.start (which must not
// already be present — the case analyses in Add/Delete never reinsert a
// node whose start collides with a survivor) and bubbles it up with
// rotations while its priority exceeds its parent's, restoring the
// max-heap property on prio.
func insertNode[A comparable](root **node[A], n *node[A]) {
	if *root == nil {
		*root = n
		n.parent = nil
		n.recalc()
		return
	}

	cur := *root
	for {
		if n.start < cur.start {
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				break
			}
			cur = cur.right
		}
	}

	n.recalc()
	for p := n.parent; p != nil; p = p.parent {
		p.recalc()
	}

	// bubble up while n has higher priority than its parent
	for n.parent != nil && n.prio > n.parent.prio {
		p := n.parent
		gp := p.parent
		var np *node[A]
		if p.left == n {
			np = rotateRight[A](p)
		} else {
			np = rotateLeft[A](p)
		}
		replaceChild(root, gp, p, np)
	}
}

// eraseNode unlinks n from the tree, rotating it down to a leaf (always
// promoting the higher-priority child, preserving the heap property) and
// then detaching it. The augmentation is recomputed along the way.
func eraseNode[A comparable](root **node[A], n *node[A]) {
	for n.left != nil || n.right != nil {
		var promoteLeft bool
		switch {
		case n.right == nil:
			promoteLeft = true
		case n.left == nil:
			promoteLeft = false
		default:
			promoteLeft = n.left.prio > n.right.prio
		}

		p := n.parent
		var nn *node[A]
		if promoteLeft {
			nn = rotateRight[A](n)
		} else {
			nn = rotateLeft[A](n)
		}
		replaceChild(root, p, n, nn)
	}

	// n is now a leaf, detach it
	p := n.parent
	replaceChild(root, p, n, nil)
	for q := p; q != nil; q = q.parent {
		q.recalc()
	}
	n.parent, n.left, n.right = nil, nil, nil
}

// first returns the leftmost node of the subtree rooted at n, or nil.
func first[A comparable](n *node[A]) *node[A] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// next returns the in-order successor of n, or nil if n is the last node.
func next[A comparable](n *node[A]) *node[A] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return first(n.right)
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// prev returns the in-order predecessor of n, or nil if n is the first node.
func prev[A comparable](n *node[A]) *node[A] {
	if n == nil {
		return nil
	}
	if n.left != nil {
		m := n.left
		for m.right != nil {
			m = m.right
		}
		return m
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// overlaps reports whether a's range and [qs,qe) intersect under strict
// half-open semantics: a.start < qe && qs < a.end. Two ranges that merely
// touch (a.end == qs or a.start == qe) do not overlap under this
// predicate — that distinction is what makes LookupPoint/LookupRange
// resolve deterministically at an exact boundary regardless of tree
// shape. Coalescing touching same-attribute neighbours is handled
// separately (see Tree.coalesce) by an explicit touch test, independent
// of this search.
func overlaps[A comparable](a *node[A], qs, qe uint64) bool {
	return a.start < qe && qs < a.end
}

// lowestOverlap returns the stored node with the smallest start whose
// range intersects [qs, qe), or nil if none exists. O(log n) via the
// subtreeMaxEnd augmentation: descending left whenever the left subtree
// could possibly hold a lower-start overlap.
func lowestOverlap[A comparable](root *node[A], qs, qe uint64) *node[A] {
	n := root
	for n != nil {
		if subtreeMax(n.left) > qs {
			n = n.left
			continue
		}
		if overlaps(n, qs, qe) {
			return n
		}
		if qs >= n.start {
			n = n.right
			continue
		}
		return nil
	}
	return nil
}

// newPrio draws a fresh random priority for the treap's heap ordering.
func newPrio() uint64 {
	return rand.Uint64()
}
