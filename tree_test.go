package intervalmap_test

import (
	"errors"
	"testing"

	"github.com/kinterval/intervalmap"
)

func wantOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}
}

func wantErr(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("got error %v, want %v", err, want)
	}
}

// collect returns the stored intervals in order as [start,end,attr] triples.
func collect(tree *intervalmap.Tree[int]) [][3]int {
	var got [][3]int
	tree.Iterate(func(start, end uint64, attr int) bool {
		got = append(got, [3]int{int(start), int(end), attr})
		return true
	})
	return got
}

func wantIntervals(t *testing.T, tree *intervalmap.Tree[int], want [][3]int) {
	t.Helper()
	got := collect(tree)
	if len(got) != len(want) {
		t.Fatalf("got %v intervals, want %v\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("interval %d: got %v, want %v\ngot:  %v\nwant: %v", i, got[i], want[i], got, want)
		}
	}
	if tree.Len() != len(want) {
		t.Fatalf("Len() = %v, want %v", tree.Len(), len(want))
	}
}

func TestEmptyTree(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()

	if _, err := tree.LookupPoint(42); !errors.Is(err, intervalmap.ErrNotFound) {
		t.Errorf("LookupPoint on empty tree = %v, want ErrNotFound", err)
	}

	wantOK(t, tree.Delete(0, 100))
	wantIntervals(t, tree, nil)

	var visited bool
	tree.Iterate(func(uint64, uint64, int) bool { visited = true; return true })
	if visited {
		t.Errorf("Iterate visited a node on an empty tree")
	}
}

func TestInvalidArgument(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantErr(t, tree.Add(10, 10, 1), intervalmap.ErrInvalidArgument)
	wantErr(t, tree.Add(10, 5, 1), intervalmap.ErrInvalidArgument)
	wantErr(t, tree.Delete(10, 10), intervalmap.ErrInvalidArgument)
	wantErr(t, tree.Delete(10, 5), intervalmap.ErrInvalidArgument)

	if _, err := tree.LookupRange(10, 10); !errors.Is(err, intervalmap.ErrInvalidArgument) {
		t.Errorf("LookupRange(10,10) = %v, want ErrInvalidArgument", err)
	}
}

func TestAddCoalescesTouchingSameType(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(10, 20, 1))
	wantOK(t, tree.Add(30, 40, 1))
	wantOK(t, tree.Add(20, 30, 1))

	wantIntervals(t, tree, [][3]int{{10, 40, 1}})
}

func TestAddDoesNotCoalesceDifferentType(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(10, 20, 1))
	wantOK(t, tree.Add(30, 40, 1))
	wantOK(t, tree.Add(20, 30, 2))

	wantIntervals(t, tree, [][3]int{{10, 20, 1}, {20, 30, 2}, {30, 40, 1}})
}

func TestAddSplitsInterior(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(0, 100, 1))
	wantOK(t, tree.Add(40, 60, 2))

	wantIntervals(t, tree, [][3]int{{0, 40, 1}, {40, 60, 2}, {60, 100, 1}})
}

func TestDeleteCarvesHole(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(0, 100, 1))
	wantOK(t, tree.Delete(40, 60))

	wantIntervals(t, tree, [][3]int{{0, 40, 1}, {60, 100, 1}})

	if _, err := tree.LookupPoint(50); !errors.Is(err, intervalmap.ErrNotFound) {
		t.Errorf("LookupPoint(50) = %v, want ErrNotFound", err)
	}
	if got, err := tree.LookupPoint(39); err != nil || got != 1 {
		t.Errorf("LookupPoint(39) = (%v, %v), want (1, nil)", got, err)
	}
	if got, err := tree.LookupPoint(60); err != nil || got != 1 {
		t.Errorf("LookupPoint(60) = (%v, %v), want (1, nil)", got, err)
	}
}

func TestAddShrinksFromRight(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(0, 10, 1))
	wantOK(t, tree.Add(5, 15, 2))

	wantIntervals(t, tree, [][3]int{{0, 5, 1}, {5, 15, 2}})

	if got, err := tree.LookupPoint(5); err != nil || got != 2 {
		t.Errorf("LookupPoint(5) = (%v, %v), want (2, nil)", got, err)
	}
	if got, err := tree.LookupPoint(4); err != nil || got != 1 {
		t.Errorf("LookupPoint(4) = (%v, %v), want (1, nil)", got, err)
	}
}

func TestAddExactOverwrite(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(10, 20, 1))
	wantOK(t, tree.Add(10, 20, 2))

	wantIntervals(t, tree, [][3]int{{10, 20, 2}})
}

func TestAddSupersetDropsOld(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(10, 20, 1))
	wantOK(t, tree.Add(12, 18, 2))
	wantOK(t, tree.Add(0, 30, 3))

	wantIntervals(t, tree, [][3]int{{0, 30, 3}})
}

func TestAddSameTypeInteriorIsNoop(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(0, 100, 7))
	wantOK(t, tree.Add(40, 60, 7))

	wantIntervals(t, tree, [][3]int{{0, 100, 7}})
}

func TestRoundTripAddDelete(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(10, 20, 1))
	before := collect(tree)

	wantOK(t, tree.Add(30, 50, 2))
	wantOK(t, tree.Delete(30, 50))

	after := collect(tree)
	if len(before) != len(after) {
		t.Fatalf("round trip changed interval count: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("round trip changed intervals: %v -> %v", before, after)
		}
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	t.Run("add", func(t *testing.T) {
		a := intervalmap.NewTree[int]()
		b := intervalmap.NewTree[int]()
		wantOK(t, a.Add(5, 10, 9))
		wantOK(t, a.Add(5, 10, 9))
		wantOK(t, b.Add(5, 10, 9))
		if a.String() != b.String() {
			t.Errorf("Add twice != Add once:\n%s\nvs\n%s", a, b)
		}
	})

	t.Run("delete", func(t *testing.T) {
		a := intervalmap.NewTree[int]()
		b := intervalmap.NewTree[int]()
		wantOK(t, a.Add(0, 100, 9))
		wantOK(t, b.Add(0, 100, 9))
		wantOK(t, a.Delete(10, 20))
		wantOK(t, a.Delete(10, 20))
		wantOK(t, b.Delete(10, 20))
		if a.String() != b.String() {
			t.Errorf("Delete twice != Delete once:\n%s\nvs\n%s", a, b)
		}
	})
}

func TestClear(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	for i := 0; i < 20; i++ {
		wantOK(t, tree.Add(uint64(i*10), uint64(i*10+5), i))
	}
	tree.Clear()
	wantIntervals(t, tree, nil)
	wantOK(t, tree.Add(0, 5, 1))
	wantIntervals(t, tree, [][3]int{{0, 5, 1}})
}

func TestIterateEarlyExit(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	wantOK(t, tree.Add(0, 10, 1))
	wantOK(t, tree.Add(20, 30, 2))
	wantOK(t, tree.Add(40, 50, 3))

	var seen int
	tree.Iterate(func(uint64, uint64, int) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("Iterate stopped after %d visits, want 2", seen)
	}
}

func TestLookupPointMaxUint64(t *testing.T) {
	t.Parallel()

	tree := intervalmap.NewTree[int]()
	if _, err := tree.LookupPoint(^uint64(0)); !errors.Is(err, intervalmap.ErrNotFound) {
		t.Errorf("LookupPoint(MaxUint64) = %v, want ErrNotFound", err)
	}
}

func TestAllocatorVariants(t *testing.T) {
	t.Parallel()

	for _, newTree := range []func() *intervalmap.Tree[int]{
		intervalmap.NewTree[int],
		intervalmap.NewTreeWithAllocator[int],
	} {
		tree := newTree()
		wantOK(t, tree.Add(0, 10, 1))
		wantOK(t, tree.Add(10, 20, 1))
		wantOK(t, tree.Delete(5, 15))
		wantIntervals(t, tree, [][3]int{{0, 5, 1}, {15, 20, 1}})
	}
}
