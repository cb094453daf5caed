package intervalmap

import "errors"

// Sentinel errors returned by the public API. Test with errors.Is, not
// direct comparison, in case a future version wraps additional context.
var (
	// ErrInvalidArgument is returned when end <= start on any public
	// operation. The tree is left unchanged.
	ErrInvalidArgument = errors.New("intervalmap: end must be greater than start")

	// ErrOutOfMemory is returned when the configured allocator fails to
	// produce a node. The tree is left satisfying all invariants: on the
	// interior-hole cases (Add case E, Delete case d) the split fragment
	// is allocated before the pivot node is erased, so a failure there
	// leaves the pivot untouched.
	ErrOutOfMemory = errors.New("intervalmap: node allocation failed")

	// ErrNotFound is returned by LookupPoint/LookupRange when no stored
	// interval overlaps the query. Not a fault, part of the normal result
	// space.
	ErrNotFound = errors.New("intervalmap: no overlapping interval")
)
