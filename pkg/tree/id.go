package tree

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a render node for its whole lifetime.
type ID uint64

// String returns the decimal form of the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Allocator issues monotonically increasing node IDs.
// IDs start at 1 and are never reused. Independent trees should use
// independent allocators.
type Allocator struct {
	last atomic.Uint64
}

// NewAllocator creates an Allocator whose first ID is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Generate returns the next ID.
func (a *Allocator) Generate() ID {
	return ID(a.last.Add(1))
}

// Last returns the most recently generated ID, or 0 if none was issued.
func (a *Allocator) Last() ID {
	return ID(a.last.Load())
}
