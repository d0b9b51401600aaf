package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
)

const (
	// Bits is the width of every filter.
	Bits = 256

	// hashes is the number of bit positions set per entry.
	hashes = 3
)

// Filter is an approximate set of node IDs.
// The zero value is an empty filter ready to use.
type Filter struct {
	bits *bitset.BitSet
}

// New returns an empty filter.
func New() Filter {
	return Filter{}
}

// Add inserts id into the filter.
func (f *Filter) Add(id uint64) {
	if f.bits == nil {
		f.bits = bitset.New(Bits)
	}
	for _, pos := range positions(id) {
		f.bits.Set(pos)
	}
}

// MayContain reports whether id may have been added.
// A false result is authoritative.
func (f Filter) MayContain(id uint64) bool {
	if f.bits == nil {
		return false
	}
	for _, pos := range positions(id) {
		if !f.bits.Test(pos) {
			return false
		}
	}
	return true
}

// Union returns a new filter containing the entries of both f and other.
// Neither operand is modified.
func (f Filter) Union(other Filter) Filter {
	switch {
	case f.bits == nil && other.bits == nil:
		return Filter{}
	case f.bits == nil:
		return Filter{bits: other.bits.Clone()}
	case other.bits == nil:
		return Filter{bits: f.bits.Clone()}
	}
	return Filter{bits: f.bits.Union(other.bits)}
}

// IsEmpty reports whether nothing was ever added.
func (f Filter) IsEmpty() bool {
	return f.bits == nil || f.bits.None()
}

// Count returns the number of set bits. It is useful for judging saturation.
func (f Filter) Count() uint {
	if f.bits == nil {
		return 0
	}
	return f.bits.Count()
}

func positions(id uint64) [hashes]uint {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], id)
	h := xxhash.Sum64(buf[:])

	var out [hashes]uint
	for i := range out {
		out[i] = uint(h>>(uint(i)*16)) % Bits
	}
	return out
}
