package game

import "math/bits"

const (
	bitSetWords = 2
	wordShift   = 6
	wordMask    = 1<<wordShift - 1

	// Capacity is the number of points a BitSet can hold.
	Capacity = bitSetWords << wordShift
)

// BitSet is a fixed-capacity set of point indices. The zero value is the empty set and the
// type is comparable, so it can be part of a map key.
type BitSet struct {
	words [bitSetWords]uint64
}

func NewBitSet() BitSet {
	return BitSet{}
}

// Set adds idx to the set. There is no way to remove an index: occupancy is write-once.
func (b *BitSet) Set(idx int) {
	b.words[idx>>wordShift] |= 1 << uint(idx&wordMask)
}

func (b BitSet) Get(idx int) bool {
	return b.words[idx>>wordShift]&(1<<uint(idx&wordMask)) != 0
}

// Intersects reports whether the two sets share at least one index.
func (b BitSet) Intersects(other BitSet) bool {
	return b.words[0]&other.words[0] != 0 || b.words[1]&other.words[1] != 0
}

// Contains reports whether every index of other is also in b.
func (b BitSet) Contains(other BitSet) bool {
	return b.words[0]&other.words[0] == other.words[0] &&
		b.words[1]&other.words[1] == other.words[1]
}

func (b BitSet) Union(other BitSet) BitSet {
	return BitSet{words: [bitSetWords]uint64{
		b.words[0] | other.words[0],
		b.words[1] | other.words[1],
	}}
}

func (b BitSet) Count() int {
	return bits.OnesCount64(b.words[0]) + bits.OnesCount64(b.words[1])
}

func (b BitSet) IsEmpty() bool {
	return b.words[0] == 0 && b.words[1] == 0
}
