package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitSet(t *testing.T) {
	t.Run("set and get across both words", func(t *testing.T) {
		b := NewBitSet()
		b.Set(0)
		b.Set(127)

		require.True(t, b.Get(0), "Bit 0 should be set")
		require.True(t, b.Get(127), "Bit 127 should be set")
		require.False(t, b.Get(63), "Bit 63 should not be set")
		require.Equal(t, 2, b.Count())
	})

	t.Run("disjoint sets neither intersect nor contain", func(t *testing.T) {
		a := NewBitSet()
		a.Set(0)
		a.Set(127)
		b := NewBitSet()
		b.Set(64)

		require.False(t, a.Intersects(b), "Sets share no bit")
		require.False(t, b.Intersects(a), "Intersects should be symmetric")
		require.False(t, a.Contains(b), "Bit 64 is not in the first set")
	})

	t.Run("contains subsets and the empty set", func(t *testing.T) {
		a := NewBitSet()
		a.Set(3)
		a.Set(70)
		sub := NewBitSet()
		sub.Set(70)

		require.True(t, a.Contains(sub))
		require.True(t, a.Contains(NewBitSet()), "Every set contains the empty set")
		require.True(t, a.Intersects(sub))
		require.False(t, sub.Contains(a))
	})

	t.Run("union and equality are structural", func(t *testing.T) {
		a := NewBitSet()
		a.Set(1)
		b := NewBitSet()
		b.Set(100)

		u := a.Union(b)
		want := NewBitSet()
		want.Set(100)
		want.Set(1)

		require.Equal(t, want, u)
		require.True(t, u == want, "BitSets should compare by value")
		require.True(t, NewBitSet().IsEmpty())
		require.False(t, u.IsEmpty())
	})

	t.Run("out of range index panics", func(t *testing.T) {
		b := NewBitSet()
		require.Panics(t, func() { b.Set(Capacity) })
	})
}
