package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestShuffle(t *testing.T) {
	t.Run("keeps every element", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		slice := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		Shuffle(rng, slice)

		sorted := append([]int(nil), slice...)
		sort.Ints(sorted)
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted, "Shuffle should be a permutation")
	})

	t.Run("is deterministic for a seed", func(t *testing.T) {
		a := []int{0, 1, 2, 3, 4, 5, 6, 7}
		b := []int{0, 1, 2, 3, 4, 5, 6, 7}

		Shuffle(rand.New(rand.NewSource(42)), a)
		Shuffle(rand.New(rand.NewSource(42)), b)

		require.Equal(t, a, b, "Same seed should produce the same order")
	})

	t.Run("handles empty and single element slices", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		require.NotPanics(t, func() {
			Shuffle(rng, []int{})
			Shuffle(rng, []int{3})
		})
	})
}
