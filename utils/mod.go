package utils

import "golang.org/x/exp/rand"

// Shuffle permutes slice in place.
func Shuffle[T any](rng *rand.Rand, slice []T) {
	rng.Shuffle(len(slice), func(i, j int) {
		slice[i], slice[j] = slice[j], slice[i]
	})
}
