package game

import (
	"star/utils"

	"golang.org/x/exp/rand"
)

// PlayRandom completes the position n times with pattern-biased random moves and returns
// the outcome of every playout.
func (s State) PlayRandom(t *Topology, rng *rand.Rand, komi int, n int) *Stats {
	stats := NewStats(t.Count)
	unplayed := make([]int, 0, t.Count-s.Moves)
	for i := 0; i < n; i++ {
		final := s
		unplayed = final.playout(t, rng, unplayed[:0], -1)

		winner := final.FinalWinner(t, komi)
		stats.RecordGame(winner)
		for p := 0; p < t.Count; p++ {
			occupant := Second
			if final.First.Get(p) {
				occupant = First
			}
			stats.RecordPoint(winner, p, occupant)
		}
	}
	return stats
}

// playout fills the board. Each turn answers the previous move with the first applicable
// pattern, otherwise takes the next vacant point of a shuffled order. last is the point
// played just before, or -1.
func (s *State) playout(t *Topology, rng *rand.Rand, unplayed []int, last int) []int {
	for i := 0; i < t.Count; i++ {
		if !s.Any(i) {
			unplayed = append(unplayed, i)
		}
	}
	utils.Shuffle(rng, unplayed)

	next := 0
	for !s.Finished(t) {
		pos := -1
		if last >= 0 {
			current, previous := s.First, s.Second
			if s.PlayerTurn() == Second {
				current, previous = previous, current
			}
			for _, pattern := range t.Patterns[last] {
				if to, ok := pattern.Check(previous, current); ok {
					pos = to
					break
				}
			}
		}
		if pos < 0 {
			for s.Any(unplayed[next]) {
				next++
			}
			pos = unplayed[next]
		}
		s.AddMove(pos)
		last = pos
	}
	return unplayed
}
