package game

// Stats holds the win statistics for a batch of playouts.
type Stats struct {
	Count           uint32 // Number of playouts
	FirstPlayerWins uint32
	Points          []PointStats // Outcomes grouped by the occupant of each point
}

// PointStats counts, for one point, how often each player ended up owning it and how often
// they then won the playout.
type PointStats struct {
	P1     uint32
	P1Wins uint32
	P2     uint32
	P2Wins uint32
}

func NewStats(count int) *Stats {
	return &Stats{Points: make([]PointStats, count)}
}

// SingleStats returns statistics as if winner won n playouts with no point information.
// Used for filled boards, whose winner is already decided.
func SingleStats(count int, winner Player, n int) *Stats {
	s := NewStats(count)
	s.Count = uint32(n)
	if winner == First {
		s.FirstPlayerWins = uint32(n)
	}
	return s
}

func (s *Stats) RecordGame(winner Player) {
	s.Count++
	if winner == First {
		s.FirstPlayerWins++
	}
}

// RecordPoint records which player owned point at the end of a playout and whether they won.
func (s *Stats) RecordPoint(winner Player, point int, player Player) {
	ps := &s.Points[point]
	switch player {
	case First:
		ps.P1++
		if winner == player {
			ps.P1Wins++
		}
	case Second:
		ps.P2++
		if winner == player {
			ps.P2Wins++
		}
	}
}

// Wins returns the number of playouts won by player.
func (s *Stats) Wins(player Player) uint32 {
	if player == First {
		return s.FirstPlayerWins
	}
	return s.Count - s.FirstPlayerWins
}
