package game

import (
	"fmt"
	"io"
	"strings"
)

// State is an immutable-by-convention board position: copy it, don't share it. It is
// comparable and used directly as a search tree key.
type State struct {
	Moves  int
	First  BitSet
	Second BitSet
}

func NewState() State {
	return State{}
}

// PlayerTurn returns the player to move.
func (s State) PlayerTurn() Player {
	if s.Moves%2 == 0 {
		return First
	}
	return Second
}

// AddMove places a stone for the player to move at point i.
func (s *State) AddMove(i int) {
	if s.Any(i) {
		panic(fmt.Sprintf("point %d is already occupied", i))
	}
	if s.Moves%2 == 0 {
		s.First.Set(i)
	} else {
		s.Second.Set(i)
	}
	s.Moves++
}

// Any reports whether either player occupies point i.
func (s State) Any(i int) bool {
	return s.First.Get(i) || s.Second.Get(i)
}

func (s State) Points(player Player) BitSet {
	if player == First {
		return s.First
	}
	return s.Second
}

// Finished reports whether every point has been played.
func (s State) Finished(t *Topology) bool {
	return s.Moves == t.Count
}

// PlayerScore returns the player's score assuming every point they do not own belongs to
// the opponent, i.e. their minimum possible score. A positive score means the player has won.
func (s State) PlayerScore(t *Topology, player Player, komi int) int {
	points := s.Points(player)
	score := komi
	if player == First {
		score = -komi
	}

	var visited BitSet
	stack := make([]int, 0, t.Count)
	for i := 0; i < t.Count; i++ {
		if visited.Get(i) {
			continue
		}
		owned := points.Get(i)
		visited.Set(i)
		touches := 0
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if t.OnBoundary(p) {
				touches++
			}
			for _, q := range t.Adjacencies[p] {
				if visited.Get(q) || points.Get(q) != owned {
					continue
				}
				visited.Set(q)
				stack = append(stack, q)
			}
		}
		score += regionScore(touches, owned)
	}
	return score
}

// regionScore values a connected region by the number of its points on the boundary.
// Regions touching the edge fewer than twice only cost points.
func regionScore(touches int, owned bool) int {
	sign := -1
	if owned {
		sign = 1
	}
	if touches < 2 {
		return -sign * touches
	}
	return sign * (touches - 4)
}

func (s State) IsWinner(t *Topology, player Player, komi int) bool {
	return s.PlayerScore(t, player, komi) > 0
}

// Winner returns the player whose minimum score is already positive, if any.
func (s State) Winner(t *Topology, komi int) (Player, bool) {
	for _, player := range Players {
		if s.IsWinner(t, player, komi) {
			return player, true
		}
	}
	return First, false
}

// FinalWinner decides a filled board: Second wins whenever First's score is not positive.
func (s State) FinalWinner(t *Topology, komi int) Player {
	if s.IsWinner(t, First, komi) {
		return First
	}
	return Second
}

// Print writes a grid of the board using X, O, . and _ for first player, second player,
// empty and off-board cells.
func (s State) Print(t *Topology, w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(" ")
	for x := 0; x < t.CoordsRange; x++ {
		fmt.Fprintf(&sb, " %d", (x+1)%10)
	}
	sb.WriteString("\n")
	for y := 0; y < t.CoordsRange; y++ {
		fmt.Fprintf(&sb, "%s%d", strings.Repeat(" ", y+1), (y+1)%10)
		for x := 0; x < t.CoordsRange; x++ {
			sb.WriteString(" ")
			idx, ok := t.Index(x, y)
			switch {
			case !ok:
				sb.WriteString("_")
			case s.First.Get(idx) && s.Second.Get(idx):
				panic(fmt.Sprintf("both players occupy point %d", idx))
			case s.First.Get(idx):
				sb.WriteString("X")
			case s.Second.Get(idx):
				sb.WriteString("O")
			default:
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
