package searcher

import (
	"errors"
	"fmt"
	"io"
	"time"

	"star/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrInvalidCoord = errors.New("coordinate is not on the board")
	ErrOccupied     = errors.New("point is already occupied")
	ErrNoMoves      = errors.New("board is full")
)

type Option func(m *MCTS)

// MCTS searches the current position with AMAF-guided tree search. It is not safe for
// concurrent use.
type MCTS struct {
	topo    *game.Topology
	state   game.State
	tree    tree
	rng     *rand.Rand
	seed    uint64
	inner   int
	metrics MetricsCollector
}

// WithSeed fixes the random source, making searches reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithInnerIterations(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.inner = n
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(size int, options ...Option) (*MCTS, error) {
	topo, err := game.NewTopology(size)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}

	state := game.NewState()
	m := &MCTS{ // Default values
		topo:    topo,
		state:   state,
		tree:    newTree(state),
		seed:    uint64(time.Now().UnixNano()),
		inner:   InnerIterations,
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	m.metrics.Start()
	return m, nil
}

// Calculate runs the given number of searches from the current position. Call it in small
// batches to stop on a deadline.
func (m *MCTS) Calculate(iterations int, komi int) {
	for i := 0; i < iterations; i++ {
		m.play(m.state, komi)
		m.metrics.AddEpisode()
	}
}

// play descends from state to a position without direct visits, simulates it and updates
// every node on the way back.
func (m *MCTS) play(state game.State, komi int) *game.Stats {
	if state.Finished(m.topo) {
		m.metrics.AddTerminal()
		return game.SingleStats(m.topo.Count, state.FinalWinner(m.topo, komi), m.inner)
	}

	node := m.tree.node(state)
	var stats *game.Stats
	if node.SelfVisits == 0 {
		stats = state.PlayRandom(m.topo, m.rng, komi, m.inner)
		m.metrics.AddPlayouts(m.inner)
	} else {
		if !node.ChildrenCreated {
			m.tree.expand(m.topo, state, node)
			m.metrics.AddExpansion()
		}
		stats = m.play(m.selectChild(state), komi)
	}
	m.update(state, stats)
	return stats
}

// selectChild returns the child with the highest winrate, the first one on ties.
func (m *MCTS) selectChild(state game.State) game.State {
	best := state
	maxWinrate := -1.0
	for i := 0; i < m.topo.Count; i++ {
		if state.Any(i) {
			continue
		}
		child := state
		child.AddMove(i)
		if winrate := m.tree.node(child).Winrate(); winrate > maxWinrate {
			maxWinrate = winrate
			best = child
		}
	}
	if best == state {
		panic("node has no children")
	}
	return best
}

// update adds a batch to the node of state and gives every child AMAF credit for the
// playouts in which its point was taken by the player to move.
func (m *MCTS) update(state game.State, stats *game.Stats) {
	firstMoved := state.Moves%2 != 0

	node := m.tree.node(state)
	node.SelfVisits += stats.Count
	if firstMoved {
		node.SelfWins += stats.FirstPlayerWins
	} else {
		node.SelfWins += stats.Count - stats.FirstPlayerWins
	}
	if !node.ChildrenCreated {
		return
	}

	for i := 0; i < m.topo.Count; i++ {
		if state.Any(i) {
			continue
		}
		childState := state
		childState.AddMove(i)
		child := m.tree.node(childState)
		point := stats.Points[i]
		if firstMoved {
			child.Visits += point.P2
			child.Wins += point.P2Wins
		} else {
			child.Visits += point.P1
			child.Wins += point.P1Wins
		}
	}
}

// BestMove returns the most visited move from the current position, the first one on ties.
// Moves without a node count as unvisited.
func (m *MCTS) BestMove() (x, y int, err error) {
	bestPos := -1
	var mostVisits uint32
	for i := 0; i < m.topo.Count; i++ {
		if m.state.Any(i) {
			continue
		}
		child := m.state
		child.AddMove(i)
		var visits uint32
		if n, ok := m.tree[child]; ok {
			visits = n.SelfVisits
		}
		if bestPos < 0 || visits > mostVisits {
			bestPos = i
			mostVisits = visits
		}
	}
	if bestPos < 0 {
		return 0, 0, ErrNoMoves
	}
	c := m.topo.Coords[bestPos]
	return c.X, c.Y, nil
}

// AddMove plays (x, y) for the player to move and discards the search tree.
func (m *MCTS) AddMove(x, y int) error {
	i, ok := m.topo.Index(x, y)
	if !ok {
		return fmt.Errorf("cannot play (%d, %d): %w", x, y, ErrInvalidCoord)
	}
	if m.state.Any(i) {
		return fmt.Errorf("cannot play (%d, %d): %w", x, y, ErrOccupied)
	}

	m.state.AddMove(i)
	log.Debug().Int("x", x).Int("y", y).Int("discarded", len(m.tree)).Msg("move played, resetting tree")
	m.tree = newTree(m.state)
	m.metrics.ResetTree()
	m.metrics.Start()
	return nil
}

// Finished reports whether a winner is decided or the board is full.
func (m *MCTS) Finished(komi int) bool {
	_, ok := m.Winner(komi)
	return ok || m.state.Finished(m.topo)
}

func (m *MCTS) Winner(komi int) (game.Player, bool) {
	return m.state.Winner(m.topo, komi)
}

func (m *MCTS) Score(player game.Player, komi int) int {
	return m.state.PlayerScore(m.topo, player, komi)
}

func (m *MCTS) Size() int {
	return m.topo.Size
}

func (m *MCTS) PlayerTurn() game.Player {
	return m.state.PlayerTurn()
}

func (m *MCTS) PrintBoard(w io.Writer) error {
	return m.state.Print(m.topo, w)
}

func (m *MCTS) State() game.State {
	return m.state
}

func (m *MCTS) Topology() *game.Topology {
	return m.topo
}

// TreeSize returns the number of positions in the search tree.
func (m *MCTS) TreeSize() int {
	return len(m.tree)
}

// Metrics returns the counters collected since the last move.
func (m *MCTS) Metrics() SearchMetrics {
	return m.metrics.Complete(len(m.tree))
}
