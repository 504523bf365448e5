package engine

import (
	"context"
	"fmt"
	"time"

	"star/experiments/metrics"
	"star/game"
	"star/searcher"

	"github.com/rs/zerolog/log"
)

// Local plays two searchers against each other in process. Agents[0] moves first.
type Local struct {
	Size   int
	Komi   int
	Agents [2]metrics.AgentConfig

	searchers [2]*searcher.MCTS
}

func NewLocal(size, komi int, agents [2]metrics.AgentConfig) (*Local, error) {
	e := &Local{Size: size, Komi: komi, Agents: agents}
	for i, config := range agents {
		if config.Iterations <= 0 && config.Duration <= 0 {
			return nil, fmt.Errorf("agent %d: %w", config.ID, ErrNoBudget)
		}
		s, err := NewSearcher(size, config)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", config.ID, err)
		}
		e.searchers[i] = s
	}
	return e, nil
}

// Run executes the game loop until a winner is decided or the board is full.
func (e *Local) Run(ctx context.Context) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	referee := e.searchers[0]
	topo := referee.Topology()
	gameMetric := metrics.GameMetric{Size: e.Size, Komi: e.Komi, StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Msgf("agent %d is starting", e.Agents[0].ID)

	for step := 1; !referee.Finished(e.Komi); step++ {
		player := referee.PlayerTurn()
		current := e.searchers[player]

		if _, err := Think(ctx, current, BudgetOf(e.Agents[player]), e.Komi); err != nil {
			return player, gameMetric, moveMetrics, err
		}
		x, y, err := current.BestMove()
		if err != nil {
			return player, gameMetric, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          step,
			Player:        player,
			X:             x,
			Y:             y,
			Packed:        topo.Pack(x, y),
			SearchMetrics: current.Metrics(),
		})

		for _, s := range e.searchers {
			if err := s.AddMove(x, y); err != nil {
				return player, gameMetric, moveMetrics, err
			}
		}
		log.Debug().Msgf("step %d: %s played (%d, %d)", step, player, x, y)
	}

	winner, ok := referee.Winner(e.Komi)
	if !ok {
		winner = referee.State().FinalWinner(topo, e.Komi)
	}
	gameMetric.Winner = winner
	gameMetric.Score = referee.Score(winner, e.Komi)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = referee.State().Moves
	return winner, gameMetric, moveMetrics, nil
}
