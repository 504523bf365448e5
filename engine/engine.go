package engine

import (
	"context"
	"errors"
	"time"

	"star/experiments/metrics"
	"star/game"
	"star/meta"
	"star/searcher"
)

var ErrNoBudget = errors.New("must specify search iterations or duration")

type Engine interface {
	// Run plays a game until it is decided
	Run(ctx context.Context) (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Budget bounds the search for one move.
type Budget struct {
	Iterations int
	Batch      int
	Duration   time.Duration
}

func BudgetOf(config metrics.AgentConfig) Budget {
	return Budget{Iterations: config.Iterations, Batch: config.Batch, Duration: config.Duration}
}

// Think calls Calculate in batches until the budget is spent and returns the number of
// searches run. At least one batch always runs; the deadline and ctx are only checked
// between batches.
func Think(ctx context.Context, m *searcher.MCTS, budget Budget, komi int) (int, error) {
	if budget.Iterations <= 0 && budget.Duration <= 0 {
		return 0, ErrNoBudget
	}
	batch := budget.Batch
	if batch <= 0 {
		batch = meta.Batch
	}

	start := time.Now()
	total := 0
	for {
		n := batch
		if budget.Iterations > 0 {
			n = min(n, budget.Iterations-total)
		}
		m.Calculate(n, komi)
		total += n

		if budget.Iterations > 0 && total >= budget.Iterations {
			return total, nil
		}
		if budget.Duration > 0 && time.Since(start) >= budget.Duration {
			return total, nil
		}
		if err := ctx.Err(); err != nil {
			return total, err
		}
	}
}

// NewSearcher builds a searcher for one side.
func NewSearcher(size int, config metrics.AgentConfig) (*searcher.MCTS, error) {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Seed != 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}
	if config.InnerIterations > 0 {
		options = append(options, searcher.WithInnerIterations(config.InnerIterations))
	}
	return searcher.NewMCTS(size, options...)
}
