package experiments

import (
	"context"
	"math"
	"time"

	"star/engine"
	"star/experiments/metrics"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

type BenchResult struct {
	Iterations []float64 // Searches completed in each trial
	Mean       float64
	StdErr     float64
}

// RunBench measures how many searches from the empty board fit in duration, over several
// trials with a fresh searcher each.
func RunBench(ctx context.Context, size, komi, trials int, duration time.Duration, batch int) (*BenchResult, error) {
	result := &BenchResult{}
	for i := 0; i < trials; i++ {
		m, err := engine.NewSearcher(size, metrics.AgentConfig{})
		if err != nil {
			return nil, err
		}
		n, err := engine.Think(ctx, m, engine.Budget{Batch: batch, Duration: duration}, komi)
		if err != nil {
			return nil, err
		}
		log.Info().Msgf("trial %d of %d: %d iterations", i+1, trials, n)
		result.Iterations = append(result.Iterations, float64(n))
	}

	mean, std := stat.MeanStdDev(result.Iterations, nil)
	result.Mean = mean
	if len(result.Iterations) > 1 && !math.IsNaN(std) {
		result.StdErr = stat.StdErr(std, float64(len(result.Iterations)))
	}
	log.Info().Msgf("%.1f +- %.1f iterations per %s", result.Mean, result.StdErr, duration)
	return result, nil
}
