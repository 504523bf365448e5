package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"star/engine"
	"star/experiments"
	"star/experiments/metrics"
	"star/meta"
	"star/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "One of play, interactive, compare or bench")
	size := flag.Int("size", meta.SIZE, "Board side length")
	komi := flag.Int("komi", meta.KOMI, "Handicap in favour of the second player")
	iterations := flag.Int("iterations", meta.MOVE_ITERATIONS, "Searches per move (0 for no limit)")
	batch := flag.Int("batch", meta.Batch, "Searches between deadline checks")
	duration := flag.Duration("duration", meta.MOVE_TIME, "Soft time limit per move (0 for no limit)")
	seed := flag.Uint64("seed", 0, "Random seed (0 for a time-based seed)")
	games := flag.Int("games", 10, "Games to play in compare mode")
	opponentIterations := flag.Int("opponent-iterations", meta.MOVE_ITERATIONS/2, "Searches per move of the second agent in compare mode")
	trials := flag.Int("trials", 10, "Trials in bench mode")
	out := flag.String("out", "experiments", "Directory for compare records (empty to skip)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Moves go to stdout, logs to stderr
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch *mode {
	case "play":
		err = player.Run(ctx, player.Config{
			Size:   *size,
			Komi:   *komi,
			Budget: engine.Budget{Iterations: *iterations, Batch: *batch, Duration: *duration},
			Seed:   *seed,
		}, os.Stdin, os.Stdout)
	case "interactive":
		err = player.RunInteractive(ctx, player.Config{
			Size:   *size,
			Komi:   *komi,
			Budget: engine.Budget{Iterations: *iterations, Batch: *batch, Duration: *duration},
			Seed:   *seed,
		}, os.Stdin, os.Stdout)
	case "compare":
		a := metrics.AgentConfig{ID: 1, Iterations: *iterations, Batch: *batch, Duration: *duration, Seed: *seed}
		b := metrics.AgentConfig{ID: 2, Iterations: *opponentIterations, Batch: *batch, Duration: *duration}
		var result *experiments.CompareResult
		result, err = experiments.RunCompare(ctx, *size, *komi, *games, a, b, *out)
		if result != nil {
			fmt.Printf("Stats: %d - %d\n", result.Wins[a.ID], result.Wins[b.ID])
		}
	case "bench":
		var result *experiments.BenchResult
		result, err = experiments.RunBench(ctx, *size, *komi, *trials, *duration, *batch)
		if result != nil {
			fmt.Printf("%v +- %v\n", result.Mean, result.StdErr)
		}
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}
