package experiments

import (
	"context"
	"fmt"

	"star/engine"
	"star/experiments/metrics"
	"star/game"

	"github.com/rs/zerolog/log"
)

type CompareResult struct {
	Wins        map[int]int // Games won, by AgentConfig.ID
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// RunCompare plays games between two agents, alternating who moves first, and stores the
// records under outDir when it is not empty.
func RunCompare(ctx context.Context, size, komi, games int, a, b metrics.AgentConfig, outDir string) (*CompareResult, error) {
	result := &CompareResult{Wins: map[int]int{a.ID: 0, b.ID: 0}}

	log.Info().Msgf("starting compare experiment between agent1=%+v and agent2=%+v...", a, b)

	for i := 0; i < games; i++ {
		// Seats alternate so both agents move first equally often
		seats := [2]metrics.AgentConfig{a, b}
		if i%2 == 1 {
			seats = [2]metrics.AgentConfig{b, a}
		}

		log.Info().Msgf("starting game %d of %d...", i+1, games)

		winner, gameMetric, moveMetrics, err := runGame(ctx, size, komi, seats)
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}
		winnerID := seats[winner].ID
		result.Wins[winnerID]++
		result.GameRecords = append(result.GameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     seats[0].ID,
			Agent2:     seats[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			result.MoveRecords = append(result.MoveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d with winner: agent %d (%s), stats: %d - %d",
			i+1, winnerID, winner, result.Wins[a.ID], result.Wins[b.ID])
	}

	log.Info().Msg("completed compare experiment")

	if outDir == "" {
		return result, nil
	}
	return result, store(outDir, "compare", []metrics.AgentConfig{a, b}, result)
}

func store(outDir, name string, configs []metrics.AgentConfig, result *CompareResult) error {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.GameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.MoveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(ctx context.Context, size, komi int, seats [2]metrics.AgentConfig) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	e, err := engine.NewLocal(size, komi, seats)
	if err != nil {
		return game.First, metrics.GameMetric{}, nil, err
	}
	return e.Run(ctx)
}
