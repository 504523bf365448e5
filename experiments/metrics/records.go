package metrics

import (
	"time"

	"star/game"
	"star/searcher"
)

// AgentConfig describes how one side searches.
type AgentConfig struct {
	ID              int
	Iterations      int           // Searches per move, 0 for no limit
	Batch           int           // Searches per Calculate call
	Duration        time.Duration // Soft time limit per move, 0 for no limit
	InnerIterations int           // Playouts per simulated leaf, 0 for the default
	Seed            uint64        // 0 for a time-based seed
}

type MoveMetric struct {
	Step   int
	Player game.Player
	X      int
	Y      int
	Packed int // X + Y*(2*size-1)
	searcher.SearchMetrics
}

type GameMetric struct {
	Size       int
	Komi       int
	Winner     game.Player
	Score      int // Winner's score
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}
