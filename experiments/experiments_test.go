package experiments

import (
	"context"
	"os"
	"testing"
	"time"

	"star/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func TestRunCompare(t *testing.T) {
	a := metrics.AgentConfig{ID: 1, Iterations: 20, Batch: 10, Seed: 3}
	b := metrics.AgentConfig{ID: 2, Iterations: 20, Batch: 10, Seed: 4}
	out := t.TempDir()

	result, err := RunCompare(context.Background(), 2, 1, 4, a, b, out)
	require.NoError(t, err)

	require.Equal(t, 4, result.Wins[1]+result.Wins[2], "Every game has a winner")
	require.Len(t, result.GameRecords, 4)
	for i, record := range result.GameRecords {
		if i%2 == 0 {
			require.Equal(t, []int{1, 2}, []int{record.Agent1, record.Agent2})
		} else {
			require.Equal(t, []int{2, 1}, []int{record.Agent1, record.Agent2}, "Seats alternate")
		}
	}
	require.NotEmpty(t, result.MoveRecords)

	entries, err := os.ReadDir(out + "/compare")
	require.NoError(t, err)
	require.Len(t, entries, 1, "One timestamped directory per run")
}

func TestRunBench(t *testing.T) {
	result, err := RunBench(context.Background(), 3, 1, 3, 10*time.Millisecond, 5)
	require.NoError(t, err)

	require.Len(t, result.Iterations, 3)
	for _, n := range result.Iterations {
		require.GreaterOrEqual(t, n, 5.0)
	}
	require.Greater(t, result.Mean, 0.0)
	require.GreaterOrEqual(t, result.StdErr, 0.0)
}
