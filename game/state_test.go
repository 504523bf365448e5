package game

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustTopology(t *testing.T, size int) *Topology {
	t.Helper()
	topo, err := NewTopology(size)
	require.NoError(t, err)
	return topo
}

func TestAddMove(t *testing.T) {
	t.Run("alternates players and counts moves", func(t *testing.T) {
		s := NewState()
		require.Equal(t, First, s.PlayerTurn())

		s.AddMove(3)
		require.Equal(t, 1, s.Moves)
		require.True(t, s.First.Get(3))
		require.Equal(t, Second, s.PlayerTurn())

		s.AddMove(5)
		require.Equal(t, 2, s.Moves)
		require.True(t, s.Second.Get(5))
		require.True(t, s.First.Get(3), "Earlier moves are never cleared")
		require.True(t, s.Any(3))
		require.True(t, s.Any(5))
		require.False(t, s.Any(4))
	})

	t.Run("copies do not alias", func(t *testing.T) {
		s := NewState()
		s.AddMove(0)
		child := s
		child.AddMove(1)

		require.Equal(t, 1, s.Moves)
		require.False(t, s.Any(1))
		require.NotEqual(t, s, child)
	})

	t.Run("panics on an occupied point", func(t *testing.T) {
		s := NewState()
		s.AddMove(2)
		require.Panics(t, func() { s.AddMove(2) })
		require.Equal(t, 1, s.Moves, "A rejected move should not change the state")
	})

	t.Run("equal positions are equal keys", func(t *testing.T) {
		a := NewState()
		a.AddMove(1)
		a.AddMove(2)
		b := NewState()
		b.AddMove(1)
		b.AddMove(2)

		table := map[State]int{a: 1}
		require.Equal(t, 1, table[b])
	})
}

func TestRegionScore(t *testing.T) {
	tests := []struct {
		touches int
		owned   bool
		want    int
	}{
		{0, true, 0},
		{1, true, -1},
		{1, false, 1},
		{2, true, -2},
		{2, false, 2},
		{4, true, 0},
		{6, true, 2},
		{6, false, -2},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, regionScore(tt.touches, tt.owned), "touches=%d owned=%v", tt.touches, tt.owned)
	}
}

func TestPlayerScore(t *testing.T) {
	topo := mustTopology(t, 3)

	t.Run("empty board", func(t *testing.T) {
		s := NewState()
		require.Equal(t, -8, s.PlayerScore(topo, First, 0), "One unowned region touching all 12 edge cells")
		require.Equal(t, -9, s.PlayerScore(topo, First, 1))
		require.Equal(t, -7, s.PlayerScore(topo, Second, 1))
		_, ok := s.Winner(topo, 1)
		require.False(t, ok)
	})

	t.Run("single owned region", func(t *testing.T) {
		var s State
		for i := 0; i < topo.Count; i++ {
			s.First.Set(i)
		}
		require.Equal(t, 8, s.PlayerScore(topo, First, 0))
		require.True(t, s.IsWinner(topo, First, 0))
	})
}

func fillInOrder(t *testing.T, topo *Topology) State {
	t.Helper()
	s := NewState()
	for i := 0; i < topo.Count; i++ {
		s.AddMove(i)
	}
	return s
}

func TestSizeTwoGame(t *testing.T) {
	topo := mustTopology(t, 2)
	s := fillInOrder(t, topo)

	require.True(t, s.Finished(topo))
	require.False(t, s.First.Intersects(s.Second))
	require.Equal(t, topo.Count, s.First.Count()+s.Second.Count())

	require.Equal(t, -2, s.PlayerScore(topo, First, 0))
	require.Equal(t, 2, s.PlayerScore(topo, Second, 0))
	winner, ok := s.Winner(topo, 0)
	require.True(t, ok)
	require.Equal(t, Second, winner)
	require.Equal(t, Second, s.FinalWinner(topo, 0))
}

func TestFilledBoardHasExactlyOneWinner(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for size := 2; size <= 7; size++ {
		topo := mustTopology(t, size)
		for game := 0; game < 20; game++ {
			s := NewState()
			for _, p := range rng.Perm(topo.Count) {
				s.AddMove(p)
			}
			require.True(t, s.Finished(topo))
			require.False(t, s.First.Intersects(s.Second))

			for _, komi := range []int{-3, -1, 1, 3} {
				first := s.IsWinner(topo, First, komi)
				second := s.IsWinner(topo, Second, komi)
				require.NotEqual(t, first, second, "size %d komi %d: exactly one player wins", size, komi)
				require.Equal(t, -s.PlayerScore(topo, First, komi), s.PlayerScore(topo, Second, komi))
			}
		}
	}
}

func TestPrint(t *testing.T) {
	topo := mustTopology(t, 2)

	t.Run("empty board", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewState().Print(topo, &buf))
		want := "  1 2 3\n" +
			" 1 _ . .\n" +
			"  2 . . .\n" +
			"   3 . . _\n"
		require.Equal(t, want, buf.String())
	})

	t.Run("marks both players", func(t *testing.T) {
		s := NewState()
		s.AddMove(topo.MustIndex(1, 1))
		s.AddMove(topo.MustIndex(2, 0))

		var buf bytes.Buffer
		require.NoError(t, s.Print(topo, &buf))
		want := "  1 2 3\n" +
			" 1 _ . O\n" +
			"  2 . X .\n" +
			"   3 . . _\n"
		require.Equal(t, want, buf.String())
	})

	t.Run("panics on overlapping players", func(t *testing.T) {
		var s State
		s.First.Set(0)
		s.Second.Set(0)
		require.Panics(t, func() { _ = s.Print(topo, &bytes.Buffer{}) })
	})
}
