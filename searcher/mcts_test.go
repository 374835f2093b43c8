package searcher

import (
	"gomoku/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMCTS(t *testing.T) {
	m := NewMCTS(WithIterations(0), WithCandidateRadius(-1))
	require.Equal(t, 100000, m.iterations, "Non-positive options should keep defaults")
	require.Zero(t, m.radius, "Default should consider every empty cell")
}

func TestMCTSDecide(t *testing.T) {
	t.Run("completing an open four", func(t *testing.T) {
		m := NewMCTS(WithIterations(500), WithCandidateRadius(1), WithSeed(1))
		h := openFourForBlack()

		op, err := m.Decide(h)

		require.NoError(t, err)
		require.Equal(t, game.OpPlace, op.Kind)
		board := h.Apply(op).Board()
		require.True(t, board.IsWinningAt(op.Position), "Should find the winning move, got %v", op.Position)
	})

	t.Run("blocking a closed four", func(t *testing.T) {
		m := NewMCTS(WithIterations(3000), WithCandidateRadius(1), WithSeed(2))

		op, err := m.Decide(closedFourForWhite())

		require.NoError(t, err)
		require.Equal(t, game.Place(game.Position{X: 3, Y: 7}), op)
	})

	t.Run("opening in the center with a radius", func(t *testing.T) {
		m := NewMCTS(WithIterations(10), WithCandidateRadius(2), WithSeed(1))
		op, err := m.Decide(game.History{})
		require.NoError(t, err)
		require.Equal(t, game.Place(game.Center), op)
	})

	t.Run("taking the last empty cell", func(t *testing.T) {
		full := drawnHistory()
		m := NewMCTS(WithIterations(5), WithSeed(1))

		op, err := m.Decide(full[:len(full)-1])

		require.NoError(t, err)
		require.Equal(t, game.Place(full[len(full)-1].Position), op)
	})

	t.Run("reporting a full board", func(t *testing.T) {
		_, err := NewMCTS(WithIterations(5)).Decide(drawnHistory())
		require.ErrorIs(t, err, ErrNoMoveAvailable)
	})

	t.Run("rejecting finished games", func(t *testing.T) {
		_, err := NewMCTS(WithIterations(5)).Decide(openFourForBlack().Place(game.Position{X: 7, Y: 4}))
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("rejecting invalid histories", func(t *testing.T) {
		_, err := NewMCTS(WithIterations(5)).Decide(game.History{{Side: game.Black, Position: game.Center}, {Side: game.White, Position: game.Center}})
		require.ErrorIs(t, err, game.ErrInvalidHistory)
	})

	t.Run("same seed, same decision", func(t *testing.T) {
		h := historyOf(game.Center, game.Position{X: 8, Y: 8})
		a, err := NewMCTS(WithIterations(300), WithCandidateRadius(1), WithSeed(9)).Decide(h)
		require.NoError(t, err)
		b, err := NewMCTS(WithIterations(300), WithCandidateRadius(1), WithSeed(9)).Decide(h)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("collecting metrics", func(t *testing.T) {
		m := NewMCTS(WithIterations(50), WithCandidateRadius(1), WithSeed(1), WithMCTSMetrics())
		_, err := m.Decide(historyOf(game.Center))
		require.NoError(t, err)

		metric := m.LastMetric()
		require.Equal(t, "mcts", metric.Strategy)
		require.Equal(t, 50, metric.Iterations)
		require.Equal(t, 50, metric.Leaves, "Every iteration should evaluate one leaf")
	})
}

func TestMCTSSearch(t *testing.T) {
	m := NewMCTS(WithIterations(200), WithCandidateRadius(1), WithSeed(4))
	h := historyOf(game.Center, game.Position{X: 6, Y: 6}, game.Position{X: 8, Y: 7})
	root := newNode(nil, h.Next(), h.Board(), m.radius, m.rng)

	m.search(root)

	require.Equal(t, 200, root.visits)
	total := 0
	for _, index := range root.order {
		child := root.children[index]
		require.Same(t, root, child.parent)
		require.Equal(t, game.WhiteStone, child.board.At(game.PositionOf(index)))
		total += child.visits
	}
	require.Equal(t, root.visits, total, "Each iteration should pass through exactly one root child")
	require.Len(t, root.order, len(root.children))
}

func TestMCTSEvaluate(t *testing.T) {
	m := NewMCTS(WithSeed(1))

	// Black just completed five, leaving White to move.
	board := openFourForBlack().Place(game.Position{X: 7, Y: 9}).Board()
	leaf := newNode(nil, game.White, board, 0, m.rng)

	require.Greater(t, m.evaluate(leaf), 0.0, "Leaf should be scored for the side that moved into it")
}
