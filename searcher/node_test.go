package searcher

import (
	"gomoku/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCandidates(t *testing.T) {
	t.Run("all empty cells without a radius", func(t *testing.T) {
		board := historyOf(game.Center).Board()
		moves := candidates(&board, 0)
		require.Len(t, moves, game.Cells-1)
		require.NotContains(t, moves, game.Center)
	})

	t.Run("center on an empty board with a radius", func(t *testing.T) {
		var board game.Board
		require.Equal(t, []game.Position{game.Center}, candidates(&board, 1))
	})

	t.Run("neighbourhood of stones with a radius", func(t *testing.T) {
		board := historyOf(game.Center).Board()
		require.Len(t, candidates(&board, 1), 8)
		require.Len(t, candidates(&board, 2), 16)
	})
}

func TestNewNode(t *testing.T) {
	t.Run("open position", func(t *testing.T) {
		board := historyOf(game.Center).Board()
		n := newNode(nil, game.White, board, 1, rand.New(rand.NewSource(1)))

		require.False(t, n.terminal)
		require.Len(t, n.untried, 8)
		require.Empty(t, n.children)
		require.Zero(t, n.visits)
	})

	t.Run("finished position", func(t *testing.T) {
		board := openFourForBlack().Place(game.Position{X: 7, Y: 9}).Board()
		n := newNode(nil, game.White, board, 0, rand.New(rand.NewSource(1)))

		require.True(t, n.terminal)
		require.Empty(t, n.untried, "Terminal nodes should not offer moves")
	})

	t.Run("shuffling deterministically", func(t *testing.T) {
		board := historyOf(game.Center, game.Position{X: 8, Y: 8}).Board()
		a := newNode(nil, game.Black, board, 2, rand.New(rand.NewSource(7)))
		b := newNode(nil, game.Black, board, 2, rand.New(rand.NewSource(7)))
		require.Equal(t, a.untried, b.untried)
		require.ElementsMatch(t, game.Candidates(&board, board.Stones(), 2), a.untried)
	})
}

func TestExpand(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	board := historyOf(game.Center).Board()
	root := newNode(nil, game.White, board, 1, rng)
	next := root.untried[len(root.untried)-1]

	child := root.expand(1, rng)

	require.Len(t, root.untried, 7)
	require.Equal(t, []int{next.Index()}, root.order)
	require.Same(t, child, root.children[next.Index()])
	require.Same(t, root, child.parent)
	require.Equal(t, game.Black, child.side)
	require.Equal(t, game.WhiteStone, child.board.At(next))
	require.Equal(t, game.Empty, root.board.At(next), "Parent board should be untouched")
}

func TestBackup(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	root := newNode(nil, game.Black, historyOf().Board(), 1, rng)
	child := root.expand(1, rng)
	grandchild := child.expand(1, rng)

	grandchild.backup(2)
	child.backup(-1)

	require.Equal(t, 1, grandchild.visits)
	require.Equal(t, 2, child.visits)
	require.Equal(t, 2, root.visits)
	require.Equal(t, 2.0, grandchild.quality)
	require.Equal(t, -3.0, child.quality, "Rewards should flip sign at each level")
	require.Equal(t, 3.0, root.quality)
}

func TestPickChild(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	t.Run("no children", func(t *testing.T) {
		root := newNode(nil, game.Black, game.Board{}, 1, rng)
		require.Nil(t, root.pickChild())
	})

	t.Run("highest score among equally visited children", func(t *testing.T) {
		root := newNode(nil, game.White, historyOf(game.Center).Board(), 1, rng)
		weak := root.expand(1, rng)
		strong := root.expand(1, rng)
		weak.visits, weak.quality = 5, 1
		strong.visits, strong.quality = 5, 4
		root.visits = 10

		require.Same(t, strong, root.pickChild())
	})

	t.Run("exploring rarely visited children", func(t *testing.T) {
		root := newNode(nil, game.White, historyOf(game.Center).Board(), 1, rng)
		known := root.expand(1, rng)
		fresh := root.expand(1, rng)
		known.visits, known.quality = 1000, 550
		fresh.visits, fresh.quality = 1, 0.5
		root.visits = 1001

		require.Same(t, fresh, root.pickChild())
	})
}

func TestBestMove(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	t.Run("no children", func(t *testing.T) {
		root := newNode(nil, game.Black, game.Board{}, 1, rng)
		_, ok := root.bestMove()
		require.False(t, ok)
	})

	t.Run("highest mean reward", func(t *testing.T) {
		root := newNode(nil, game.White, historyOf(game.Center).Board(), 1, rng)
		popular := root.expand(1, rng)
		best := root.expand(1, rng)
		popular.visits, popular.quality = 100, 10
		best.visits, best.quality = 2, 1

		pos, ok := root.bestMove()
		require.True(t, ok)
		require.Equal(t, game.PositionOf(root.order[1]), pos)
	})
}
