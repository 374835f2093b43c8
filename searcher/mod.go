package searcher

import (
	"errors"
	"fmt"
	"gomoku/experiments/metrics"
	"gomoku/game"
)

var (
	ErrNoMoveAvailable = errors.New("no move available")
	ErrGameOver        = errors.New("game is already over")
)

// Decider picks the next operation for the side to move in history. An
// empty history means Black is to move on an empty board.
type Decider interface {
	Decide(history game.History) (game.Operation, error)
}

// Reporter is implemented by deciders that collect search metrics.
type Reporter interface {
	LastMetric() metrics.SearchMetric
}

// prepare validates history and replays it, rejecting finished games and
// full boards before any search starts.
func prepare(history game.History) (game.Board, error) {
	if err := history.Validate(); err != nil {
		return game.Board{}, err
	}
	board := history.Board()
	if last, ok := history.Last(); ok && board.IsWinningAt(last.Position) {
		return board, fmt.Errorf("%w: %v has five in a row", ErrGameOver, last.Side)
	}
	if board.Full() {
		return board, fmt.Errorf("%w: board is full", ErrNoMoveAvailable)
	}
	return board, nil
}
