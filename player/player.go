package player

import (
	"fmt"
	"gomoku/game"
	"gomoku/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Random is a baseline player that places stones uniformly at random next
// to the stones already on the board.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random player. A zero seed picks one from the clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) Decide(history game.History) (game.Operation, error) {
	if err := history.Validate(); err != nil {
		return game.Operation{}, err
	}
	board := history.Board()
	if last, ok := history.Last(); ok && board.IsWinningAt(last.Position) {
		return game.Operation{}, fmt.Errorf("%w: %v has five in a row", searcher.ErrGameOver, last.Side)
	}

	moves := p.generatePossibleMoves(&board, history)
	if len(moves) == 0 {
		return game.Operation{}, fmt.Errorf("%w: board is full", searcher.ErrNoMoveAvailable)
	}

	move := moves[p.rng.Intn(len(moves))]
	log.Debug().Msgf("random player chose %v out of %d moves", move, len(moves))
	return game.Place(move), nil
}

// generatePossibleMoves lists the empty neighbours of existing stones, or
// every empty cell when no stone has a free neighbour.
func (p *Random) generatePossibleMoves(board *game.Board, history game.History) []game.Position {
	if len(history) == 0 {
		return []game.Position{game.Center}
	}
	if moves := game.Candidates(board, history.Positions(), 1); len(moves) > 0 {
		return moves
	}
	return game.Candidates(board, nil, 0)
}
