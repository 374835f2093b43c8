package engine

import (
	"errors"
	"fmt"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/meta"
	"gomoku/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// Player is a named decider sitting at one side of the board.
type Player struct {
	Name    string
	Decider searcher.Decider
}

type LocalOption func(e *Local)

// WithMaxTurns caps the number of decisions, including retractions and the
// final resignation.
func WithMaxTurns(turns int) LocalOption {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithOpening starts the game from history instead of an empty board.
func WithOpening(history game.History) LocalOption {
	return func(e *Local) {
		e.opening = history.Clone()
	}
}

// Local runs a game between two in-process players.
type Local struct {
	players  [2]Player // Indexed by game.Side
	maxTurns int
	opening  game.History
}

func LocalEngine(black, white Player, options ...LocalOption) *Local {
	if black.Decider == nil || white.Decider == nil {
		panic("both players need a decider")
	}
	e := &Local{
		players:  [2]Player{game.Black: black, game.White: white},
		maxTurns: meta.MAX_TURNS,
		opening:  game.History{},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop. Errors from a player other than running
// out of moves, and illegal placements, abort the game.
func (e *Local) Run() (Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Black:     e.players[game.Black].Name,
		White:     e.players[game.White].Name,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (Black) vs %s (White) is starting", gameMetric.Black, gameMetric.White)

	result, err := e.play(&moveMetrics)

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(result.History)
	gameMetric.Reason = string(result.Reason)
	if !result.Draw && err == nil {
		gameMetric.Winner = result.Winner.String()
	}

	if err != nil {
		log.Warn().Msgf("game aborted after %d decisions: %v", len(moveMetrics), err)
		return result, gameMetric, moveMetrics, err
	}
	log.Info().Msgf("game over after %d decisions: %v", len(moveMetrics), result)
	return result, gameMetric, moveMetrics, nil
}

func (e *Local) play(moveMetrics *[]metrics.MoveMetric) (Result, error) {
	history := e.opening.Clone()
	if err := history.Validate(); err != nil {
		return Result{History: history}, err
	}
	board := history.Board()
	if last, ok := history.Last(); ok && board.IsWinningAt(last.Position) {
		return Result{Winner: last.Side, Reason: ReasonFive, History: history}, nil
	}

	for turn := 1; turn <= e.maxTurns; turn++ {
		if board.Full() {
			return Result{Draw: true, Reason: ReasonFullBoard, History: history}, nil
		}

		side := history.Next()
		player := e.players[side]
		op, err := player.Decider.Decide(history)
		if errors.Is(err, searcher.ErrNoMoveAvailable) {
			log.Info().Msgf("%s (%v) has no move left", player.Name, side)
			return Result{Draw: true, Reason: ReasonNoMove, History: history}, nil
		}
		if err != nil {
			return Result{History: history}, fmt.Errorf("%s (%v) failed to decide: %w", player.Name, side, err)
		}
		if op.Kind > game.OpResign {
			return Result{History: history}, fmt.Errorf("%s (%v) returned unknown operation %d", player.Name, side, op.Kind)
		}

		moveMetric := metrics.MoveMetric{Step: turn, Side: side.String(), Operation: op.String()}
		if reporter, ok := player.Decider.(searcher.Reporter); ok {
			moveMetric.SearchMetric = reporter.LastMetric()
		}
		*moveMetrics = append(*moveMetrics, moveMetric)
		log.Debug().Msgf("turn %d: %s (%v) plays %v", turn, player.Name, side, op)

		switch op.Kind {
		case game.OpPlace:
			if !board.IsEmpty(op.Position) {
				return Result{History: history}, fmt.Errorf("%w: %s (%v) chose %v", ErrIllegalPlacement, player.Name, side, op.Position)
			}
			history = history.Place(op.Position)
			board.Set(op.Position, game.CellOf(side))
			if board.IsWinningAt(op.Position) {
				return Result{Winner: side, Reason: ReasonFive, History: history}, nil
			}
			if board.Full() {
				return Result{Draw: true, Reason: ReasonFullBoard, History: history}, nil
			}
		case game.OpRetract:
			history = history.Retract()
			board = history.Board()
		case game.OpResign:
			return Result{Winner: side.Other(), Reason: ReasonResign, History: history}, nil
		}
	}

	log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	return Result{Draw: true, Reason: ReasonMaxTurns, History: history}, nil
}
