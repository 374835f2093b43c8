package engine

import (
	"errors"
	"gomoku/experiments/metrics"
	"gomoku/game"
)

var ErrIllegalPlacement = errors.New("illegal placement")

type Reason string

const (
	ReasonFive      Reason = "five in a row"
	ReasonResign    Reason = "resignation"
	ReasonFullBoard Reason = "board full"
	ReasonNoMove    Reason = "no move available"
	ReasonMaxTurns  Reason = "turn limit"
)

// Result describes how a game ended. Winner is only meaningful when Draw is
// false.
type Result struct {
	Winner  game.Side
	Draw    bool
	Reason  Reason
	History game.History
}

func (r Result) String() string {
	if r.Draw {
		return "draw by " + string(r.Reason)
	}
	return r.Winner.String() + " wins by " + string(r.Reason)
}

type Engine interface {
	// Run plays a game till one side wins, the game is drawn or the turn limit
	// is reached
	Run() (Result, metrics.GameMetric, []metrics.MoveMetric, error)
}
