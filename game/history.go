package game

import (
	"errors"
	"fmt"
)

var ErrInvalidHistory = errors.New("invalid history")

// Step is a single stone placed by a side.
type Step struct {
	Side     Side     `json:"side"`
	Position Position `json:"position"`
}

// History is the ordered sequence of steps played so far. Sides alternate and
// no position repeats; Validate checks both.
type History []Step

// Next returns the side to move. Black starts.
func (h History) Next() Side {
	if last, ok := h.Last(); ok {
		return last.Side.Other()
	}
	return Black
}

func (h History) Last() (Step, bool) {
	if len(h) == 0 {
		return Step{}, false
	}
	return h[len(h)-1], true
}

func (h History) Board() Board {
	return FromHistory(h)
}

func (h History) Positions() []Position {
	positions := make([]Position, len(h))
	for i, step := range h {
		positions[i] = step.Position
	}
	return positions
}

// Clone returns a copy that does not share the backing array with h.
func (h History) Clone() History {
	return append(make(History, 0, len(h)+1), h...)
}

// Place returns a new history with a stone for the side to move at p.
func (h History) Place(p Position) History {
	return append(h.Clone(), Step{Side: h.Next(), Position: p})
}

// Retract undoes the last round (both sides' last moves). It is a no-op with
// fewer than two steps.
func (h History) Retract() History {
	if len(h) < 2 {
		return h
	}
	return h[:len(h)-2 : len(h)-2]
}

// Apply returns the history after op. Resign leaves the history unchanged;
// ending the game is up to the caller.
func (h History) Apply(op Operation) History {
	switch op.Kind {
	case OpPlace:
		return h.Place(op.Position)
	case OpRetract:
		return h.Retract()
	case OpResign:
		return h
	}
	panic(fmt.Sprintf("invalid operation kind %d", op.Kind))
}

// Validate checks that every position is on the board, sides alternate and
// no position is played twice.
func (h History) Validate() error {
	var seen [Cells]bool
	for i, step := range h {
		if !step.Position.Valid() {
			return fmt.Errorf("%w: step %d at %v is off the board", ErrInvalidHistory, i, step.Position)
		}
		if seen[step.Position.Index()] {
			return fmt.Errorf("%w: step %d repeats %v", ErrInvalidHistory, i, step.Position)
		}
		seen[step.Position.Index()] = true
		if step.Side != Black && step.Side != White {
			return fmt.Errorf("%w: step %d has invalid side %d", ErrInvalidHistory, i, step.Side)
		}
		if i > 0 && step.Side == h[i-1].Side {
			return fmt.Errorf("%w: step %d is played by %v twice in a row", ErrInvalidHistory, i, step.Side)
		}
	}
	return nil
}
