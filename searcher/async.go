package searcher

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
	"time"

	"github.com/rs/zerolog/log"
)

type AsyncOption func(a *Async)

type outcome struct {
	op  game.Operation
	err error
}

// Async runs another Decider on a background goroutine so the caller can
// keep polling, e.g. from a rendering loop. Decisions cannot be cancelled.
// Async itself is driven by a single caller goroutine.
type Async struct {
	decider  Decider
	interval time.Duration
	tick     func()
	result   chan outcome
	start    time.Time
	elapsed  time.Duration
}

func WithPollInterval(interval time.Duration) AsyncOption {
	return func(a *Async) {
		if interval > 0 {
			a.interval = interval
		}
	}
}

// WithTick registers a function called on every poll while the decision is
// pending.
func WithTick(tick func()) AsyncOption {
	return func(a *Async) {
		a.tick = tick
	}
}

func NewAsync(decider Decider, options ...AsyncOption) *Async {
	a := &Async{
		decider:  decider,
		interval: 10 * time.Millisecond,
		tick:     func() {},
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Start launches a decision on its own goroutine. It panics if the previous
// decision has not been collected yet.
func (a *Async) Start(history game.History) {
	if a.result != nil {
		panic("decision already in progress")
	}
	steps := history.Clone()
	result := make(chan outcome, 1)
	a.result = result
	a.start = time.Now()
	go func() {
		op, err := a.decider.Decide(steps)
		result <- outcome{op: op, err: err}
	}()
}

// Poll returns the decision if it has finished, without blocking.
func (a *Async) Poll() (game.Operation, bool, error) {
	if a.result == nil {
		panic("no decision in progress")
	}
	select {
	case out := <-a.result:
		a.result = nil
		a.elapsed = time.Since(a.start)
		return out.op, true, out.err
	default:
		return game.Operation{}, false, nil
	}
}

// Decide starts a decision and polls until it completes.
func (a *Async) Decide(history game.History) (game.Operation, error) {
	a.Start(history)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		if op, ready, err := a.Poll(); ready {
			log.Info().Msgf("player took %v to think about the next step", a.elapsed.Round(time.Millisecond))
			return op, err
		}
		a.tick()
		<-ticker.C
	}
}

// Elapsed returns how long the latest collected decision took.
func (a *Async) Elapsed() time.Duration {
	return a.elapsed
}

// LastMetric forwards the wrapped decider's metrics, if it reports any.
func (a *Async) LastMetric() metrics.SearchMetric {
	if r, ok := a.decider.(Reporter); ok {
		return r.LastMetric()
	}
	return metrics.SearchMetric{}
}
