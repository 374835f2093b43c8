package searcher

import (
	"fmt"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type MCTSOption func(m *MCTS)

// MCTS is a UCT searcher. Leaves are scored with the evaluator instead of
// random playouts, and every Decide call builds a fresh tree.
type MCTS struct {
	iterations int
	radius     int
	evaluator  game.Evaluator
	rng        *rand.Rand
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

func WithIterations(iterations int) MCTSOption {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithCandidateRadius limits untried moves to cells near existing stones.
func WithCandidateRadius(radius int) MCTSOption {
	return func(m *MCTS) {
		if radius > 0 {
			m.radius = radius
		}
	}
}

// WithSeed fixes the source used to shuffle untried moves.
func WithSeed(seed uint64) MCTSOption {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMCTSEvaluator(evaluator game.Evaluator) MCTSOption {
	return func(m *MCTS) {
		m.evaluator = evaluator
	}
}

func WithMCTSMetrics() MCTSOption {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		iterations: meta.ITERATIONS,
		evaluator:  game.NewEvaluator(),
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MCTS) Decide(history game.History) (game.Operation, error) {
	board, err := prepare(history)
	if err != nil {
		return game.Operation{}, err
	}

	m.metrics.Start("mcts")
	root := newNode(nil, history.Next(), board, m.radius, m.rng)
	m.search(root)
	m.last = m.metrics.Complete()

	pos, ok := root.bestMove()
	if !ok {
		return game.Operation{}, fmt.Errorf("%w: root has no children", ErrNoMoveAvailable)
	}

	log.Debug().Msgf("mcts chose %v for %v after %d visits", pos, root.side, root.visits)
	return game.Place(pos), nil
}

// LastMetric returns the metrics of the latest Decide call.
func (m *MCTS) LastMetric() metrics.SearchMetric {
	return m.last
}

func (m *MCTS) search(root *node) {
	for i := 0; i < m.iterations; i++ {
		m.simulate(root)
		m.metrics.AddIteration()
	}
}

func (m *MCTS) simulate(root *node) {
	leaf := m.selectThenExpand(root)
	leaf.backup(m.evaluate(leaf))
}

// selectThenExpand descends by UCT until it reaches a terminal node or a node
// with untried moves, which gets a new child.
func (m *MCTS) selectThenExpand(root *node) *node {
	current := root
	for !current.terminal {
		m.metrics.AddNode()
		if len(current.untried) > 0 {
			return current.expand(m.radius, m.rng)
		}
		child := current.pickChild()
		if child == nil { // Full board
			return current
		}
		current = child
	}
	return current
}

// evaluate scores the leaf for the side that moved into it.
func (m *MCTS) evaluate(leaf *node) float64 {
	m.metrics.AddLeaf()
	return m.evaluator.Score(&leaf.board, leaf.side.Other()) - m.evaluator.Score(&leaf.board, leaf.side)
}
