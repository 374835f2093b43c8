package searcher

import (
	"fmt"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/meta"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

type MinimaxOption func(m *Minimax)

// Minimax is a depth-limited alpha-beta searcher. Its best-move cache lives
// as long as the Minimax and is shared by every Decide call.
type Minimax struct {
	depth     int
	radius    int
	seed      uint64
	evaluator game.Evaluator
	zobrist   *game.Zobrist
	best      *BestMoves
	metrics   metrics.Collector
	last      metrics.SearchMetric
}

func WithDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithRadius(radius int) MinimaxOption {
	return func(m *Minimax) {
		if radius > 0 {
			m.radius = radius
		}
	}
}

// WithZobristSeed fixes the seed of the hash tables.
func WithZobristSeed(seed uint64) MinimaxOption {
	return func(m *Minimax) {
		m.seed = seed
	}
}

func WithMinimaxEvaluator(evaluator game.Evaluator) MinimaxOption {
	return func(m *Minimax) {
		m.evaluator = evaluator
	}
}

func WithMinimaxMetrics() MinimaxOption {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{ // Default values
		depth:     meta.DEPTH,
		radius:    meta.RADIUS,
		seed:      uint64(time.Now().UnixNano()),
		evaluator: game.NewEvaluator(),
		best:      NewBestMoves(),
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	m.zobrist = game.NewZobrist(m.seed)
	return m
}

func (m *Minimax) Decide(history game.History) (game.Operation, error) {
	board, err := prepare(history)
	if err != nil {
		return game.Operation{}, err
	}

	m.metrics.Start("minimax")
	s := &search{
		Minimax: m,
		root:    history.Next(),
		board:   board,
		history: history.Clone(),
		hash:    m.zobrist.Hash(history),
	}
	start := s.hash
	score := s.max(0, math.Inf(-1), math.Inf(1))
	m.last = m.metrics.Complete()

	pos, ok := m.best.Lookup(start)
	if ok && board.At(pos) != game.Empty {
		log.Warn().Msgf("cached move %v is already occupied", pos)
		ok = false
	}
	if !ok {
		return game.Operation{}, fmt.Errorf("%w: no candidate around %d stones", ErrNoMoveAvailable, len(history))
	}

	log.Debug().Msgf("minimax chose %v for %v with score %.0f", pos, s.root, score)
	return game.Place(pos), nil
}

// LastMetric returns the metrics of the latest Decide call.
func (m *Minimax) LastMetric() metrics.SearchMetric {
	return m.last
}

func (m *Minimax) Cache() *BestMoves {
	return m.best
}

// search is the mutable state of one Decide call. Board, history and hash
// always describe the same position; play keeps them in step.
type search struct {
	*Minimax
	root    game.Side
	board   game.Board
	history game.History
	hash    uint64
}

// play puts a stone for side on pos and returns the function that takes it
// back. Callers defer the returned function so every exit path restores the
// position.
func (s *search) play(side game.Side, pos game.Position) func() {
	s.board.Set(pos, game.CellOf(side))
	s.history = append(s.history, game.Step{Side: side, Position: pos})
	s.hash ^= s.zobrist.Key(side, pos)
	return func() {
		s.board.Set(pos, game.Empty)
		s.history = s.history[:len(s.history)-1]
		s.hash ^= s.zobrist.Key(side, pos)
	}
}

func (s *search) descend(pos game.Position, depth int, alpha, beta float64, next func(int, float64, float64) float64) float64 {
	defer s.play(s.history.Next(), pos)()
	return next(depth+1, alpha, beta)
}

// cutoff reports whether the position is a leaf: the depth limit is reached
// or the last stone finished a line.
func (s *search) cutoff(depth int) bool {
	if depth == s.depth {
		return true
	}
	last, ok := s.history.Last()
	return ok && s.board.IsWinningAt(last.Position)
}

// evaluate scores the position for the side that is deciding.
func (s *search) evaluate() float64 {
	s.metrics.AddLeaf()
	return s.evaluator.Score(&s.board, s.root) - s.evaluator.Score(&s.board, s.root.Other())
}

func (s *search) candidates() []game.Position {
	return game.Candidates(&s.board, s.history.Positions(), s.radius)
}

func (s *search) max(depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	if s.cutoff(depth) {
		return s.evaluate()
	}

	hash := s.hash
	cached, hit := s.best.Lookup(hash)
	if hit && s.board.At(cached) == game.Empty {
		s.metrics.AddCacheHit()
		if score := s.descend(cached, depth, alpha, beta, s.min); score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			return alpha
		}
	} else {
		hit = false
	}

	for _, pos := range s.candidates() {
		if hit && pos == cached {
			continue
		}
		if score := s.descend(pos, depth, alpha, beta, s.min); score > alpha {
			alpha = score
			s.best.Store(hash, pos)
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			return alpha
		}
	}
	return alpha
}

func (s *search) min(depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	if s.cutoff(depth) {
		return s.evaluate()
	}

	hash := s.hash
	cached, hit := s.best.Lookup(hash)
	if hit && s.board.At(cached) == game.Empty {
		s.metrics.AddCacheHit()
		if score := s.descend(cached, depth, alpha, beta, s.max); score < beta {
			beta = score
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			return beta
		}
	} else {
		hit = false
	}

	for _, pos := range s.candidates() {
		if hit && pos == cached {
			continue
		}
		if score := s.descend(pos, depth, alpha, beta, s.max); score < beta {
			beta = score
			s.best.Store(hash, pos)
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			return beta
		}
	}
	return beta
}
