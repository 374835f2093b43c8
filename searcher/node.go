package searcher

import (
	"gomoku/game"
	"math"

	"golang.org/x/exp/rand"
)

// node is a position in the MCTS tree. A node owns its children; parent is a
// back-reference used only to propagate rewards upwards.
type node struct {
	parent   *node
	children map[int]*node // Keyed by flat position index
	order    []int         // Child keys in expansion order
	untried  []game.Position
	side     game.Side // Side to move
	board    game.Board
	terminal bool
	visits   int
	quality  float64
}

func newNode(parent *node, side game.Side, board game.Board, radius int, rng *rand.Rand) *node {
	_, won := board.Winner()
	n := &node{
		parent:   parent,
		children: map[int]*node{},
		side:     side,
		board:    board,
		terminal: won,
	}
	if !won {
		n.untried = candidates(&n.board, radius)
		rng.Shuffle(len(n.untried), func(i, j int) {
			n.untried[i], n.untried[j] = n.untried[j], n.untried[i]
		})
	}
	return n
}

// candidates lists the moves a node may try. With a radius, an empty board
// only offers the center.
func candidates(board *game.Board, radius int) []game.Position {
	if radius <= 0 {
		return game.Candidates(board, nil, 0)
	}
	stones := board.Stones()
	if len(stones) == 0 {
		return []game.Position{game.Center}
	}
	return game.Candidates(board, stones, radius)
}

// expand materializes the child for the next untried move.
func (n *node) expand(radius int, rng *rand.Rand) *node {
	pos := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	board := n.board
	board.Set(pos, game.CellOf(n.side))
	child := newNode(n, n.side.Other(), board, radius, rng)
	n.children[pos.Index()] = child
	n.order = append(n.order, pos.Index())
	return child
}

// pickChild returns the child with the highest UCT score, nil without
// children.
func (n *node) pickChild() *node {
	if len(n.order) == 0 {
		return nil
	}
	policy := newUCT(Exploration, float64(n.visits))

	var best *node
	bestScore := math.Inf(-1)
	for _, index := range n.order {
		child := n.children[index]
		if score := policy.evaluate(child.quality, float64(child.visits)); score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// bestMove returns the child position with the highest mean reward.
func (n *node) bestMove() (game.Position, bool) {
	bestIndex := -1
	bestScore := math.Inf(-1)
	for _, index := range n.order {
		child := n.children[index]
		if score := child.quality / float64(child.visits); score > bestScore {
			bestScore = score
			bestIndex = index
		}
	}
	if bestIndex < 0 {
		return game.Position{}, false
	}
	return game.PositionOf(bestIndex), true
}

// backup records reward on n and its negation on the parent, alternating up
// to the root.
func (n *node) backup(reward float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		cur.quality += reward
		reward = -reward
	}
}
