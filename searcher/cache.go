package searcher

import "gomoku/game"

// BestMoves maps a position hash to the move that last improved the search
// bound there. It only orders moves: no score or depth is kept, entries are
// overwritten on every improvement and never evicted. Not safe for
// concurrent use.
type BestMoves struct {
	moves map[uint64]game.Position
}

// NewBestMoves returns a cache seeded with the center for the empty board,
// whose hash is always 0.
func NewBestMoves() *BestMoves {
	return &BestMoves{
		moves: map[uint64]game.Position{0: game.Center},
	}
}

func (c *BestMoves) Lookup(hash uint64) (game.Position, bool) {
	pos, ok := c.moves[hash]
	return pos, ok
}

func (c *BestMoves) Store(hash uint64, pos game.Position) {
	c.moves[hash] = pos
}

func (c *BestMoves) Len() int {
	return len(c.moves)
}
