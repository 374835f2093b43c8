package game

import "golang.org/x/exp/rand"

// Zobrist holds one random key per side and position. The hash of a board is
// the XOR of the keys of its stones, so toggling the same key twice restores
// the previous hash.
type Zobrist struct {
	keys [2][Cells]uint64
}

func NewZobrist(seed uint64) *Zobrist {
	rng := rand.New(rand.NewSource(seed))
	z := &Zobrist{}
	for side := range z.keys {
		for i := range z.keys[side] {
			// A zero key would make the stone invisible to the hash
			v := rng.Uint64()
			for v == 0 {
				v = rng.Uint64()
			}
			z.keys[side][i] = v
		}
	}
	return z
}

func (z *Zobrist) Key(side Side, p Position) uint64 {
	switch side {
	case Black:
		return z.keys[0][p.Index()]
	case White:
		return z.keys[1][p.Index()]
	}
	panic("invalid side")
}

// Hash folds the keys of every step. The empty history hashes to 0.
func (z *Zobrist) Hash(steps []Step) uint64 {
	var hash uint64
	for _, step := range steps {
		hash ^= z.Key(step.Side, step.Position)
	}
	return hash
}
