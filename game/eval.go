package game

import "bytes"

// Weights are the points awarded per window for each shape, strongest first.
type Weights struct {
	Five          float64 `json:"five"`
	OpenFour      float64 `json:"open_four"`
	SimpleFour    float64 `json:"simple_four"`
	OpenThree     float64 `json:"open_three"`
	SplitThree    float64 `json:"split_three"`
	SleepingThree float64 `json:"sleeping_three"`
	OpenTwo       float64 `json:"open_two"`
	SleepingTwo   float64 `json:"sleeping_two"`
}

func DefaultWeights() Weights {
	return Weights{
		Five:          50000000.0,
		OpenFour:      1000000.0,
		SimpleFour:    100000.0,
		OpenThree:     80000.0,
		SplitThree:    70000.0,
		SleepingThree: 5000.0,
		OpenTwo:       500.0,
		SleepingTwo:   100.0,
	}
}

// Windows are encoded with 's' for the evaluated side, 't' for its opponent
// and 'e' for an empty cell.
const (
	own      = 's'
	opponent = 't'
	vacant   = 'e'
)

type shape struct {
	name   string
	weight func(Weights) float64
	rules  [][]byte
}

func rules(patterns ...string) [][]byte {
	out := make([][]byte, len(patterns))
	for i, p := range patterns {
		out[i] = []byte(p)
	}
	return out
}

var shapes = [...]shape{
	{
		name:   "five",
		weight: func(w Weights) float64 { return w.Five },
		rules:  rules("sssss"),
	},
	{
		name:   "open four",
		weight: func(w Weights) float64 { return w.OpenFour },
		rules:  rules("esssse"),
	},
	{
		name:   "simple four",
		weight: func(w Weights) float64 { return w.SimpleFour },
		rules:  rules("esssst", "tsssse", "sesss", "ssses", "ssess"),
	},
	{
		name:   "open three",
		weight: func(w Weights) float64 { return w.OpenThree },
		rules:  rules("essse"),
	},
	{
		name:   "split three",
		weight: func(w Weights) float64 { return w.SplitThree },
		rules:  rules("sess", "sses"),
	},
	{
		name:   "sleeping three",
		weight: func(w Weights) float64 { return w.SleepingThree },
		rules: rules("eessst", "tsssee", "esesst", "tssese", "essest",
			"tsesse", "seess", "ssees", "seses", "tessset"),
	},
	{
		name:   "open two",
		weight: func(w Weights) float64 { return w.OpenTwo },
		rules:  rules("eessee", "esese", "sees"),
	},
	{
		name:   "sleeping two",
		weight: func(w Weights) float64 { return w.SleepingTwo },
		rules:  rules("eeesst", "tsseee", "eesest", "tsesee", "eseest", "tseese", "seees"),
	},
}

// Evaluator scores a board for one side from its stones' line shapes and
// their distance to the edge. It is deterministic and keeps no state.
type Evaluator struct {
	Weights Weights
}

func NewEvaluator() Evaluator {
	return Evaluator{Weights: DefaultWeights()}
}

// Score sums the contribution of every stone of side. The net value of a
// position is Score(b, side) - Score(b, side.Other()), left to callers.
func (e Evaluator) Score(b *Board, side Side) float64 {
	mine := CellOf(side)
	score := 0.0
	for i, c := range b {
		if c == mine {
			score += e.scoreAt(b, PositionOf(i), mine)
		}
	}
	return score
}

func (e Evaluator) scoreAt(b *Board, p Position, mine Cell) float64 {
	total := float64(centrality(p))
	var buf [2*(WinLength-1) + 1]byte
	for _, d := range Axes {
		window := lineWindow(b, p, d, mine, buf[:0])
		for _, s := range shapes {
			if matchesAny(window, s.rules) {
				total += s.weight(e.Weights)
			}
		}
	}
	return total
}

// centrality is the distance from p to the closest edge.
func centrality(p Position) int {
	return min(p.X, Size-1-p.X, p.Y, Size-1-p.Y)
}

// lineWindow encodes the cells up to 4 steps either side of p along d,
// clipped at the edge of the board.
func lineWindow(b *Board, p Position, d Direction, mine Cell, buf []byte) []byte {
	for k := -(WinLength - 1); k <= WinLength-1; k++ {
		q := p.Add(d, k)
		if !q.Valid() {
			continue
		}
		switch c := b.At(q); {
		case c == Empty:
			buf = append(buf, vacant)
		case c == mine:
			buf = append(buf, own)
		default:
			buf = append(buf, opponent)
		}
	}
	return buf
}

func matchesAny(window []byte, rules [][]byte) bool {
	for _, rule := range rules {
		if bytes.Contains(window, rule) {
			return true
		}
	}
	return false
}
