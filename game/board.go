package game

import "fmt"

const (
	Size      = 15
	Cells     = Size * Size
	WinLength = 5
)

// Center is the middle intersection, the conventional opening move.
var Center = Position{X: Size / 2, Y: Size / 2}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func PositionOf(index int) Position {
	return Position{X: index / Size, Y: index % Size}
}

func (p Position) Index() int {
	return p.X*Size + p.Y
}

func (p Position) Valid() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Add returns the position k steps away from p along d.
func (p Position) Add(d Direction, k int) Position {
	return Position{X: p.X + k*d.X, Y: p.Y + k*d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Direction struct {
	X, Y int
}

// Directions lists the 8 unit vectors. Directions[i] and Directions[i^4]
// point in opposite senses, so the first four span every axis once.
var Directions = [8]Direction{
	{1, 0},   // right
	{1, 1},   // right-up
	{0, 1},   // up
	{-1, 1},  // left-up
	{-1, 0},  // left
	{-1, -1}, // left-down
	{0, -1},  // down
	{1, -1},  // right-down
}

var Axes = Directions[:4]

// Board is a snapshot of the grid. It is a value type: assigning a Board
// copies every cell.
type Board [Cells]Cell

// FromHistory replays steps onto an empty board. Steps are not validated,
// a repeated position is simply overwritten.
func FromHistory(steps []Step) Board {
	var b Board
	for _, step := range steps {
		b.Set(step.Position, CellOf(step.Side))
	}
	return b
}

func (b *Board) At(p Position) Cell {
	return b[p.Index()]
}

func (b *Board) Set(p Position, c Cell) {
	b[p.Index()] = c
}

func (b *Board) IsEmpty(p Position) bool {
	return p.Valid() && b.At(p) == Empty
}

// run counts the stones equal to c strictly beyond p along d.
func (b *Board) run(p Position, d Direction, c Cell) int {
	count := 0
	for q := p.Add(d, 1); q.Valid() && b.At(q) == c; q = q.Add(d, 1) {
		count++
	}
	return count
}

// IsWinningAt reports whether the stone on p is part of an unbroken line of
// at least WinLength stones of its colour.
func (b *Board) IsWinningAt(p Position) bool {
	c := b.At(p)
	if c == Empty {
		return false
	}
	for i, d := range Axes {
		if b.run(p, d, c)+1+b.run(p, Directions[i^4], c) >= WinLength {
			return true
		}
	}
	return false
}

// Winner scans the whole board for a winning line.
func (b *Board) Winner() (Side, bool) {
	for i := range b {
		p := PositionOf(i)
		if b.IsWinningAt(p) {
			side, _ := b.At(p).Side()
			return side, true
		}
	}
	return Black, false
}

func (b *Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Stones returns the occupied positions in index order.
func (b *Board) Stones() []Position {
	stones := []Position{}
	for i, c := range b {
		if c != Empty {
			stones = append(stones, PositionOf(i))
		}
	}
	return stones
}

// Candidates returns the empty cells reachable from any of stones by at most
// radius steps in one of the 8 directions. Each cell appears once, in
// stone-major, then distance, then direction order. A non-positive radius
// selects every empty cell.
func Candidates(b *Board, stones []Position, radius int) []Position {
	if radius <= 0 {
		moves := make([]Position, 0, Cells)
		for i, c := range b {
			if c == Empty {
				moves = append(moves, PositionOf(i))
			}
		}
		return moves
	}

	var seen [Cells]bool
	moves := []Position{}
	for _, stone := range stones {
		for k := 1; k <= radius; k++ {
			for _, d := range Directions {
				q := stone.Add(d, k)
				if !b.IsEmpty(q) || seen[q.Index()] {
					continue
				}
				seen[q.Index()] = true
				moves = append(moves, q)
			}
		}
	}
	return moves
}
