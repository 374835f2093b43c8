package game

import "fmt"

// Side is one of the two players. Black always moves first.
type Side uint8

const (
	Black Side = iota
	White
)

func (s Side) Other() Side {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("invalid side %d", s))
}

func (s Side) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	panic(fmt.Sprintf("invalid side %d", s))
}

// Cell is the content of a single intersection.
type Cell uint8

const (
	Empty Cell = iota
	BlackStone
	WhiteStone
)

func CellOf(side Side) Cell {
	switch side {
	case Black:
		return BlackStone
	case White:
		return WhiteStone
	}
	panic(fmt.Sprintf("invalid side %d", side))
}

// Side returns the owner of the stone on the cell, false for an empty cell.
func (c Cell) Side() (Side, bool) {
	switch c {
	case Empty:
		return Black, false
	case BlackStone:
		return Black, true
	case WhiteStone:
		return White, true
	}
	panic(fmt.Sprintf("invalid cell %d", c))
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case BlackStone:
		return "Black"
	case WhiteStone:
		return "White"
	}
	panic(fmt.Sprintf("invalid cell %d", c))
}
