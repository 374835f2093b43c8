package game

import "fmt"

type OperationKind uint8

const (
	OpPlace OperationKind = iota
	OpRetract
	OpResign
)

func (k OperationKind) String() string {
	switch k {
	case OpPlace:
		return "place"
	case OpRetract:
		return "retract"
	case OpResign:
		return "resign"
	}
	panic(fmt.Sprintf("invalid operation kind %d", k))
}

// Operation is the outcome of a decision: place a stone, take back the last
// round, or give up. Position is only meaningful for OpPlace.
type Operation struct {
	Kind     OperationKind `json:"kind"`
	Position Position      `json:"position"`
}

func Place(p Position) Operation {
	return Operation{Kind: OpPlace, Position: p}
}

func Retract() Operation {
	return Operation{Kind: OpRetract}
}

func Resign() Operation {
	return Operation{Kind: OpResign}
}

func (op Operation) String() string {
	if op.Kind == OpPlace {
		return fmt.Sprintf("place %v", op.Position)
	}
	return op.Kind.String()
}
