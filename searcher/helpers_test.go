package searcher

import "gomoku/game"

// historyOf plays positions alternately, Black first.
func historyOf(positions ...game.Position) game.History {
	h := game.History{}
	for _, p := range positions {
		h = h.Place(p)
	}
	return h
}

// drawnHistory fills the whole board without five in a row anywhere. Colours
// follow (x + 2y) mod 4, which leaves runs of at most two on every axis.
func drawnHistory() game.History {
	var black, white []game.Position
	for i := 0; i < game.Cells; i++ {
		p := game.PositionOf(i)
		if (p.X+2*p.Y)%4 < 2 {
			black = append(black, p)
		} else {
			white = append(white, p)
		}
	}
	h := game.History{}
	for i := range black {
		h = append(h, game.Step{Side: game.Black, Position: black[i]})
		if i < len(white) {
			h = append(h, game.Step{Side: game.White, Position: white[i]})
		}
	}
	return h
}

// openFourForBlack leaves Black to move with .XXXX. on row 7 and White's
// stones scattered in the corners.
func openFourForBlack() game.History {
	return historyOf(
		game.Position{X: 7, Y: 5}, game.Position{X: 0, Y: 0},
		game.Position{X: 7, Y: 6}, game.Position{X: 0, Y: 14},
		game.Position{X: 7, Y: 7}, game.Position{X: 14, Y: 0},
		game.Position{X: 7, Y: 8}, game.Position{X: 14, Y: 14},
	)
}

// closedFourForWhite leaves Black to move facing OXXXX. on row 3.
func closedFourForWhite() game.History {
	return historyOf(
		game.Position{X: 3, Y: 2}, game.Position{X: 3, Y: 3},
		game.Position{X: 10, Y: 10}, game.Position{X: 3, Y: 4},
		game.Position{X: 10, Y: 12}, game.Position{X: 3, Y: 5},
		game.Position{X: 12, Y: 0}, game.Position{X: 3, Y: 6},
	)
}
