package c4test

import (
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/notation"
)

var (
	X = c4.Player{Name: "X", Mark: 'X'}
	O = c4.Player{Name: "O", Mark: 'O'}
)

func Moves(s string) []int {
	ms, err := notation.ParseMoves(s)
	if err != nil {
		panic(err)
	}
	return ms
}

// Game plays the move list ms (1-based columns) from the empty board
// with X moving first.
func Game(ms string) *c4.Game {
	g, err := c4.NewGame(X, O)
	if err != nil {
		panic(err)
	}
	for _, m := range Moves(ms) {
		if _, err := g.Move(m); err != nil {
			panic(err)
		}
	}
	return g
}

func Position(s string) *c4.Board {
	b, err := notation.ParsePosition(s, X, O)
	if err != nil {
		panic(err)
	}
	return b
}

// DrawMoves fills the whole board without a four in a row.
const DrawMoves = "3 1 1 3 3 1 1 3 3 1 1 3 " +
	"4 2 2 4 4 2 2 4 4 2 2 4 " +
	"7 5 5 6 6 7 7 5 5 6 6 7 7 5 5 6 6 7"
