package symmetry

import (
	"fmt"

	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/notation"
)

// A Symmetry maps a column to its image. Gravity rules out every board
// symmetry but the left-right mirror.
type Symmetry func(col int) int

func Identity(col int) int { return col }

func Mirror(col int) int { return c4.Columns - 1 - col }

func Transform(s Symmetry, ms []int) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = s(m)
	}
	return out
}

func TransformGrid(s Symmetry, g c4.Grid) c4.Grid {
	var out c4.Grid
	for r := 0; r < c4.Rows; r++ {
		for c := 0; c < c4.Columns; c++ {
			out[r][s(c)] = g[r][c]
		}
	}
	return out
}

func Symmetric(g c4.Grid) bool {
	return TransformGrid(Mirror, g) == g
}

// Canonical rewrites ms so that a game and its mirror image come out
// the same. Whenever the position is symmetric, the next move is taken
// from the left half of the board and every later move follows the
// same reflection.
func Canonical(ms []int) ([]int, error) {
	g, err := c4.NewGame(
		c4.Player{Name: "first", Mark: 'X'},
		c4.Player{Name: "second", Mark: 'O'},
	)
	if err != nil {
		return nil, err
	}
	var s Symmetry = Identity
	flipped := false
	out := make([]int, 0, len(ms))
	for ply, m := range ms {
		m = s(m)
		if Symmetric(g.Board().Grid()) && Mirror(m) < m {
			m = Mirror(m)
			flipped = !flipped
			if flipped {
				s = Mirror
			} else {
				s = Identity
			}
		}
		if _, err := g.Move(m); err != nil {
			return nil, fmt.Errorf("canonical: move %d: %s: %w",
				ply, notation.FormatColumn(m), err)
		}
		out = append(out, m)
	}
	return out, nil
}
