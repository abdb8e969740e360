// Package notation reads and writes the text forms used for Connect
// Four moves and positions.
//
// Columns are numbered 1 to 7 from the left. A move list is a
// space-separated list of columns. A grid is written as six rows, top
// first, separated by '/'; each row holds seven characters, '.' for an
// empty cell and the occupying mark otherwise. A position is a grid
// followed by the seat to move, 1 or 2.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nelhage/connect4/c4"
)

const emptyCell = '.'

// ParseColumn reads a 1-based column number and returns the 0-based
// column. Range is not checked; that is the board's job.
func ParseColumn(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1, fmt.Errorf("bad column: %q", strings.TrimSpace(s))
	}
	return n - 1, nil
}

func FormatColumn(col int) string {
	return strconv.Itoa(col + 1)
}

func ParseMoves(s string) ([]int, error) {
	var out []int
	for _, w := range strings.Fields(s) {
		c, err := ParseColumn(w)
		if err != nil {
			return nil, err
		}
		if c < 0 || c >= c4.Columns {
			return nil, fmt.Errorf("column out of range: %s", w)
		}
		out = append(out, c)
	}
	return out, nil
}

func FormatMoves(ms []int) string {
	bits := make([]string, len(ms))
	for i, m := range ms {
		bits[i] = FormatColumn(m)
	}
	return strings.Join(bits, " ")
}

func ParseGrid(s string) (c4.Grid, error) {
	var g c4.Grid
	rows := strings.Split(s, "/")
	if len(rows) != c4.Rows {
		return g, fmt.Errorf("bad grid: %d rows", len(rows))
	}
	for r, row := range rows {
		if n := utf8.RuneCountInString(row); n != c4.Columns {
			return g, fmt.Errorf("row %d bad length: %d", r, n)
		}
		c := 0
		for _, ch := range row {
			if ch != emptyCell {
				g[r][c] = c4.Mark(ch)
			}
			c++
		}
	}
	return g, nil
}

func FormatGrid(g c4.Grid) string {
	var b strings.Builder
	for r := 0; r < c4.Rows; r++ {
		if r > 0 {
			b.WriteByte('/')
		}
		for c := 0; c < c4.Columns; c++ {
			if g[r][c] == c4.Empty {
				b.WriteRune(emptyCell)
			} else {
				b.WriteRune(rune(g[r][c]))
			}
		}
	}
	return b.String()
}

// ParsePosition reads "grid seat" and seats first and second on the
// resulting board.
func ParsePosition(s string, first, second c4.Player) (*c4.Board, error) {
	words := strings.Fields(s)
	if len(words) != 2 {
		return nil, errors.New("bad position: wrong number of words")
	}
	g, err := ParseGrid(words[0])
	if err != nil {
		return nil, err
	}
	var turn c4.Seat
	switch words[1] {
	case "1":
		turn = c4.First
	case "2":
		turn = c4.Second
	default:
		return nil, fmt.Errorf("bad turn: %s", words[1])
	}
	return c4.FromGrid(g, first, second, turn)
}

func FormatPosition(b *c4.Board) string {
	return fmt.Sprintf("%s %d", FormatGrid(b.Grid()), int(b.Turn())+1)
}
