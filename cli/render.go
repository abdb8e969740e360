package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nelhage/connect4/c4"
)

// Glyphs chooses how cells are drawn. An empty seat glyph draws the
// player's own mark.
type Glyphs struct {
	Empty string
	Seats [2]string
}

var DefaultGlyphs = Glyphs{
	Empty: "#",
}

var UnicodeGlyphs = Glyphs{
	Empty: "·",
	Seats: [2]string{"●", "○"},
}

type Style struct {
	Glyphs *Glyphs
	Color  bool
}

var seatColors = [2]*color.Color{
	color.New(color.FgRed, color.Bold),
	color.New(color.FgYellow, color.Bold),
}

var highlight = color.New(color.ReverseVideo)

const rule = "-----------------------------"

func (s *Style) glyph(b *c4.Board, row, col int) string {
	g := s.Glyphs
	if g == nil {
		g = &DefaultGlyphs
	}
	m := b.At(row, col)
	if m == c4.Empty {
		return g.Empty
	}
	seat, ok := b.SeatOf(m)
	if !ok {
		return m.String()
	}
	out := g.Seats[seat]
	if out == "" {
		out = m.String()
	}
	if s.Color {
		out = seatColors[seat].Sprint(out)
	}
	return out
}

// RenderBoard draws g's board with the column numbers underneath. When
// the game has been won and s.Color is set, the winning cells are
// highlighted.
func RenderBoard(out io.Writer, s *Style, g *c4.Game) {
	if s == nil {
		s = &Style{}
	}
	win := make(map[c4.Cell]bool)
	for _, c := range g.WinningRun() {
		win[c] = true
	}
	b := g.Board()
	fmt.Fprintln(out, "Connect Four")
	for row := 0; row < c4.Rows; row++ {
		var line strings.Builder
		for col := 0; col < c4.Columns; col++ {
			cell := s.glyph(b, row, col)
			if s.Color && win[c4.Cell{Row: row, Col: col}] {
				cell = highlight.Sprint(cell)
			}
			fmt.Fprintf(&line, "| %s ", cell)
		}
		fmt.Fprintf(out, "%s|\n", line.String())
	}
	fmt.Fprintln(out, rule)
	var nums strings.Builder
	for col := 0; col < c4.Columns; col++ {
		fmt.Fprintf(&nums, "  %d ", col+1)
	}
	fmt.Fprintln(out, strings.TrimRight(nums.String(), " "))
	fmt.Fprintln(out, rule)
}
