package notation

import (
	"testing"

	"github.com/nelhage/connect4/c4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	x = c4.Player{Name: "x", Mark: 'X'}
	o = c4.Player{Name: "o", Mark: 'O'}
)

func TestParseColumn(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"7", 6, true},
		{" 4\n", 3, true},
		{"9", 8, true},
		{"0", -1, true},
		{"", -1, false},
		{"four", -1, false},
		{"3.5", -1, false},
	}
	for _, tc := range cases {
		got, err := ParseColumn(tc.in)
		if tc.ok {
			assert.NoError(t, err, "%q", tc.in)
			assert.Equal(t, tc.want, got, "%q", tc.in)
		} else {
			assert.Error(t, err, "%q", tc.in)
		}
	}
	assert.Equal(t, "1", FormatColumn(0))
	assert.Equal(t, "7", FormatColumn(6))
}

func TestMoves(t *testing.T) {
	ms, err := ParseMoves("4 4  3 5")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 2, 4}, ms)
	assert.Equal(t, "4 4 3 5", FormatMoves(ms))

	ms, err = ParseMoves("")
	require.NoError(t, err)
	assert.Empty(t, ms)
	assert.Equal(t, "", FormatMoves(nil))

	_, err = ParseMoves("4 8")
	assert.Error(t, err)
	_, err = ParseMoves("4 x")
	assert.Error(t, err)
}

func TestGrid(t *testing.T) {
	s := "......./......./......./......./...O.../XXXO..."
	g, err := ParseGrid(s)
	require.NoError(t, err)
	assert.Equal(t, c4.Mark('X'), g[5][0])
	assert.Equal(t, c4.Mark('O'), g[5][3])
	assert.Equal(t, c4.Mark('O'), g[4][3])
	assert.Equal(t, c4.Empty, g[4][0])
	assert.Equal(t, s, FormatGrid(g))

	assert.Equal(t, "......./......./......./......./......./.......", FormatGrid(c4.Grid{}))
}

func TestGridUnicodeMarks(t *testing.T) {
	s := "......./......./......./......./......./●○....."
	g, err := ParseGrid(s)
	require.NoError(t, err)
	assert.Equal(t, c4.Mark('●'), g[5][0])
	assert.Equal(t, c4.Mark('○'), g[5][1])
	assert.Equal(t, s, FormatGrid(g))
}

func TestParseGridErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"......./......./......./......./.......",
		"......./......./......./......./......./......",
		"......./......./......./......./......./........",
	} {
		_, err := ParseGrid(s)
		assert.Error(t, err, "%q", s)
	}
}

func TestPosition(t *testing.T) {
	s := "......./......./......./......./...O.../XXXO... 1"
	b, err := ParsePosition(s, x, o)
	require.NoError(t, err)
	assert.Equal(t, c4.First, b.Turn())
	assert.Equal(t, s, FormatPosition(b))

	row, err := b.DropPiece(4)
	require.NoError(t, err)
	assert.False(t, b.IsWinningMove(row, 4))

	_, err = ParsePosition("......./......./......./......./......./....... 3", x, o)
	assert.Error(t, err)
	_, err = ParsePosition("......./......./......./......./X....../....... 1", x, o)
	assert.Error(t, err, "floating piece")
	_, err = ParsePosition("......./......./......./......./......./.......", x, o)
	assert.Error(t, err)
}
