package c4

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	xPlayer = Player{Name: "Ann", Mark: 'X'}
	oPlayer = Player{Name: "Bob", Mark: 'O'}
)

func seated(t testing.TB) *Board {
	b := New()
	require.NoError(t, b.Seat(xPlayer, oPlayer))
	return b
}

// drop plays column for whoever is to move and then passes the turn.
func drop(t testing.TB, b *Board, column int) int {
	row, err := b.DropPiece(column)
	require.NoError(t, err, "drop column %d", column)
	b.NextTurn()
	return row
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := New()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			assert.Equal(t, Empty, b.At(row, col))
		}
	}
	assert.False(t, b.Seated())
	assert.Equal(t, First, b.Turn())
}

func TestSeat(t *testing.T) {
	b := New()
	assert.ErrorIs(t, b.Seat(xPlayer, Player{Name: "Cid", Mark: 'X'}), ErrSameMark)
	assert.ErrorIs(t, b.Seat(xPlayer, Player{Name: "Cid"}), ErrEmptyMark)
	assert.False(t, b.Seated())

	require.NoError(t, b.Seat(xPlayer, oPlayer))
	assert.True(t, b.Seated())
	assert.Equal(t, xPlayer, b.Player(First))
	assert.Equal(t, oPlayer, b.Player(Second))
	assert.Equal(t, xPlayer, b.Current())

	b.SetTurn(Second)
	assert.Equal(t, oPlayer, b.Current())
	b.NextTurn()
	assert.Equal(t, First, b.Turn())

	s, ok := b.SeatOf('O')
	assert.True(t, ok)
	assert.Equal(t, Second, s)
	_, ok = b.SeatOf('Z')
	assert.False(t, ok)
}

func TestIsValidMove(t *testing.T) {
	b := seated(t)
	for col := -2; col < Columns+2; col++ {
		assert.Equal(t, col >= 0 && col < Columns, b.IsValidMove(col), "column %d", col)
	}

	for i := 0; i < Rows; i++ {
		assert.True(t, b.IsValidMove(3))
		drop(t, b, 3)
	}
	assert.False(t, b.IsValidMove(3))
	assert.True(t, b.IsValidMove(2))
	assert.True(t, b.IsValidMove(4))
}

func TestDropPieceGravity(t *testing.T) {
	b := seated(t)
	for i := 0; i < Rows; i++ {
		mark := b.Current().Mark
		row := drop(t, b, 2)
		assert.Equal(t, Rows-1-i, row)
		assert.Equal(t, mark, b.At(row, 2))
		assert.Equal(t, i+1, b.Height(2))
	}
}

func TestDropPieceFullColumn(t *testing.T) {
	b := seated(t)
	for i := 0; i < Rows; i++ {
		drop(t, b, 5)
	}
	before := b.Grid()

	row, err := b.DropPiece(5)
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, -1, row)
	assert.Equal(t, before, b.Grid())
}

func TestDropPieceOutOfRange(t *testing.T) {
	b := seated(t)
	for _, col := range []int{-1, Columns, 100} {
		_, err := b.DropPiece(col)
		assert.ErrorIs(t, err, ErrInvalidMove)
	}
	assert.Equal(t, Grid{}, b.Grid())
}

func TestDropPieceUnseated(t *testing.T) {
	b := New()
	_, err := b.DropPiece(0)
	assert.ErrorIs(t, err, ErrNotSeated)
	assert.Equal(t, Grid{}, b.Grid())
}

func TestAtOutOfRange(t *testing.T) {
	b := seated(t)
	drop(t, b, 0)
	assert.Equal(t, Mark('X'), b.At(Rows-1, 0))
	assert.Equal(t, Empty, b.At(Rows, 0))
	assert.Equal(t, Empty, b.At(-1, 0))
	assert.Equal(t, Empty, b.At(0, -1))
	assert.Equal(t, Empty, b.At(0, Columns))
}

func TestGravityHoldsInRandomGames(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for game := 0; game < 50; game++ {
		b := seated(t)
		for !b.IsDraw() {
			moves := b.ValidMoves()
			col := moves[r.Intn(len(moves))]
			h := b.Height(col)
			row := drop(t, b, col)
			require.Equal(t, Rows-1-h, row)
			assertGravity(t, b)
		}
	}
}

func assertGravity(t *testing.T, b *Board) {
	t.Helper()
	for col := 0; col < Columns; col++ {
		seenEmpty := false
		for row := Rows - 1; row >= 0; row-- {
			if b.At(row, col) == Empty {
				seenEmpty = true
			} else if seenEmpty {
				t.Fatalf("floating piece at (%d,%d)", row, col)
			}
		}
	}
}

// drawGame fills the board without ever making four in a row: columns
// are filled in pairs so that each row reads XXOOXXO or its inverse.
var drawGame = []int{
	2, 0, 0, 2, 2, 0, 0, 2, 2, 0, 0, 2,
	3, 1, 1, 3, 3, 1, 1, 3, 3, 1, 1, 3,
	6, 4, 4, 5, 5, 6, 6, 4, 4, 5, 5, 6, 6, 4, 4, 5, 5, 6,
}

func TestIsDraw(t *testing.T) {
	b := seated(t)
	require.Len(t, drawGame, Rows*Columns)

	var last Cell
	for i, c := range drawGame {
		assert.False(t, b.IsDraw(), "move %d", i)
		row, err := b.DropPiece(c)
		require.NoError(t, err)
		require.False(t, b.IsWinningMove(row, c), "move %d wins", i)
		last = Cell{row, c}
		if i < len(drawGame)-1 {
			b.NextTurn()
		}
	}
	assert.Equal(t, Cell{0, 6}, last)
	assert.True(t, b.IsDraw())
	assert.False(t, b.IsWinningMove(last.Row, last.Col))
	assert.Empty(t, b.ValidMoves())
}

func TestIsDrawFalseWithOneFreeColumn(t *testing.T) {
	b := seated(t)
	for _, c := range drawGame[:len(drawGame)-1] {
		drop(t, b, c)
	}
	assert.False(t, b.IsDraw())
	assert.Equal(t, []int{6}, b.ValidMoves())
}

func TestReset(t *testing.T) {
	b := seated(t)
	drop(t, b, 0)
	drop(t, b, 1)
	drop(t, b, 1)
	require.Equal(t, Second, b.Turn())

	b.Reset()
	assert.Equal(t, Grid{}, b.Grid())
	assert.Equal(t, First, b.Turn())
	assert.True(t, b.Seated())
	assert.Equal(t, xPlayer, b.Player(First))
	assert.Equal(t, oPlayer, b.Player(Second))
}

func TestFromGrid(t *testing.T) {
	var g Grid
	g[Rows-1][0] = 'X'
	g[Rows-2][0] = 'O'
	b, err := FromGrid(g, xPlayer, oPlayer, Second)
	require.NoError(t, err)
	assert.Equal(t, Mark('O'), b.At(Rows-2, 0))
	assert.Equal(t, oPlayer, b.Current())

	g[Rows-1][1] = Empty
	g[Rows-2][1] = 'X'
	_, err = FromGrid(g, xPlayer, oPlayer, First)
	assert.Error(t, err)

	var h Grid
	h[Rows-1][3] = 'Z'
	_, err = FromGrid(h, xPlayer, oPlayer, First)
	assert.Error(t, err)
}
