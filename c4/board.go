package c4

import "errors"

const (
	Rows    = 6
	Columns = 7

	// ConnectN is the run length that wins the game.
	ConnectN = 4
)

// Mark is the symbol a seated player leaves in the cells they occupy.
type Mark rune

const Empty Mark = 0

func (m Mark) String() string {
	if m == Empty {
		return "."
	}
	return string(rune(m))
}

type Seat int

const (
	First  Seat = 0
	Second Seat = 1
)

func (s Seat) Other() Seat {
	return 1 - s
}

func (s Seat) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "invalid"
	}
}

type Player struct {
	Name string
	Mark Mark
}

func (p Player) String() string {
	return p.Name + " (" + p.Mark.String() + ")"
}

// Cell addresses a square of the grid. Row 0 is the top row.
type Cell struct {
	Row, Col int
}

type Grid [Rows][Columns]Mark

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrNotSeated   = errors.New("players are not seated")
	ErrSameMark    = errors.New("players must use different marks")
	ErrEmptyMark   = errors.New("player mark must not be empty")
	ErrGameOver    = errors.New("game is over")
)

type Board struct {
	cells   Grid
	turn    Seat
	players [2]Player
	seated  bool
}

func New() *Board {
	return &Board{}
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// At returns the mark at (row, col), or Empty for coordinates off the
// grid.
func (b *Board) At(row, col int) Mark {
	if !InBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

func (b *Board) set(row, col int, m Mark) {
	b.cells[row][col] = m
}

// Grid returns a copy of the cells for rendering.
func (b *Board) Grid() Grid {
	return b.cells
}

func (b *Board) Seat(first, second Player) error {
	if first.Mark == Empty || second.Mark == Empty {
		return ErrEmptyMark
	}
	if first.Mark == second.Mark {
		return ErrSameMark
	}
	b.players = [2]Player{first, second}
	b.seated = true
	return nil
}

func (b *Board) Seated() bool {
	return b.seated
}

func (b *Board) Player(s Seat) Player {
	return b.players[s&1]
}

func (b *Board) Turn() Seat {
	return b.turn
}

func (b *Board) SetTurn(s Seat) {
	b.turn = s & 1
}

func (b *Board) NextTurn() {
	b.turn = b.turn.Other()
}

// Current is the player whose turn it is.
func (b *Board) Current() Player {
	return b.players[b.turn]
}

// SeatOf returns the seat holding mark m.
func (b *Board) SeatOf(m Mark) (Seat, bool) {
	if !b.seated || m == Empty {
		return First, false
	}
	for i, p := range b.players {
		if p.Mark == m {
			return Seat(i), true
		}
	}
	return First, false
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}
	// row 0 is the top of the column
	return b.cells[0][column] == Empty
}

// DropPiece places the current player's mark in the lowest empty row of
// column and returns that row.
func (b *Board) DropPiece(column int) (int, error) {
	if !b.seated {
		return -1, ErrNotSeated
	}
	if !b.IsValidMove(column) {
		return -1, ErrInvalidMove
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.set(row, column, b.Current().Mark)
			return row, nil
		}
	}
	return -1, ErrInvalidMove
}

// Height returns the number of pieces in column.
func (b *Board) Height(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}
	h := 0
	for row := Rows - 1; row >= 0 && b.cells[row][column] != Empty; row-- {
		h++
	}
	return h
}

// ValidMoves lists the columns that still accept a piece, left to right.
func (b *Board) ValidMoves() []int {
	var out []int
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			out = append(out, col)
		}
	}
	return out
}

// IsDraw reports a full board. Callers check for a win first.
func (b *Board) IsDraw() bool {
	for col := 0; col < Columns; col++ {
		if b.cells[0][col] == Empty {
			return false
		}
	}
	return true
}

// Reset empties the grid and gives the move back to First. Seated
// players are kept.
func (b *Board) Reset() {
	b.cells = Grid{}
	b.turn = First
}

// FromGrid builds a seated board with the given cells. It rejects grids
// with marks that belong to neither player or with floating pieces.
func FromGrid(g Grid, first, second Player, turn Seat) (*Board, error) {
	b := New()
	if err := b.Seat(first, second); err != nil {
		return nil, err
	}
	for col := 0; col < Columns; col++ {
		seenEmpty := false
		for row := Rows - 1; row >= 0; row-- {
			m := g[row][col]
			switch {
			case m == Empty:
				seenEmpty = true
			case seenEmpty:
				return nil, errors.New("piece above an empty cell")
			case m != first.Mark && m != second.Mark:
				return nil, errors.New("unknown mark")
			}
		}
	}
	b.cells = g
	b.SetTurn(turn)
	return b, nil
}
