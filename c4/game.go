package c4

type Status int

const (
	InProgress Status = iota
	Win
	Draw
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Game drives a Board through one or more games between the same two
// players: it alternates turns, detects the end of a game, and refuses
// moves once the game is over until Reset.
type Game struct {
	board  *Board
	status Status
	winner Seat
	run    []Cell
	last   Cell
	moves  []int
}

func NewGame(first, second Player) (*Game, error) {
	b := New()
	if err := b.Seat(first, second); err != nil {
		return nil, err
	}
	return &Game{board: b, last: Cell{-1, -1}}, nil
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Over() bool {
	return g.status != InProgress
}

// Winner returns the winning seat. ok is false unless Status is Win.
func (g *Game) Winner() (s Seat, ok bool) {
	return g.winner, g.status == Win
}

// WinningRun is the run that ended the game, if it was won.
func (g *Game) WinningRun() []Cell {
	return g.run
}

// Last is the most recently placed cell, or {-1, -1} before the first
// move.
func (g *Game) Last() Cell {
	return g.last
}

// Moves returns a copy of the columns played since the last reset.
func (g *Game) Moves() []int {
	return append([]int(nil), g.moves...)
}

func (g *Game) ToMove() Player {
	return g.board.Current()
}

// Move plays column for the player to move.
func (g *Game) Move(column int) (Cell, error) {
	if g.Over() {
		return Cell{}, ErrGameOver
	}
	row, err := g.board.DropPiece(column)
	if err != nil {
		return Cell{}, err
	}
	cell := Cell{row, column}
	g.last = cell
	g.moves = append(g.moves, column)

	if run, ok := g.board.WinningRun(row, column); ok {
		g.status = Win
		g.winner = g.board.Turn()
		g.run = run
		return cell, nil
	}
	if g.board.IsDraw() {
		g.status = Draw
		return cell, nil
	}
	g.board.NextTurn()
	return cell, nil
}

// Reset starts a new game with the same players.
func (g *Game) Reset() {
	g.board.Reset()
	g.status = InProgress
	g.winner = First
	g.run = nil
	g.last = Cell{-1, -1}
	g.moves = nil
}
