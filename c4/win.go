package c4

type axis struct {
	dr, dc int
}

// The four lines through a cell, each scanned in this direction.
var axes = [...]axis{
	{0, 1},  // horizontal, left to right
	{1, 0},  // vertical, top to bottom
	{1, 1},  // top-left to bottom-right
	{1, -1}, // top-right to bottom-left
}

// IsWinningMove reports whether the current player has ConnectN or more
// marks in a row through (row, col). It is meant to be called right after
// DropPiece, before the turn passes.
func (b *Board) IsWinningMove(row, col int) bool {
	_, ok := b.WinningRun(row, col)
	return ok
}

// WinningRun is IsWinningMove that also returns the ConnectN cells which
// completed the run.
func (b *Board) WinningRun(row, col int) ([]Cell, bool) {
	if !b.seated || !InBounds(row, col) {
		return nil, false
	}
	mark := b.Current().Mark
	for _, a := range axes {
		if run := b.scanWindow(row, col, a, mark); run != nil {
			return run, true
		}
	}
	return nil, false
}

// scanWindow walks the window of at most ConnectN-1 cells either side of
// (row, col) along a, clamped to the grid, counting consecutive marks.
// Only the cells of the first completed run are returned.
func (b *Board) scanWindow(row, col int, a axis, mark Mark) []Cell {
	back := 0
	for back < ConnectN-1 && InBounds(row-(back+1)*a.dr, col-(back+1)*a.dc) {
		back++
	}
	r, c := row-back*a.dr, col-back*a.dc
	count := 0
	for i := 0; i <= back+ConnectN-1 && InBounds(r, c); i++ {
		if b.cells[r][c] == mark {
			count++
			if count == ConnectN {
				run := make([]Cell, ConnectN)
				for j := range run {
					k := ConnectN - 1 - j
					run[j] = Cell{r - k*a.dr, c - k*a.dc}
				}
				return run
			}
		} else {
			count = 0
		}
		r += a.dr
		c += a.dc
	}
	return nil
}
