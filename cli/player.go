package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/notation"
)

var ErrNoMove = errors.New("no legal move")

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(g *c4.Game) (int, error) {
	for {
		fmt.Fprintf(c.out, "Player %s's turn.\nEnter a column number from 1-%d, then press Enter: ",
			g.ToMove().Name, c4.Columns)
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return -1, err
		}
		col, perr := notation.ParseColumn(line)
		if perr != nil {
			fmt.Fprintln(c.out, "Please enter valid input number.")
			if err != nil {
				return -1, err
			}
			continue
		}
		return col, nil
	}
}

// AIPlayer adapts an ai.Player to the terminal. Delay is a pause shown
// with a spinner before the move, so a human can follow the game.
type AIPlayer struct {
	AI    ai.Player
	Out   io.Writer
	Delay time.Duration
	Limit time.Duration
}

func NewAIPlayer(p ai.Player, out io.Writer, delay time.Duration) *AIPlayer {
	return &AIPlayer{AI: p, Out: out, Delay: delay, Limit: time.Minute}
}

func (a *AIPlayer) GetMove(g *c4.Game) (int, error) {
	name := g.ToMove().Name
	fmt.Fprintf(a.Out, "Player %s's turn.\n%s is choosing a move, please wait.\n", name, name)
	if a.Delay > 0 {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(a.Out))
		s.Start()
		time.Sleep(a.Delay)
		s.Stop()
	}

	ctx := context.Background()
	if a.Limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Limit)
		defer cancel()
	}
	col := a.AI.GetMove(ctx, g.Board())
	if col < 0 {
		return -1, ErrNoMove
	}
	return col, nil
}
