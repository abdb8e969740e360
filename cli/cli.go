package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/notation"
	"github.com/sirupsen/logrus"
)

// Player supplies the column to play for whoever is to move in g.
type Player interface {
	GetMove(g *c4.Game) (int, error)
}

const clearScreen = "\x1b[H\x1b[2J"

// CLI plays one game at a time on the terminal, asking each seat's
// Player for moves in turn.
type CLI struct {
	Game    *c4.Game
	Players [2]Player
	Out     io.Writer
	Style   Style

	// Clear wipes the terminal before each board is drawn.
	Clear bool
	// ShowMoves prints the move list once the game is over.
	ShowMoves bool
}

// Play runs the current game to the end and returns how it ended. An
// error from a Player (typically io.EOF) abandons the game.
func (c *CLI) Play() (c4.Status, error) {
	for {
		c.render()
		if c.Game.Over() {
			c.report()
			return c.Game.Status(), nil
		}
		mover := c.Game.ToMove()
		col, err := c.Players[c.Game.Board().Turn()].GetMove(c.Game)
		if err != nil {
			return c.Game.Status(), err
		}
		cell, err := c.Game.Move(col)
		if errors.Is(err, c4.ErrInvalidMove) {
			logrus.WithFields(logrus.Fields{
				"player": mover.Name,
				"column": col + 1,
			}).Debug("rejected move")
			fmt.Fprintln(c.Out, "Invalid move. Try again.")
			continue
		}
		if err != nil {
			return c.Game.Status(), fmt.Errorf("move %s: %w", notation.FormatColumn(col), err)
		}
		logrus.WithFields(logrus.Fields{
			"player": mover.Name,
			"row":    cell.Row,
			"column": cell.Col + 1,
		}).Debug("move")
	}
}

func (c *CLI) render() {
	if c.Clear {
		fmt.Fprint(c.Out, clearScreen)
	}
	RenderBoard(c.Out, &c.Style, c.Game)
}

func (c *CLI) report() {
	switch c.Game.Status() {
	case c4.Win:
		s, _ := c.Game.Winner()
		p := c.Game.Board().Player(s)
		fmt.Fprintf(c.Out, "It's a connect four! Player %s wins!\n", p.Name)
		logrus.WithFields(logrus.Fields{
			"winner": p.Name,
			"moves":  len(c.Game.Moves()),
		}).Debug("game over")
	case c4.Draw:
		fmt.Fprintln(c.Out, "It's a draw!")
		logrus.WithField("moves", len(c.Game.Moves())).Debug("game over")
	}
	if c.ShowMoves {
		fmt.Fprintf(c.Out, "Moves: %s\n", notation.FormatMoves(c.Game.Moves()))
	}
}
