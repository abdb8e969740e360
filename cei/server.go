// Package cei implements the Connect-four Engine Interface, a UCI-like
// line protocol for driving an AI over a pipe.
//
// The controller sends "cei" and waits for "ceiok", then for each game
// "ceinewgame", and for each move a "position" command followed by "go".
// The engine answers "go" with "bestmove N" (1-based) or "bestmove none".
package cei

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/notation"
	"github.com/sirupsen/logrus"
)

// Engine positions always use these seats; clients translate their
// own marks.
var (
	First  = c4.Player{Name: "first", Mark: 'X'}
	Second = c4.Player{Name: "second", Mark: 'O'}
)

type Engine struct {
	// NewPlayer builds the AI for each new game.
	NewPlayer func() ai.Player

	in  *bufio.Reader
	out io.Writer

	player ai.Player
	board  *c4.Board
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	for {
		line, rerr := e.in.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return rerr
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			if rerr == io.EOF {
				return nil
			}
			continue
		}
		switch words[0] {
		case "cei":
			fmt.Fprintln(e.out, "id name connect4")
			fmt.Fprintln(e.out, "id author connect4")
			fmt.Fprintln(e.out, "ceiok")
		case "quit":
			return nil
		case "ceinewgame":
			e.player = nil
			e.board = nil
		case "position":
			b, err := parsePosition(words[1:])
			if err != nil {
				return fmt.Errorf("error parsing position: %w", err)
			}
			e.board = b
		case "go":
			if err := e.analyze(ctx, words[1:]); err != nil {
				logrus.WithError(err).Warn("cei: go")
				fmt.Fprintln(e.out, "bestmove none")
			}
		case "stop":
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", strings.TrimSpace(line))
		}
		if rerr == io.EOF {
			return nil
		}
	}
}

func parsePosition(words []string) (*c4.Board, error) {
	if len(words) == 0 {
		return nil, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		words = words[1:]
	case "grid":
		// grid G S
		if len(words) != 3 {
			return nil, errors.New("position grid: expected grid and seat")
		}
		return notation.ParsePosition(words[1]+" "+words[2], First, Second)
	default:
		return nil, fmt.Errorf("unknown initial position: %q", words[0])
	}
	g, err := c4.NewGame(First, Second)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return g.Board(), nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	ms, err := notation.ParseMoves(strings.Join(words[1:], " "))
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		if _, err := g.Move(m); err != nil {
			return nil, fmt.Errorf("move %s: %w", notation.FormatColumn(m), err)
		}
	}
	return g.Board(), nil
}

func (e *Engine) analyze(ctx context.Context, words []string) error {
	if e.board == nil {
		return errors.New("no position provided")
	}
	if e.player == nil {
		if e.NewPlayer != nil {
			e.player = e.NewPlayer()
		} else {
			e.player = ai.NewRandom(time.Now().UnixNano())
		}
	}
	if len(words) > 0 {
		if len(words) != 2 || words[0] != "movetime" {
			return errors.New("expected movetime N")
		}
		ms, err := strconv.ParseUint(words[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad ms: %v", words[1])
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(ms)*time.Millisecond)
		defer cancel()
	}

	start := time.Now()
	col := e.player.GetMove(ctx, e.board)
	fmt.Fprintf(e.out, "info time %d\n", time.Since(start)/time.Millisecond)
	if col < 0 {
		fmt.Fprintln(e.out, "bestmove none")
		return nil
	}
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatColumn(col))
	return nil
}
