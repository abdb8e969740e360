package cei

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/notation"
	"github.com/sirupsen/logrus"
)

var ErrDeadPlayer = errors.New("player belongs to a finished game")

type Client struct {
	cmd *exec.Cmd

	closers []io.Closer

	read  *bufio.Reader
	write io.Writer

	gameid int
}

// NewClient starts cmdline and performs the handshake.
func NewClient(cmdline []string) (*Client, error) {
	if len(cmdline) == 0 {
		return nil, errors.New("empty engine command")
	}
	path, err := exec.LookPath(cmdline[0])
	if err != nil {
		return nil, err
	}
	cmd := &exec.Cmd{Path: path, Args: cmdline}
	cl := &Client{cmd: cmd}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, err
	}
	cl.closers = []io.Closer{stdin, stdout}
	cl.write = stdin
	cl.read = bufio.NewReader(stdout)

	if err := cmd.Start(); err != nil {
		cl.Close()
		return nil, err
	}
	if err := cl.handshake(); err != nil {
		cl.Close()
		return nil, err
	}
	return cl, nil
}

// Connect talks to an engine that is already running on the other end
// of r and w. w is closed by Close if it is an io.Closer.
func Connect(r io.Reader, w io.Writer) (*Client, error) {
	cl := &Client{
		read:  bufio.NewReader(r),
		write: w,
	}
	if c, ok := w.(io.Closer); ok {
		cl.closers = append(cl.closers, c)
	}
	if err := cl.handshake(); err != nil {
		cl.Close()
		return nil, err
	}
	return cl, nil
}

func (c *Client) handshake() error {
	_, err := c.sendCommand("cei", "ceiok")
	return err
}

func (c *Client) NewGame() (ai.Player, error) {
	c.gameid++
	if _, err := c.sendCommand("ceinewgame", ""); err != nil {
		return nil, err
	}
	return &player{
		client: c,
		gameid: c.gameid,
	}, nil
}

func (c *Client) Close() {
	if c.write != nil {
		c.sendCommand("quit", "")
	}
	for _, cl := range c.closers {
		cl.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Wait()
	}
}

func (c *Client) sendCommand(cmd string, expect string) ([]string, error) {
	if _, err := fmt.Fprintln(c.write, cmd); err != nil {
		return nil, err
	}
	if expect == "" {
		return nil, nil
	}

	for {
		line, err := c.read.ReadString('\n')
		if err != nil {
			return nil, err
		}
		words := strings.Fields(line)
		if len(words) > 0 && words[0] == expect {
			return words, nil
		}
	}
}

type player struct {
	client *Client
	gameid int
}

func (p *player) GetMove(ctx context.Context, b *c4.Board) int {
	col, err := p.getMove(ctx, b)
	if err != nil {
		logrus.WithError(err).Warn("cei: get move")
		return -1
	}
	return col
}

func (p *player) getMove(ctx context.Context, b *c4.Board) (int, error) {
	if p.gameid != p.client.gameid {
		return -1, ErrDeadPlayer
	}
	if _, err := p.client.sendCommand("position grid "+formatPosition(b), ""); err != nil {
		return -1, fmt.Errorf("send position: %w", err)
	}
	goCmd := "go"
	if deadline, ok := ctx.Deadline(); ok {
		ms := time.Until(deadline) / time.Millisecond
		if ms < 1 {
			ms = 1
		}
		goCmd = fmt.Sprintf("%s movetime %d", goCmd, ms)
	}
	bestmove, err := p.client.sendCommand(goCmd, "bestmove")
	if err != nil {
		return -1, err
	}
	if len(bestmove) != 2 {
		return -1, fmt.Errorf("bad bestmove: %q", strings.Join(bestmove, " "))
	}
	if bestmove[1] == "none" {
		return -1, nil
	}
	return notation.ParseColumn(bestmove[1])
}

// formatPosition writes b with its marks replaced by the engine's.
func formatPosition(b *c4.Board) string {
	var g c4.Grid
	for r := 0; r < c4.Rows; r++ {
		for col := 0; col < c4.Columns; col++ {
			seat, ok := b.SeatOf(b.At(r, col))
			if !ok {
				continue
			}
			if seat == c4.First {
				g[r][col] = First.Mark
			} else {
				g[r][col] = Second.Mark
			}
		}
	}
	return fmt.Sprintf("%s %d", notation.FormatGrid(g), int(b.Turn())+1)
}
