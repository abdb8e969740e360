package play

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/subcommands"
	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/cli"
	"github.com/nelhage/connect4/cmd/internal/config"
	"github.com/sirupsen/logrus"
)

type Command struct {
	p1    string
	p2    string
	name1 string
	name2 string

	unicode bool
	color   bool
	delay   time.Duration
	once    bool
	moves   bool
	clear   bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Connect Four from the command line" }
func (*Command) Usage() string {
	return heredoc.Doc(`
		play [flags]

		Play Connect Four on the command-line, against a human or the AI.
		Players are "human", "rand" or "rand:SEED".
	`)
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "human", "first player")
	flags.StringVar(&c.p2, "p2", "human", "second player")
	flags.StringVar(&c.name1, "name1", "", "first player's name")
	flags.StringVar(&c.name2, "name2", "", "second player's name")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.color, "color", true, "color the players' pieces")
	flags.DurationVar(&c.delay, "delay", 2*time.Second, "pause before each AI move")
	flags.BoolVar(&c.once, "once", false, "play a single game and exit")
	flags.BoolVar(&c.moves, "moves", false, "print the move list after each game")
	flags.BoolVar(&c.clear, "clear", false, "clear the screen before each board")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := config.FromArgs(args)
	c.applyConfig(cfg, config.Explicit(flag))

	p := cli.NewPrompter(os.Stdin, os.Stdout)
	first, err := c.parsePlayer(p, c.p1)
	if err != nil {
		logrus.WithError(err).Error("-p1")
		return subcommands.ExitUsageError
	}
	second, err := c.parsePlayer(p, c.p2)
	if err != nil {
		logrus.WithError(err).Error("-p2")
		return subcommands.ExitUsageError
	}
	name1 := playerName(c.name1, c.p1, cfg, "Player 1")
	name2 := playerName(c.name2, c.p2, cfg, "Player 2")
	if name1 == name2 {
		name2 += " (2)"
	}

	runes := cfg.Marks.Runes()
	opts := &cli.Options{
		Style: cli.Style{
			Glyphs: glyphs(c.unicode),
			Color:  c.color,
		},
		Marks:     [2]c4.Mark{c4.Mark(runes[0]), c4.Mark(runes[1])},
		Clear:     c.clear,
		ShowMoves: c.moves,
	}
	s, err := cli.NewSession(p, opts, name1, name2, [2]cli.Player{first, second})
	if err != nil {
		logrus.WithError(err).Error("starting game")
		return subcommands.ExitFailure
	}
	s.Once = c.once

	err = s.Run()
	score := s.Score()
	logrus.WithFields(logrus.Fields{
		"games": score.Games(),
		"p1":    score.Wins[c4.First],
		"p2":    score.Wins[c4.Second],
		"draws": score.Draws,
	}).Debug("session over")
	if err != nil && !errors.Is(err, io.EOF) {
		logrus.WithError(err).Error("play")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) applyConfig(cfg *config.Config, set map[string]bool) {
	if !set["unicode"] {
		c.unicode = cfg.Unicode
	}
	if !set["color"] {
		c.color = !cfg.NoColor
	}
	if !set["delay"] {
		c.delay = cfg.AIDelay
	}
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func playerName(name, kind string, cfg *config.Config, def string) string {
	if n := cli.NormalizeName(name); n != "" {
		return n
	}
	if kind != "human" {
		return cfg.AIName
	}
	return def
}

func (c *Command) parsePlayer(p *cli.Prompter, s string) (cli.Player, error) {
	if s == "human" {
		return cli.NewCLIPlayer(p.Out, p.In), nil
	}
	if s == "rand" {
		return cli.NewAIPlayer(ai.NewRandom(0), p.Out, c.delay), nil
	}
	if strings.HasPrefix(s, "rand:") {
		seed, err := strconv.ParseInt(s[len("rand:"):], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seed: %w", err)
		}
		return cli.NewAIPlayer(ai.NewRandom(seed), p.Out, c.delay), nil
	}
	return nil, fmt.Errorf("unparseable player: %s", s)
}
