package menu

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/subcommands"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/cli"
	"github.com/nelhage/connect4/cmd/internal/config"
	"github.com/sirupsen/logrus"
)

type Command struct {
	unicode bool
	color   bool
	seed    int64
	clear   bool
	moves   bool
}

func (*Command) Name() string     { return "menu" }
func (*Command) Synopsis() string { return "Pick a game mode from the interactive menu" }
func (*Command) Usage() string {
	return heredoc.Doc(`
		menu [flags]

		Show the game menu: Human vs Human, Human vs AI Bot, or Exit.
		This is what connect4 runs when no command is given.
	`)
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.color, "color", true, "color the players' pieces")
	flags.Int64Var(&c.seed, "seed", 0, "random seed for the AI (0 picks one)")
	flags.BoolVar(&c.clear, "clear", true, "clear the screen before each board")
	flags.BoolVar(&c.moves, "moves", false, "print the move list after each game")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.Run(config.FromArgs(args), config.Explicit(flag))
}

// Run shows the menu on stdin/stdout. Flags not named in set come from
// cfg.
func (c *Command) Run(cfg *config.Config, set map[string]bool) subcommands.ExitStatus {
	m := &cli.Menu{
		Prompt:  cli.NewPrompter(os.Stdin, os.Stdout),
		Options: c.options(cfg, set),
	}
	if err := m.Run(); err != nil {
		logrus.WithError(err).Error("menu")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) options(cfg *config.Config, set map[string]bool) cli.Options {
	unicode, color, clear := c.unicode, c.color, c.clear
	if !set["unicode"] {
		unicode = cfg.Unicode
	}
	if !set["color"] {
		color = !cfg.NoColor
	}
	if !set["clear"] {
		clear = true
	}
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &cli.DefaultGlyphs
	if unicode {
		g = &cli.UnicodeGlyphs
	}
	runes := cfg.Marks.Runes()
	return cli.Options{
		Style:     cli.Style{Glyphs: g, Color: color},
		Marks:     [2]c4.Mark{c4.Mark(runes[0]), c4.Mark(runes[1])},
		AIName:    cfg.AIName,
		AIDelay:   cfg.AIDelay,
		Seed:      seed,
		Clear:     clear,
		ShowMoves: c.moves,
	}
}
