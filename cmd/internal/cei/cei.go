package cei

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/subcommands"
	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/cei"
	"github.com/sirupsen/logrus"
)

type Command struct {
	seed int64
}

func (*Command) Name() string     { return "cei" }
func (*Command) Synopsis() string { return "Run the AI as a CEI engine on stdin/stdout" }
func (*Command) Usage() string {
	return heredoc.Doc(`
		cei [flags]

		Launch the engine in CEI mode, a UCI-like protocol suitable for
		being driven by an external controller such as selfplay.
	`)
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.seed, "seed", 0, "random seed (0 picks one)")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := cei.NewEngine(os.Stdin, os.Stdout)
	engine.NewPlayer = func() ai.Player {
		seed++
		return ai.NewRandom(seed)
	}
	if err := engine.Run(ctx); err != nil {
		logrus.WithError(err).Error("cei")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
