package selfplay

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type Command struct {
	p1      string
	p2      string
	limit   time.Duration
	seed    int64
	games   int
	threads int
	swap    bool
	verbose bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return heredoc.Doc(`
		selfplay [flags]

		Play two AIs against each other and print how often each seat and
		each player won. A player is the built-in random AI unless -p1 or
		-p2 names a CEI engine command, such as "connect4 cei".
	`)
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "", "player1 CEI driver")
	flags.StringVar(&c.p2, "p2", "", "player2 CEI driver")
	flags.DurationVar(&c.limit, "limit", 0, "amount of time to search each move")
	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 100, "number of games to play")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.BoolVar(&c.swap, "swap", true, "swap seats each game")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	if c.verbose && !logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.SetLevel(logrus.DebugLevel)
	}

	start := time.Now()
	st, err := Simulate(ctx, &Config{
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Swap:    c.swap,
		Limit:   c.limit,
		P1:      strings.Fields(c.p1),
		P2:      strings.Fields(c.p2),
	})
	if err != nil {
		logrus.WithError(err).Error("selfplay")
		return subcommands.ExitFailure
	}

	logrus.WithFields(logrus.Fields{
		"games":    st.Count(),
		"seed":     c.seed,
		"draws":    st.Draws,
		"distinct": st.Distinct,
		"first":    st.First,
		"second":   st.Second,
		"elapsed":  time.Since(start),
	}).Info("done")

	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tfirst\tsecond\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].FirstWins, st.Players[0].SecondWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].FirstWins, st.Players[1].SecondWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n", st.First, st.Second, st.First+st.Second)
	fmt.Fprintf(tw, "draws\t\t\t%d\n", st.Draws)
	tw.Flush()

	return subcommands.ExitSuccess
}
