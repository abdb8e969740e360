package selfplay

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/cei"
	"github.com/nelhage/connect4/notation"
	"github.com/nelhage/connect4/symmetry"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Games   int
	Threads int
	Seed    int64
	Swap    bool
	Limit   time.Duration

	// P1 and P2 are CEI engine command lines. An empty one plays the
	// built-in random AI.
	P1, P2 []string
}

type Stats struct {
	Players [2]struct {
		Wins       int
		FirstWins  int
		SecondWins int
	}
	First, Second int
	Draws         int

	// Distinct counts games that differ by more than a mirror image.
	Distinct int

	Games []Result
}

func (s *Stats) Count() int {
	return s.First + s.Second + s.Draws
}

type gameSpec struct {
	i      int
	seed   int64
	p1seat c4.Seat
}

type Result struct {
	spec   gameSpec
	Moves  []int
	Status c4.Status
	Winner c4.Seat
}

func (s *Stats) add(r *Result) {
	if r.Status != c4.Win {
		s.Draws++
		return
	}
	pst := &s.Players[0]
	if r.Winner != r.spec.p1seat {
		pst = &s.Players[1]
	}
	pst.Wins++
	if r.Winner == c4.First {
		s.First++
		pst.FirstWins++
	} else {
		s.Second++
		pst.SecondWins++
	}
}

// Simulate plays c.Games games between two random players on c.Threads
// workers. Results are in game order regardless of which worker played
// them.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	threads := c.Threads
	if threads < 1 {
		threads = 1
	}
	grp, ctx := errgroup.WithContext(ctx)
	specs := make(chan gameSpec)
	results := make(chan Result)

	grp.Go(func() error {
		defer close(specs)
		r := rand.New(rand.NewSource(c.Seed))
		for g := 0; g < c.Games; g++ {
			spec := gameSpec{i: g, seed: r.Int63(), p1seat: c4.First}
			if c.Swap && g%2 == 1 {
				spec.p1seat = c4.Second
			}
			select {
			case specs <- spec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	workers, wctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		workers.Go(func() error {
			return worker(wctx, c, specs, results)
		})
	}
	grp.Go(func() error {
		defer close(results)
		return workers.Wait()
	})

	var st Stats
	for r := range results {
		logrus.WithFields(logrus.Fields{
			"game":   r.spec.i,
			"plies":  len(r.Moves),
			"p1":     r.spec.p1seat,
			"status": r.Status,
		}).Debug("game over")
		st.add(&r)
		st.Games = append(st.Games, r)
	}
	if err := grp.Wait(); err != nil {
		return st, err
	}
	sort.Slice(st.Games, func(i, j int) bool {
		return st.Games[i].spec.i < st.Games[j].spec.i
	})
	seen := make(map[string]struct{})
	for _, r := range st.Games {
		ms, err := symmetry.Canonical(r.Moves)
		if err != nil {
			return st, err
		}
		seen[notation.FormatMoves(ms)] = struct{}{}
	}
	st.Distinct = len(seen)
	return st, nil
}

func worker(ctx context.Context, c *Config, games <-chan gameSpec, out chan<- Result) error {
	var clients [2]*cei.Client
	for i, cmdline := range [2][]string{c.P1, c.P2} {
		if len(cmdline) == 0 {
			continue
		}
		cl, err := cei.NewClient(cmdline)
		if err != nil {
			return fmt.Errorf("starting client%v: %w", cmdline, err)
		}
		defer cl.Close()
		clients[i] = cl
	}

	for g := range games {
		r := rand.New(rand.NewSource(g.seed))
		seeds := [2]int64{r.Int63(), r.Int63()}
		var players [2]ai.Player
		for i := range players {
			if clients[i] == nil {
				players[i] = ai.NewRandom(seeds[i])
				continue
			}
			p, err := clients[i].NewGame()
			if err != nil {
				return fmt.Errorf("starting game %d: %w", g.i, err)
			}
			players[i] = p
		}
		var bySeat [2]ai.Player
		bySeat[g.p1seat] = players[0]
		bySeat[g.p1seat.Other()] = players[1]

		res, err := playGame(ctx, c.Limit, g, bySeat)
		if err != nil {
			return fmt.Errorf("game %d: %w", g.i, err)
		}
		select {
		case out <- res:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func playGame(ctx context.Context, limit time.Duration, spec gameSpec, players [2]ai.Player) (Result, error) {
	game, err := c4.NewGame(
		c4.Player{Name: "first", Mark: 'X'},
		c4.Player{Name: "second", Mark: 'O'},
	)
	if err != nil {
		return Result{}, err
	}
	for !game.Over() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		b := game.Board()
		col := getMove(ctx, limit, players[b.Turn()], b)
		if _, err := game.Move(col); err != nil {
			return Result{}, fmt.Errorf("illegal move %d: %w", col, err)
		}
	}
	res := Result{
		spec:   spec,
		Moves:  game.Moves(),
		Status: game.Status(),
	}
	res.Winner, _ = game.Winner()
	return res, nil
}

func getMove(ctx context.Context, limit time.Duration, p ai.Player, b *c4.Board) int {
	if limit != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}
	return p.GetMove(ctx, b)
}
