package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/sirupsen/logrus"
)

type Mode int

const (
	HumanVsHuman Mode = 1
	HumanVsAI    Mode = 2
	Exit         Mode = 3
)

func (m Mode) String() string {
	switch m {
	case HumanVsHuman:
		return "Human vs Human"
	case HumanVsAI:
		return "Human vs AI Bot"
	case Exit:
		return "Exit"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Options are the presentation settings shared by every session.
type Options struct {
	Style     Style
	Marks     [2]c4.Mark
	AIName    string
	AIDelay   time.Duration
	Seed      int64
	Clear     bool
	ShowMoves bool
}

func (o *Options) mark(s c4.Seat) c4.Mark {
	if o.Marks[s] != c4.Empty {
		return o.Marks[s]
	}
	if s == c4.First {
		return 'X'
	}
	return 'O'
}

func (o *Options) aiName() string {
	if o.AIName == "" {
		return "AI"
	}
	return o.AIName
}

// NewSession seats first and second on a fresh game. movers supplies the
// move source for each seat.
func NewSession(p *Prompter, o *Options, first, second string, movers [2]Player) (*Session, error) {
	g, err := c4.NewGame(
		c4.Player{Name: first, Mark: o.mark(c4.First)},
		c4.Player{Name: second, Mark: o.mark(c4.Second)},
	)
	if err != nil {
		return nil, fmt.Errorf("seating players: %w", err)
	}
	return &Session{
		CLI: &CLI{
			Game:      g,
			Players:   movers,
			Out:       p.Out,
			Style:     o.Style,
			Clear:     o.Clear,
			ShowMoves: o.ShowMoves,
		},
		Prompt: p,
	}, nil
}

// Menu is the interactive front page: pick a mode, play, come back.
type Menu struct {
	Prompt  *Prompter
	Options Options

	seeds *rand.Rand
}

// botSeed gives each AI session its own seed, derived from Options.Seed.
func (m *Menu) botSeed() int64 {
	if m.seeds == nil {
		m.seeds = rand.New(rand.NewSource(m.Options.Seed))
	}
	return m.seeds.Int63()
}

func (m *Menu) Run() error {
	out := m.Prompt.Out
	for {
		fmt.Fprintln(out, "Welcome to Connect Four Game!")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Please select game mode below:")
		fmt.Fprintln(out)
		for _, mode := range []Mode{HumanVsHuman, HumanVsAI, Exit} {
			fmt.Fprintf(out, "%d - %s\n", mode, mode)
		}
		fmt.Fprintln(out)

		mode, err := m.selectMode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if mode == Exit {
			fmt.Fprintln(out, "\nExit Game, Thank you for playing!")
			return nil
		}

		logrus.WithField("mode", mode.String()).Debug("starting session")
		fmt.Fprintf(out, "\nConnect 4 %s Battle Selected!\n\n", mode)
		s, err := m.setup(mode)
		if err == nil {
			err = s.Run()
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Returning to Game Menu.")
		fmt.Fprintln(out)
	}
}

func (m *Menu) selectMode() (Mode, error) {
	for {
		line, err := m.Prompt.Line("Key in Selection from 1-3, then press Enter: ")
		if err != nil {
			return 0, err
		}
		sel, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.Prompt.Out, "\nNot a numeric input. Please try again.")
			fmt.Fprintln(m.Prompt.Out)
			continue
		}
		switch mode := Mode(sel); mode {
		case HumanVsHuman, HumanVsAI, Exit:
			return mode, nil
		}
		fmt.Fprintln(m.Prompt.Out, "\nInvalid Selection. Please try again.")
		fmt.Fprintln(m.Prompt.Out)
	}
}

func (m *Menu) setup(mode Mode) (*Session, error) {
	p := m.Prompt
	human := NewCLIPlayer(p.Out, p.In)
	switch mode {
	case HumanVsHuman:
		first, err := p.Name("Enter name for Player 1: ", "Player 1")
		if err != nil {
			return nil, err
		}
		second, err := p.Name("Enter name for Player 2: ", "Player 2")
		if err != nil {
			return nil, err
		}
		if second == first {
			second += " (2)"
		}
		return NewSession(p, &m.Options, first, second, [2]Player{human, human})
	case HumanVsAI:
		first, err := p.Name("Enter name for Player: ", "Player")
		if err != nil {
			return nil, err
		}
		bot := NewAIPlayer(ai.NewRandom(m.botSeed()), p.Out, m.Options.AIDelay)
		return NewSession(p, &m.Options, first, m.Options.aiName(), [2]Player{human, bot})
	}
	return nil, fmt.Errorf("unknown mode: %v", mode)
}
