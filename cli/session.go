package cli

import (
	"fmt"

	"github.com/nelhage/connect4/c4"
	"github.com/sirupsen/logrus"
)

// Score tallies the results of a session.
type Score struct {
	Wins  [2]int
	Draws int
}

func (s *Score) Add(g *c4.Game) {
	switch g.Status() {
	case c4.Win:
		seat, _ := g.Winner()
		s.Wins[seat]++
	case c4.Draw:
		s.Draws++
	}
}

func (s Score) Games() int {
	return s.Wins[0] + s.Wins[1] + s.Draws
}

// Session plays games between the same two players until they decline
// to play again.
type Session struct {
	CLI    *CLI
	Prompt *Prompter
	Once   bool

	score Score
}

func (s *Session) Score() Score {
	return s.score
}

func (s *Session) Run() error {
	for {
		if _, err := s.CLI.Play(); err != nil {
			return err
		}
		s.score.Add(s.CLI.Game)
		s.printScore()
		if s.Once {
			return nil
		}
		again, err := s.Prompt.Confirm("\nDo you want to play again? (Y/N): ")
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(s.CLI.Out, "\nThank you for playing!")
			return nil
		}
		logrus.WithField("games", s.score.Games()).Debug("new game")
		s.CLI.Game.Reset()
	}
}

func (s *Session) printScore() {
	b := s.CLI.Game.Board()
	fmt.Fprintf(s.CLI.Out, "Score: %s %d, %s %d, draws %d\n",
		b.Player(c4.First).Name, s.score.Wins[c4.First],
		b.Player(c4.Second).Name, s.score.Wins[c4.Second],
		s.score.Draws)
}
