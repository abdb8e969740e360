package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const maxNameLen = 20

type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Prompter{In: br, Out: out}
}

// Line prints prompt and reads one line without its terminator. A last
// line without a newline is returned without error.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.Out, prompt)
	line, err := p.In.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Name reads a player name, falling back to def when the answer is
// blank.
func (p *Prompter) Name(prompt, def string) (string, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return "", err
	}
	if name := NormalizeName(line); name != "" {
		return name, nil
	}
	return def, nil
}

// Confirm asks a yes/no question; only "y" or "Y" counts as yes.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// NormalizeName composes the name to NFC, folds full-width letters to
// their narrow forms, collapses runs of white space and caps the length.
func NormalizeName(s string) string {
	s = width.Fold.String(norm.NFC.String(s))
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > maxNameLen {
		s = strings.TrimSpace(string(r[:maxNameLen]))
	}
	return s
}
