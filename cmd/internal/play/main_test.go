package play

import (
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/nelhage/connect4/cli"
	"github.com/nelhage/connect4/cmd/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Command, *flag.FlagSet) {
	c := &Command{}
	f := flag.NewFlagSet("play", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c, f
}

func TestParsePlayer(t *testing.T) {
	c, _ := parse(t)
	p := cli.NewPrompter(strings.NewReader(""), io.Discard)

	h, err := c.parsePlayer(p, "human")
	require.NoError(t, err)
	assert.NotNil(t, h)

	r, err := c.parsePlayer(p, "rand:42")
	require.NoError(t, err)
	assert.IsType(t, &cli.AIPlayer{}, r)

	_, err = c.parsePlayer(p, "rand")
	assert.NoError(t, err)
	_, err = c.parsePlayer(p, "rand:x")
	assert.Error(t, err)
	_, err = c.parsePlayer(p, "minimax")
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Unicode = true
	cfg.NoColor = true
	cfg.AIDelay = time.Second

	c, f := parse(t, "-delay", "0s")
	c.applyConfig(cfg, config.Explicit(f))
	assert.True(t, c.unicode)
	assert.False(t, c.color)
	assert.Equal(t, time.Duration(0), c.delay)

	c, f = parse(t, "-unicode=false", "-color")
	c.applyConfig(cfg, config.Explicit(f))
	assert.False(t, c.unicode)
	assert.True(t, c.color)
	assert.Equal(t, time.Second, c.delay)
}

func TestPlayerName(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "Ann", playerName(" Ann ", "human", cfg, "Player 1"))
	assert.Equal(t, "Player 1", playerName("", "human", cfg, "Player 1"))
	assert.Equal(t, "AI", playerName("", "rand:3", cfg, "Player 2"))
}
