package symmetry

import (
	"context"
	"math/rand"
	"testing"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/c4test"
	"github.com/nelhage/connect4/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", ""},
		{"1", "1"},
		{"7", "1"},
		{"4", "4"},
		{"7 1", "1 7"},
		{"4 5", "4 3"},
		{"4 3 5", "4 3 5"},
		{"4 5 3", "4 3 5"},
		{"4 4 5", "4 4 3"},
		{"6 2 5", "2 6 3"},
		{"1 7 6", "1 7 6"},
	}
	for _, tc := range cases {
		got, err := Canonical(c4test.Moves(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, notation.FormatMoves(got), "canonical(%q)", tc.in)
	}
}

func TestCanonicalIllegal(t *testing.T) {
	_, err := Canonical(c4test.Moves("1 1 1 1 1 1 1"))
	assert.ErrorIs(t, err, c4.ErrInvalidMove)
}

func randomGame(r *rand.Rand) []int {
	g := c4test.Game("")
	p := ai.NewRandom(r.Int63())
	for !g.Over() {
		g.Move(p.GetMove(context.Background(), g.Board()))
	}
	return append([]int(nil), g.Moves()...)
}

func TestCanonicalMirrorInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		ms := randomGame(r)
		a, err := Canonical(ms)
		require.NoError(t, err)
		b, err := Canonical(Transform(Mirror, ms))
		require.NoError(t, err)
		assert.Equal(t, a, b, "game %s", notation.FormatMoves(ms))

		again, err := Canonical(a)
		require.NoError(t, err)
		assert.Equal(t, a, again)
	}
}

func TestSymmetric(t *testing.T) {
	assert.True(t, Symmetric(c4.Grid{}))
	assert.True(t, Symmetric(c4test.Game("4 4").Board().Grid()))
	assert.False(t, Symmetric(c4test.Game("1").Board().Grid()))
	assert.False(t, Symmetric(c4test.Game("1 7").Board().Grid()))

	g := c4test.Game("1 2").Board().Grid()
	assert.Equal(t, c4test.Game("7 6").Board().Grid(), TransformGrid(Mirror, g))
}
