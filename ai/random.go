package ai

import (
	"math/rand"

	"github.com/nelhage/connect4/c4"
	"golang.org/x/net/context"
)

// RandomAI plays a uniformly random legal column.
type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, b *c4.Board) int {
	moves := b.ValidMoves()
	if len(moves) == 0 {
		return -1
	}
	return moves[r.r.Intn(len(moves))]
}

// NewRandom returns a RandomAI. A RandomAI is not safe for concurrent
// use; give each goroutine its own.
func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
