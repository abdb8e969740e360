package ai

import (
	"github.com/nelhage/connect4/c4"
	"golang.org/x/net/context"
)

// Player chooses a column for the player to move on b. It returns -1
// when b has no legal move.
type Player interface {
	GetMove(ctx context.Context, b *c4.Board) int
}
