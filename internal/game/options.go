package game

import (
	"github.com/apex/log"

	"github.com/hailam/drwchess/internal/board"
)

// Option configures a Game.
type Option func(*Game)

// WithSide sets the side to move first, in this game and after each Reset.
func WithSide(c board.Color) Option {
	return func(g *Game) {
		g.side = c
		g.startSide = c
	}
}

// WithLogger sets the logger used for move diagnostics.
func WithLogger(l log.Interface) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithFeedback registers the hook notified after every drop.
func WithFeedback(f Feedback) Option {
	return func(g *Game) {
		if f != nil {
			g.feedback = f
		}
	}
}
