package game

import "github.com/hailam/drwchess/internal/board"

// Feedback receives the outcome of every drop, rejected ones included.
// Sound and visual layers plug in here; the action name doubles as the cue key.
type Feedback interface {
	OnAction(action board.MoveAction, m board.Move)
}

// FeedbackFunc adapts a plain function to Feedback.
type FeedbackFunc func(action board.MoveAction, m board.Move)

// OnAction calls f.
func (f FeedbackFunc) OnAction(action board.MoveAction, m board.Move) {
	f(action, m)
}

type nopFeedback struct{}

func (nopFeedback) OnAction(board.MoveAction, board.Move) {}
