// Package game owns a board together with its legality table and drives the
// pick and drop interaction of a two-player game.
package game

import (
	"fmt"

	"github.com/apex/log"

	"github.com/hailam/drwchess/internal/board"
)

// Game bundles the board, the legality table for the side to move and the
// piece currently held. The board is only mutated by Drop and Reset, and each
// mutation regenerates the table.
type Game struct {
	board board.Board
	table board.LegalityTable
	side  board.Color

	// Side to move at the start of every game, kept for Reset
	startSide board.Color

	// Held piece, lifted off the board between Pick and Drop
	held       board.Piece
	heldSquare board.Square
	holding    bool

	lastMove board.Move
	hasLast  bool

	log      log.Interface
	feedback Feedback
}

// New creates a game on a copy of b with White to move.
func New(b board.Board, opts ...Option) *Game {
	g := &Game{
		board:      b,
		side:       board.White,
		startSide:  board.White,
		heldSquare: board.NoSquare,
		log:        log.Log,
		feedback:   nopFeedback{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.regenerate()
	return g
}

// NewFromPlacement creates a game from a FEN piece placement field.
// An empty placement starts from the standard position.
func NewFromPlacement(placement string, opts ...Option) (*Game, error) {
	b, err := parse(placement)
	if err != nil {
		return nil, err
	}
	return New(*b, opts...), nil
}

func parse(placement string) (*board.Board, error) {
	if placement == "" {
		return board.NewStartBoard(), nil
	}
	b, err := board.ParsePlacement(placement)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return b, nil
}

// regenerate rebuilds the legality table for the side to move.
func (g *Game) regenerate() {
	g.table = board.Generate(&g.board, g.side)
	g.log.WithFields(log.Fields{
		"side":  g.side,
		"moves": g.table.Len(),
	}).Debug("legality table generated")
}

// Pick lifts the piece on sq off the board. Only pieces of the side to move
// can be picked, and only one at a time.
func (g *Game) Pick(sq board.Square) error {
	if g.holding {
		return fmt.Errorf("pick %v: %w (%v from %v)", sq, ErrAlreadyHolding, g.held, g.heldSquare)
	}
	if !sq.IsValid() {
		return fmt.Errorf("pick %d: %w", sq, ErrSquareOutOfRange)
	}

	piece := g.board.GetSquare(sq)
	switch {
	case piece.IsEmpty():
		return fmt.Errorf("pick %v: %w", sq, ErrNothingThere)
	case !piece.IsColor(g.side):
		return fmt.Errorf("pick %v: %w", sq, ErrNotYourPiece)
	}

	g.board.SetSquare(sq, board.NoPiece)
	g.held = piece
	g.heldSquare = sq
	g.holding = true

	g.log.WithFields(log.Fields{
		"square": sq,
		"piece":  piece,
		"moves":  len(g.table[sq]),
	}).Debug("picked")
	return nil
}

// Drop releases the held piece on sq.
//
// An incorrect destination puts the piece back on its origin and keeps the
// side to move. Any other outcome hands the move to the other side, records
// the last move and regenerates the table. Feedback is notified either way.
func (g *Game) Drop(sq board.Square) (board.MoveAction, error) {
	if !g.holding {
		return board.ActionIncorrect, fmt.Errorf("drop %v: %w", sq, ErrNotHolding)
	}

	m := board.NewMove(g.heldSquare, sq)
	action, err := board.Apply(m.Start, m.End, &g.board, g.held, g.table)
	if err != nil {
		g.log.WithError(err).WithField("move", m).Error("apply failed")
	}

	if action == board.ActionIncorrect {
		g.board.SetSquare(m.Start, g.held)
		g.release()
		g.log.WithFields(log.Fields{"move": m, "side": g.side}).Info("move rejected")
		g.feedback.OnAction(action, m)
		return action, err
	}

	g.side = g.side.Other()
	g.lastMove = m
	g.hasLast = true
	g.regenerate()
	g.release()

	g.log.WithFields(log.Fields{
		"move":   m,
		"action": action,
		"next":   g.side,
	}).Info("move played")
	g.feedback.OnAction(action, m)
	return action, nil
}

// Play picks the piece on start and drops it on end.
func (g *Game) Play(start, end board.Square) (board.MoveAction, error) {
	if err := g.Pick(start); err != nil {
		return board.ActionIncorrect, err
	}
	return g.Drop(end)
}

// Cancel puts a held piece back on its origin. It is a no-op when nothing is
// held.
func (g *Game) Cancel() {
	if !g.holding {
		return
	}
	g.board.SetSquare(g.heldSquare, g.held)
	g.release()
}

func (g *Game) release() {
	g.held = board.NoPiece
	g.heldSquare = board.NoSquare
	g.holding = false
}

// Reset starts over from placement with the starting side to move, White
// unless set by WithSide. An empty placement means the standard start. On error the current game is kept.
func (g *Game) Reset(placement string) error {
	b, err := parse(placement)
	if err != nil {
		return err
	}

	g.board = *b
	g.side = g.startSide
	g.lastMove = board.Move{}
	g.hasLast = false
	g.release()
	g.regenerate()

	g.log.WithField("placement", g.board.Placement()).Info("game reset")
	return nil
}

// Board returns a copy of the board. A held piece is not on it.
func (g *Game) Board() board.Board {
	return g.board
}

// Legal returns a copy of the legal moves from sq.
func (g *Game) Legal(sq board.Square) []board.Move {
	return append([]board.Move(nil), g.table[sq]...)
}

// Table returns a copy of the legality table for the side to move.
func (g *Game) Table() board.LegalityTable {
	return g.table.Clone()
}

// SideToMove returns the color whose turn it is.
func (g *Game) SideToMove() board.Color {
	return g.side
}

// LastMove returns the last move played, if any.
func (g *Game) LastMove() (board.Move, bool) {
	return g.lastMove, g.hasLast
}

// Held returns the held piece and its origin square.
func (g *Game) Held() (board.Piece, board.Square, bool) {
	return g.held, g.heldSquare, g.holding
}
