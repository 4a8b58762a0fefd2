// Package cli implements a line-oriented text protocol for playing a game
// from a terminal or a pipe.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/hailam/drwchess/internal/board"
	"github.com/hailam/drwchess/internal/game"
	"github.com/hailam/drwchess/internal/storage"
)

const helpText = `commands:
  new [placement]      start a new game (standard start if no placement)
  pick <sq>            lift a piece of the side to move
  drop <sq>            put the held piece down
  cancel               put the held piece back
  move <from> <to>     pick and drop in one step (also: e2e4)
  moves [sq]           list legal moves, all or from one square
  d                    show the board
  last                 show the last move played
  stats                show move statistics
  perft <depth>        count move-tree leaves from the current board
  help                 show this text
  quit                 exit`

// Protocol drives a game from text commands.
type Protocol struct {
	game  *game.Game
	store *storage.Storage
	prefs *storage.UserPreferences
	out   io.Writer
	log   log.Interface

	placement string
}

// Option configures a Protocol.
type Option func(*Protocol)

// WithLogger sets the logger for the protocol and its game.
func WithLogger(l log.Interface) Option {
	return func(p *Protocol) {
		if l != nil {
			p.log = l
		}
	}
}

// WithPreferences overrides the preferences loaded from storage.
func WithPreferences(prefs *storage.UserPreferences) Option {
	return func(p *Protocol) {
		if prefs != nil {
			p.prefs = prefs
		}
	}
}

// WithPlacement sets the starting placement, overriding the preferences.
func WithPlacement(placement string) Option {
	return func(p *Protocol) {
		p.placement = placement
	}
}

// New creates a protocol handler writing to out. The store may be nil, in
// which case nothing is persisted. The game is created from the configured
// placement with the protocol as its feedback hook.
func New(store *storage.Storage, out io.Writer, opts ...Option) (*Protocol, error) {
	p := &Protocol{
		store: store,
		out:   out,
		log:   log.Log,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.prefs == nil {
		p.prefs = storage.DefaultPreferences()
		if store != nil {
			prefs, err := store.LoadPreferences()
			if err != nil {
				return nil, fmt.Errorf("load preferences: %w", err)
			}
			p.prefs = prefs
		}
	}
	if p.placement == "" {
		p.placement = p.prefs.StartPlacement
	}

	g, err := game.NewFromPlacement(p.placement, game.WithLogger(p.log), game.WithFeedback(p))
	if err != nil {
		return nil, err
	}
	p.game = g
	p.recordGameStart()

	return p, nil
}

// Game returns the game being played.
func (p *Protocol) Game() *game.Game {
	return p.game
}

// OnAction prints the sound cue, tallies the outcome and remembers the move.
func (p *Protocol) OnAction(action board.MoveAction, m board.Move) {
	if p.prefs.SoundEnabled {
		fmt.Fprintf(p.out, "cue %s\n", action)
	}
	if p.store == nil {
		return
	}

	if err := p.store.RecordAction(action); err != nil {
		p.log.WithError(err).Warn("could not record action")
	}
	if action == board.ActionIncorrect {
		return
	}
	if err := p.store.SaveLastMove(m); err != nil {
		p.log.WithError(err).Warn("could not save last move")
	}
}

func (p *Protocol) recordGameStart() {
	if p.store == nil {
		return
	}
	if err := p.store.RecordGameStart(); err != nil {
		p.log.WithError(err).Warn("could not record game start")
	}
}

// Run reads commands from r until quit or end of input.
func (p *Protocol) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		if cmd == "quit" {
			return nil
		}
		if err := p.handle(cmd, args); err != nil {
			fmt.Fprintf(p.out, "error: %v\n", err)
		}
	}

	return scanner.Err()
}

func (p *Protocol) handle(cmd string, args []string) error {
	switch cmd {
	case "new":
		return p.handleNew(args)
	case "pick":
		return p.handlePick(args)
	case "drop":
		return p.handleDrop(args)
	case "cancel":
		p.game.Cancel()
		fmt.Fprintln(p.out, "ok")
	case "move":
		if len(args) != 2 {
			return fmt.Errorf("usage: move <from> <to>")
		}
		return p.handleMove(args[0], args[1])
	case "moves":
		return p.handleMoves(args)
	case "d":
		b := p.game.Board()
		fmt.Fprint(p.out, b.String())
		fmt.Fprintf(p.out, "%s to move\n", p.game.SideToMove())
	case "last":
		p.handleLast()
	case "stats":
		return p.handleStats()
	case "perft":
		return p.handlePerft(args)
	case "help":
		fmt.Fprintln(p.out, helpText)
	default:
		// Bare coordinate moves such as e2e4
		if len(cmd) == 4 && len(args) == 0 {
			return p.handleMove(cmd[:2], cmd[2:])
		}
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (p *Protocol) handleNew(args []string) error {
	placement := p.placement
	if len(args) > 0 {
		placement = strings.Join(args, " ")
	}
	if err := p.game.Reset(placement); err != nil {
		return err
	}
	p.recordGameStart()
	fmt.Fprintln(p.out, "ok")
	return nil
}

func (p *Protocol) handlePick(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pick <sq>")
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}
	if err := p.game.Pick(sq); err != nil {
		return err
	}

	piece, _, _ := p.game.Held()
	fmt.Fprintf(p.out, "holding %s on %s: %s\n", piece, sq, formatDestinations(p.game.Legal(sq)))
	return nil
}

func (p *Protocol) handleDrop(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: drop <sq>")
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}

	_, from, _ := p.game.Held()
	action, err := p.game.Drop(sq)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "%s %s\n", action, board.NewMove(from, sq))
	return nil
}

func (p *Protocol) handleMove(fromStr, toStr string) error {
	from, err := board.ParseSquare(fromStr)
	if err != nil {
		return err
	}
	to, err := board.ParseSquare(toStr)
	if err != nil {
		return err
	}

	action, err := p.game.Play(from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "%s %s\n", action, board.NewMove(from, to))
	return nil
}

func (p *Protocol) handleMoves(args []string) error {
	if len(args) > 0 {
		sq, err := board.ParseSquare(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "%s: %s\n", sq, formatDestinations(p.game.Legal(sq)))
		return nil
	}

	table := p.game.Table()
	for _, sq := range table.Origins() {
		if len(table[sq]) == 0 {
			continue
		}
		fmt.Fprintf(p.out, "%s: %s\n", sq, formatDestinations(table[sq]))
	}
	fmt.Fprintf(p.out, "%d moves\n", table.Len())
	return nil
}

func (p *Protocol) handleLast() {
	if m, ok := p.game.LastMove(); ok {
		fmt.Fprintf(p.out, "last %s\n", m)
		return
	}

	// Nothing played this session; fall back to the stored move
	if p.store != nil {
		m, ok, err := p.store.LoadLastMove()
		if err != nil {
			p.log.WithError(err).Warn("could not load last move")
		}
		if ok {
			fmt.Fprintf(p.out, "last %s (previous session)\n", m)
			return
		}
	}
	fmt.Fprintln(p.out, "last none")
}

func (p *Protocol) handleStats() error {
	if p.store == nil {
		return fmt.Errorf("no storage")
	}
	stats, err := p.store.LoadStats()
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "games %d moves %d takes %d castles %d rejected %d\n",
		stats.GamesStarted, stats.Moves, stats.Takes, stats.Castles, stats.Rejected)
	return nil
}

func (p *Protocol) handlePerft(args []string) error {
	depth := 3
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 {
			return fmt.Errorf("invalid depth %q", args[0])
		}
		depth = d
	}

	nodes := board.Perft(p.game.Board(), p.game.SideToMove(), depth)
	fmt.Fprintf(p.out, "perft %d %d\n", depth, nodes)
	return nil
}

// formatDestinations lists move destinations as space-separated squares.
func formatDestinations(moves []board.Move) string {
	if len(moves) == 0 {
		return "none"
	}
	dests := make([]string, len(moves))
	for i, m := range moves {
		dests[i] = m.End.String()
	}
	return strings.Join(dests, " ")
}
