package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/drwchess/internal/board"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyLastMove    = "last_move"
	keyFirstLaunch = "first_launch"
)

// UserPreferences stores user settings
type UserPreferences struct {
	Username       string    `json:"username"`
	SoundEnabled   bool      `json:"sound_enabled"`
	StartPlacement string    `json:"start_placement"`
	Debug          bool      `json:"debug"`
	LastPlayed     time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:       "Player",
		SoundEnabled:   true,
		StartPlacement: board.StartPlacement,
		LastPlayed:     time.Now(),
	}
}

// GameStats tallies move outcomes across sessions
type GameStats struct {
	GamesStarted int `json:"games_started"`
	Moves        int `json:"moves"`
	Takes        int `json:"takes"`
	Castles      int `json:"castles"`
	Rejected     int `json:"rejected"`
}

// NewGameStats returns empty game statistics
func NewGameStats() *GameStats {
	return &GameStats{}
}

// Played returns the number of accepted moves of any kind.
func (s *GameStats) Played() int {
	return s.Moves + s.Takes + s.Castles
}

// lastMoveRecord is the stored form of the last played move.
type lastMoveRecord struct {
	Start board.Square `json:"start"`
	End   board.Square `json:"end"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database under the platform data directory
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	var firstLaunch bool = true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// put stores v as JSON under key.
func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the JSON value under key into v. It reports false, leaving v
// untouched, when the key is absent.
func (s *Storage) get(key string, v any) (bool, error) {
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})

	return found, err
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	_, err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	_, err := s.get(keyStats, stats)
	return stats, err
}

// RecordAction adds one move outcome to the stored statistics
func (s *Storage) RecordAction(action board.MoveAction) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	switch action {
	case board.ActionMove:
		stats.Moves++
	case board.ActionTake:
		stats.Takes++
	case board.ActionCastle:
		stats.Castles++
	default:
		stats.Rejected++
	}

	return s.SaveStats(stats)
}

// RecordGameStart counts a new game
func (s *Storage) RecordGameStart() error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesStarted++
	return s.SaveStats(stats)
}

// SaveLastMove replaces the stored last move. Only one move is ever kept.
func (s *Storage) SaveLastMove(m board.Move) error {
	return s.put(keyLastMove, lastMoveRecord{Start: m.Start, End: m.End})
}

// LoadLastMove returns the stored last move, if any
func (s *Storage) LoadLastMove() (board.Move, bool, error) {
	var rec lastMoveRecord
	found, err := s.get(keyLastMove, &rec)
	if err != nil || !found {
		return board.Move{}, false, err
	}
	return board.NewMove(rec.Start, rec.End), true, nil
}
