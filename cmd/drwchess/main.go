package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"

	"github.com/hailam/drwchess/internal/cli"
	"github.com/hailam/drwchess/internal/storage"
)

var (
	dbDir     = flag.String("db", "", "database directory (default: platform data dir)")
	memory    = flag.Bool("memory", false, "keep preferences and statistics in memory only")
	placement = flag.String("placement", "", "FEN piece placement to start from")
	debug     = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	log.SetHandler(text.New(os.Stderr))
	log.SetLevel(log.InfoLevel)

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Fatal("drwchess")
	}
}

// run plays a session from in to out. The store is closed before it returns.
func run(in io.Reader, out io.Writer) error {
	store, err := openStorage()
	if err != nil {
		log.WithError(err).Warn("storage unavailable, falling back to memory")
		if store, err = storage.OpenInMemory(); err != nil {
			return fmt.Errorf("open in-memory storage: %w", err)
		}
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.WithError(err).Warn("could not load preferences, using defaults")
		prefs = storage.DefaultPreferences()
	}
	if *debug || prefs.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if first, err := store.IsFirstLaunch(); err == nil && first {
		log.WithField("user", prefs.Username).Info("first launch")
		if err := store.SavePreferences(prefs); err != nil {
			log.WithError(err).Warn("could not save preferences")
		}
		if err := store.MarkFirstLaunchComplete(); err != nil {
			log.WithError(err).Warn("could not mark first launch")
		}
	}

	protocol, err := cli.New(store, out,
		cli.WithLogger(log.Log),
		cli.WithPreferences(prefs),
		cli.WithPlacement(*placement),
	)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	if err := protocol.Run(in); err != nil {
		log.WithError(err).Error("reading commands")
	}
	return nil
}

// openStorage opens the database selected by the flags.
func openStorage() (*storage.Storage, error) {
	switch {
	case *memory:
		return storage.OpenInMemory()
	case *dbDir != "":
		return storage.Open(*dbDir)
	default:
		return storage.NewStorage()
	}
}
