// Package storage provides persistent storage for user preferences, move
// statistics and the last played move.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/apex/log"
)

const (
	appName = "drwchess"

	// homeEnv overrides the data directory, e.g. for a portable install.
	homeEnv = "DRWCHESS_HOME"
)

// GetDataDir returns the data directory, creating it if needed. It is
// $DRWCHESS_HOME when set, otherwise drwchess/ under the platform data home.
func GetDataDir() (string, error) {
	dir := os.Getenv(homeEnv)
	if dir == "" {
		base, err := dataHome()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, appName)
	}
	return dir, os.MkdirAll(dir, 0755)
}

// dataHome is Application Support on macOS, %AppData% on Windows and
// $XDG_DATA_HOME (default ~/.local/share) elsewhere.
func dataHome() (string, error) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return os.UserConfigDir()
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	log.WithField("dir", dbDir).Debug("database directory")

	return dbDir, nil
}
