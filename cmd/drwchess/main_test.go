package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/hailam/drwchess/internal/storage"
)

// useFlags points the command-line flags at a database in dir for one test.
func useFlags(t *testing.T, dir, start string) {
	t.Helper()
	oldDB, oldPlacement := *dbDir, *placement
	*dbDir, *placement = dir, start
	log.SetHandler(discard.New())
	t.Cleanup(func() {
		*dbDir, *placement = oldDB, oldPlacement
	})
}

func TestRunPlaysSession(t *testing.T) {
	dir := t.TempDir()
	useFlags(t, dir, "")

	var out bytes.Buffer
	if err := run(strings.NewReader("e2e4\nquit\n"), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "move e2e4") {
		t.Errorf("unexpected output: %q", out.String())
	}

	s, err := storage.Open(dir)
	if err != nil {
		t.Fatalf("database still locked after run: %v", err)
	}
	defer s.Close()
	if m, ok, err := s.LoadLastMove(); err != nil || !ok || m.String() != "e2e4" {
		t.Errorf("LoadLastMove = %v, %v, %v; want e2e4", m, ok, err)
	}
}

func TestRunClosesStoreOnError(t *testing.T) {
	dir := t.TempDir()
	useFlags(t, dir, "not/a/placement")

	if err := run(strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatal("run with a bad placement should fail")
	}

	s, err := storage.Open(dir)
	if err != nil {
		t.Fatalf("database still locked after failed run: %v", err)
	}
	s.Close()
}
