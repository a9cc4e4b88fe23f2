package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/runevault/internal/storage/sqlite"
)

func TestRunReturnsExitCode(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runevault.db")
	t.Setenv("RUNEVAULT_DB_PATH", dbPath)
	t.Setenv("RUNEVAULT_OTEL_ENABLED", "false")

	args := os.Args
	t.Cleanup(func() { os.Args = args })

	tests := []struct {
		args []string
		want int
	}{
		{[]string{"runevault", "teleport"}, 1},
		{[]string{"runevault", "schema", "-out", filepath.Join(t.TempDir(), "level.schema.json")}, 0},
	}

	for _, tt := range tests {
		os.Args = tt.args
		if got := run(); got != tt.want {
			t.Errorf("run(%v) = %d, want %d", tt.args[1:], got, tt.want)
		}

		store, err := sqlite.Open(dbPath)
		if err != nil {
			t.Fatalf("reopen store after %v: %v", tt.args[1:], err)
		}
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	}
}
