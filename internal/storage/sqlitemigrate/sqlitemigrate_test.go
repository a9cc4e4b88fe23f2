package sqlitemigrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestUpSection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no markers", "CREATE TABLE a (x INTEGER);", "CREATE TABLE a (x INTEGER);"},
		{"up only", "-- +migrate Up\nCREATE TABLE a (x INTEGER);", "CREATE TABLE a (x INTEGER);"},
		{"up and down", "-- +migrate Up\nCREATE TABLE a (x INTEGER);\n-- +migrate Down\nDROP TABLE a;", "CREATE TABLE a (x INTEGER);"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.TrimSpace(UpSection(tt.content)); got != tt.want {
				t.Errorf("UpSection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyOnce(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	migrations := fstest.MapFS{
		"001_init.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE vaults (id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE vaults;")},
		"002_seed.sql": {Data: []byte("-- +migrate Up\nINSERT INTO vaults (id) VALUES ('v1');")},
		"README.md":    {Data: []byte("not a migration")},
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := Apply(ctx, db, migrations, ""); err != nil {
			t.Fatalf("apply pass %d: %v", i, err)
		}
	}

	var rows int
	if err := db.QueryRow("SELECT COUNT(*) FROM vaults").Scan(&rows); err != nil {
		t.Fatalf("count vaults: %v", err)
	}
	if rows != 1 {
		t.Errorf("vault rows = %d, want 1", rows)
	}

	var applied int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + migrationTable).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied migrations = %d, want 2", applied)
	}
}

func TestApplyRequiresDB(t *testing.T) {
	if err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected error for nil db")
	}
}
