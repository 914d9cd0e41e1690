package db_test

import (
	"path/filepath"
	"testing"

	"github.com/fitfocus/fitfocus-cli/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "fitfocus.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 1 {
		t.Fatalf("expected 1 migration version, got %d", migrationCount)
	}

	var slotsTableCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'slots'`).Scan(&slotsTableCount); err != nil {
		t.Fatalf("check slots table: %v", err)
	}
	if slotsTableCount != 1 {
		t.Fatalf("expected slots table to exist")
	}
}
