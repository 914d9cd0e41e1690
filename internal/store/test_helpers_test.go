package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/fitfocus/fitfocus-cli/internal/catalog"
	"github.com/fitfocus/fitfocus-cli/internal/db"
	"github.com/fitfocus/fitfocus-cli/internal/model"
	"github.com/fitfocus/fitfocus-cli/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitfocus.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func openStore(t *testing.T, sqldb *sql.DB) *store.Store {
	t.Helper()
	s, err := store.Open(sqldb, catalog.Default(), model.ThemeLight, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func validProfileForm() store.ProfileForm {
	return store.ProfileForm{
		Name:           "Rafael",
		Weight:         "70",
		Height:         "170",
		Age:            "30",
		Gender:         "male",
		Goal:           "lose",
		ActivityLevel:  "sedentary",
		TargetChangeKg: "5",
		DurationWeeks:  "8",
	}
}
