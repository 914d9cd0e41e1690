package store

import (
	"database/sql"
	"fmt"

	"github.com/fitfocus/fitfocus-cli/internal/model"
)

// The theme slot is independent of the data slots: toggling it never
// touches app data and resets never touch it.

// Theme reads the stored preference, falling back to the configured
// default while the slot is unset.
func (s *Store) Theme() (model.Theme, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, slotTheme).Scan(&raw)
	if err == sql.ErrNoRows {
		return s.defaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("read theme slot: %w", err)
	}
	theme := model.Theme(raw)
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return s.defaultTheme, nil
	}
	return theme, nil
}

func (s *Store) SetTheme(theme model.Theme) error {
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return invalidField("theme", "must be light or dark")
	}
	if _, err := s.db.Exec(`
INSERT INTO slots(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, slotTheme, string(theme)); err != nil {
		return fmt.Errorf("write theme slot: %w", err)
	}
	return nil
}

// ToggleTheme flips the preference and returns the new value.
func (s *Store) ToggleTheme() (model.Theme, error) {
	current, err := s.Theme()
	if err != nil {
		return "", err
	}
	next := model.ThemeDark
	if current == model.ThemeDark {
		next = model.ThemeLight
	}
	if err := s.SetTheme(next); err != nil {
		return "", err
	}
	return next, nil
}
