// Package store owns the mutable app state: the user profile, the daily
// record, user-created foods and exercises, and the favorites set. Every
// mutation is applied in memory and then written through to the slots
// table before it returns; if the write fails, the in-memory change is
// rolled back so memory and disk never disagree. Targets are never
// stored here; they are derived from the profile on demand by the calc
// package.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/fitfocus/fitfocus-cli/internal/model"
)

// Slot keys, carried over from the original app's storage schema.
const (
	slotProfile         = "ff_user_v5"
	slotStats           = "ff_stats_v5"
	slotCustomFoods     = "ff_custom_foods_v5"
	slotCustomExercises = "ff_custom_ex_v5"
	slotFavorites       = "ff_favs_v5"
	slotTheme           = "fitfocus_theme_v5"
)

// Store is the single authoritative holder of app state. It is not safe
// for concurrent use: there is exactly one mutator per process (the
// current command), so no locking is done.
type Store struct {
	db           *sql.DB
	catalog      []model.FoodItem
	logger       *zap.Logger
	defaultTheme model.Theme

	profile         *model.UserProfile
	stats           model.DailyStats
	customFoods     []model.FoodItem
	customExercises []model.CustomExercise
	favorites       []string
}

// Open rehydrates a Store from the slots table. An absent slot yields
// that record's zero value; a slot that fails to deserialize is logged
// and treated as absent, never fatal. The catalog is the read-only
// built-in food list merged into queries; it is never persisted.
func Open(sqldb *sql.DB, catalog []model.FoodItem, defaultTheme model.Theme, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		db:           sqldb,
		catalog:      catalog,
		logger:       logger,
		defaultTheme: defaultTheme,
		stats:        emptyStats(),
	}

	// Each slot decodes into a scratch value first, so a slot that fails
	// halfway through deserialization cannot leave partial state behind.
	var profile model.UserProfile
	loaded, err := s.loadSlot(slotProfile, &profile)
	if err != nil {
		return nil, err
	}
	if loaded {
		s.profile = &profile
	}

	var stats model.DailyStats
	if loaded, err = s.loadSlot(slotStats, &stats); err != nil {
		return nil, err
	} else if loaded {
		s.stats = stats
	}

	var customFoods []model.FoodItem
	if loaded, err = s.loadSlot(slotCustomFoods, &customFoods); err != nil {
		return nil, err
	} else if loaded {
		s.customFoods = customFoods
	}

	var customExercises []model.CustomExercise
	if loaded, err = s.loadSlot(slotCustomExercises, &customExercises); err != nil {
		return nil, err
	} else if loaded {
		s.customExercises = customExercises
	}

	var favorites []string
	if loaded, err = s.loadSlot(slotFavorites, &favorites); err != nil {
		return nil, err
	} else if loaded {
		s.favorites = favorites
	}

	s.normalize()
	return s, nil
}

// loadSlot reads one slot into dst. The bool reports whether the slot
// held a usable value. Malformed JSON is discarded, not surfaced.
func (s *Store) loadSlot(key string, dst any) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read slot %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("discarding malformed slot",
			zap.String("slot", key),
			zap.Error(err))
		return false, nil
	}
	return true, nil
}

// normalize keeps the in-memory invariant that all slices are non-nil,
// so persisted snapshots serialize as [] rather than null.
func (s *Store) normalize() {
	if s.stats.Foods == nil {
		s.stats.Foods = []model.LoggedFood{}
	}
	if s.stats.CompletedExercises == nil {
		s.stats.CompletedExercises = []string{}
	}
	if s.customFoods == nil {
		s.customFoods = []model.FoodItem{}
	}
	if s.customExercises == nil {
		s.customExercises = []model.CustomExercise{}
	}
	if s.favorites == nil {
		s.favorites = []string{}
	}
}

// persist writes all five data slots in one transaction. The write
// policy is deliberately whole-state: on any change, everything is
// re-serialized, which keeps the contract trivial at this scale.
func (s *Store) persist() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin persist tx: %w", err)
	}

	put := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("serialize slot %q: %w", key, err)
		}
		if _, err := tx.Exec(`
INSERT INTO slots(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(data)); err != nil {
			return fmt.Errorf("write slot %q: %w", key, err)
		}
		return nil
	}

	if s.profile != nil {
		err = put(slotProfile, s.profile)
	} else {
		_, err = tx.Exec(`DELETE FROM slots WHERE key = ?`, slotProfile)
	}
	if err == nil {
		err = put(slotStats, s.stats)
	}
	if err == nil {
		err = put(slotCustomFoods, s.customFoods)
	}
	if err == nil {
		err = put(slotCustomExercises, s.customExercises)
	}
	if err == nil {
		err = put(slotFavorites, s.favorites)
	}
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit persist tx: %w", err)
	}
	return nil
}

func emptyStats() model.DailyStats {
	return model.DailyStats{
		WaterDrank:         0,
		Foods:              []model.LoggedFood{},
		CompletedExercises: []string{},
	}
}

// Profile returns a copy of the active profile, or nil when onboarding
// has not happened yet.
func (s *Store) Profile() *model.UserProfile {
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

func (s *Store) Stats() model.DailyStats {
	stats := s.stats
	stats.Foods = append([]model.LoggedFood{}, s.stats.Foods...)
	stats.CompletedExercises = append([]string{}, s.stats.CompletedExercises...)
	return stats
}

func (s *Store) CustomFoods() []model.FoodItem {
	return append([]model.FoodItem{}, s.customFoods...)
}

func (s *Store) CustomExercises() []model.CustomExercise {
	return append([]model.CustomExercise{}, s.customExercises...)
}

func (s *Store) Favorites() []string {
	return append([]string{}, s.favorites...)
}

func (s *Store) IsFavorite(foodID string) bool {
	for _, id := range s.favorites {
		if id == foodID {
			return true
		}
	}
	return false
}

// FoodByID resolves an id against custom foods first, then the built-in
// catalog, mirroring the merge order used by search.
func (s *Store) FoodByID(id string) (model.FoodItem, bool) {
	for _, f := range s.customFoods {
		if f.ID == id {
			return f, true
		}
	}
	for _, f := range s.catalog {
		if f.ID == id {
			return f, true
		}
	}
	return model.FoodItem{}, false
}
