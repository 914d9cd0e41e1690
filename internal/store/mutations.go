package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitfocus/fitfocus-cli/internal/model"
)

// Id prefixes for user-created items, keeping them disjoint from the
// built-in catalog's plain numeric ids.
const (
	customFoodIDPrefix     = "custom_"
	customExerciseIDPrefix = "ex_"
)

// LogFood records a consumption of item, denormalizing its name and
// calories so later edits to the item never rewrite history. The entry
// goes to the front of the list: newest first is a display invariant.
func (s *Store) LogFood(item model.FoodItem) (model.LoggedFood, error) {
	entry := model.LoggedFood{
		ID:        uuid.NewString(),
		FoodID:    item.ID,
		Name:      item.Name,
		Calories:  item.Calories,
		Timestamp: time.Now().UnixMilli(),
	}
	prev := s.stats.Foods
	s.stats.Foods = append([]model.LoggedFood{entry}, prev...)
	if err := s.persist(); err != nil {
		s.stats.Foods = prev
		return model.LoggedFood{}, err
	}
	return entry, nil
}

// RemoveFoodLog deletes the entry with the given id. A missing id is a
// no-op, not an error.
func (s *Store) RemoveFoodLog(id string) error {
	kept := make([]model.LoggedFood, 0, len(s.stats.Foods))
	found := false
	for _, f := range s.stats.Foods {
		if f.ID == id {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return nil
	}
	prev := s.stats.Foods
	s.stats.Foods = kept
	if err := s.persist(); err != nil {
		s.stats.Foods = prev
		return err
	}
	return nil
}

// AdjustWater shifts the water counter by deltaML. Negative deltas are
// allowed; the result is floored at zero. Returns the new value.
func (s *Store) AdjustWater(deltaML int) (int, error) {
	prev := s.stats.WaterDrank
	next := prev + deltaML
	if next < 0 {
		next = 0
	}
	s.stats.WaterDrank = next
	if err := s.persist(); err != nil {
		s.stats.WaterDrank = prev
		return 0, err
	}
	return next, nil
}

// ToggleFavorite flips the membership of foodID in the favorites set.
func (s *Store) ToggleFavorite(foodID string) error {
	foodID = strings.TrimSpace(foodID)
	if foodID == "" {
		return invalidField("food id", "is required")
	}
	kept := make([]string, 0, len(s.favorites))
	removed := false
	for _, id := range s.favorites {
		if id == foodID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, foodID)
	}
	prev := s.favorites
	s.favorites = kept
	if err := s.persist(); err != nil {
		s.favorites = prev
		return err
	}
	return nil
}

// FoodForm carries the raw fields of the custom-food creation form.
type FoodForm struct {
	Name     string
	Calories string
	Unit     string
}

// CreateCustomFood validates form, assigns a prefixed id, and prepends
// the item to the custom-food list.
func (s *Store) CreateCustomFood(form FoodForm) (model.FoodItem, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return model.FoodItem{}, invalidField("name", "is required")
	}
	calories, err := strconv.Atoi(strings.TrimSpace(form.Calories))
	if err != nil {
		return model.FoodItem{}, invalidField("calories", fmt.Sprintf("%q is not a number", form.Calories))
	}
	if calories < 0 {
		return model.FoodItem{}, invalidField("calories", "must be >= 0")
	}
	unit := strings.TrimSpace(form.Unit)
	if unit == "" {
		return model.FoodItem{}, invalidField("unit", "is required")
	}

	item := model.FoodItem{
		ID:       customFoodIDPrefix + uuid.NewString(),
		Name:     name,
		Calories: calories,
		Unit:     unit,
	}
	prev := s.customFoods
	s.customFoods = append([]model.FoodItem{item}, prev...)
	if err := s.persist(); err != nil {
		s.customFoods = prev
		return model.FoodItem{}, err
	}
	return item, nil
}

// ExerciseForm carries the raw fields of the exercise creation form.
// Sets and reps stay free text ("3" and "8-12" are both valid).
type ExerciseForm struct {
	Name  string
	Sets  string
	Reps  string
	Notes string
}

func (s *Store) CreateCustomExercise(form ExerciseForm) (model.CustomExercise, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return model.CustomExercise{}, invalidField("name", "is required")
	}
	sets := strings.TrimSpace(form.Sets)
	if sets == "" {
		return model.CustomExercise{}, invalidField("sets", "is required")
	}
	reps := strings.TrimSpace(form.Reps)
	if reps == "" {
		return model.CustomExercise{}, invalidField("reps", "is required")
	}

	ex := model.CustomExercise{
		ID:    customExerciseIDPrefix + uuid.NewString(),
		Name:  name,
		Sets:  sets,
		Reps:  reps,
		Notes: strings.TrimSpace(form.Notes),
	}
	prevEx := s.customExercises
	s.customExercises = append([]model.CustomExercise{ex}, prevEx...)
	if err := s.persist(); err != nil {
		s.customExercises = prevEx
		return model.CustomExercise{}, err
	}
	return ex, nil
}

// RemoveCustomExercise deletes by id; a missing id is a no-op.
func (s *Store) RemoveCustomExercise(id string) error {
	kept := make([]model.CustomExercise, 0, len(s.customExercises))
	found := false
	for _, ex := range s.customExercises {
		if ex.ID == id {
			found = true
			continue
		}
		kept = append(kept, ex)
	}
	if !found {
		return nil
	}
	prev := s.customExercises
	s.customExercises = kept
	if err := s.persist(); err != nil {
		s.customExercises = prev
		return err
	}
	return nil
}

// ResetAll wipes every data slot and reverts the in-memory state to
// empty defaults. Irreversible; callers confirm before invoking. The
// theme slot is left alone.
func (s *Store) ResetAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin reset tx: %w", err)
	}
	for _, key := range []string{slotProfile, slotStats, slotCustomFoods, slotCustomExercises, slotFavorites} {
		if _, err := tx.Exec(`DELETE FROM slots WHERE key = ?`, key); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("clear slot %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset tx: %w", err)
	}

	s.profile = nil
	s.stats = emptyStats()
	s.customFoods = []model.FoodItem{}
	s.customExercises = []model.CustomExercise{}
	s.favorites = []string{}
	return nil
}
