package store_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fitfocus/fitfocus-cli/internal/store"
)

func TestSearchFoodsEmptyTermReturnsFavorites(t *testing.T) {
	t.Parallel()
	s := openStore(t, newTestDB(t))

	custom, err := s.CreateCustomFood(store.FoodForm{Name: "Crepioca", Calories: "210", Unit: "1 unidade"})
	if err != nil {
		t.Fatalf("create custom food: %v", err)
	}
	if err := s.ToggleFavorite("4"); err != nil {
		t.Fatalf("favorite built-in: %v", err)
	}
	if err := s.ToggleFavorite(custom.ID); err != nil {
		t.Fatalf("favorite custom: %v", err)
	}

	results := s.SearchFoods("")
	if len(results) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(results))
	}
	// Customs come before built-ins in the merged order.
	if results[0].ID != custom.ID || results[1].ID != "4" {
		t.Fatalf("expected custom-first order, got [%s %s]", results[0].ID, results[1].ID)
	}
}

func TestSearchFoodsEmptyTermNoFavorites(t *testing.T) {
	t.Parallel()
	s := openStore(t, newTestDB(t))

	if got := s.SearchFoods(""); len(got) != 0 {
		t.Fatalf("expected no results without favorites, got %d", len(got))
	}
}

func TestSearchFoodsWhitespaceTermIsASearch(t *testing.T) {
	t.Parallel()
	s := openStore(t, newTestDB(t))

	// Maçã has a single-word name; a space search must never return it,
	// even though it is the only favorite.
	if err := s.ToggleFavorite("7"); err != nil {
		t.Fatalf("favorite built-in: %v", err)
	}

	results := s.SearchFoods(" ")
	if len(results) == 0 {
		t.Fatal("expected a space term to match multi-word names, got none")
	}
	for _, f := range results {
		if !strings.Contains(f.Name, " ") {
			t.Fatalf("result %q does not contain a space", f.Name)
		}
		if f.ID == "7" {
			t.Fatal("favorites must not leak into a whitespace search")
		}
	}
}

func TestSearchFoodsMatchesCaseInsensitive(t *testing.T) {
	t.Parallel()
	s := openStore(t, newTestDB(t))

	results := s.SearchFoods("FRANGO")
	if len(results) == 0 {
		t.Fatalf("expected results for FRANGO")
	}
	for _, f := range results {
		if !strings.Contains(strings.ToLower(f.Name), "frango") {
			t.Fatalf("result %q does not contain search term", f.Name)
		}
	}
}

func TestSearchFoodsCustomsPrecedeBuiltIns(t *testing.T) {
	t.Parallel()
	s := openStore(t, newTestDB(t))

	custom, err := s.CreateCustomFood(store.FoodForm{Name: "Frango desfiado da casa", Calories: "150", Unit: "100g"})
	if err != nil {
		t.Fatalf("create custom food: %v", err)
	}

	results := s.SearchFoods("frango")
	if len(results) < 2 {
		t.Fatalf("expected custom and built-in results, got %d", len(results))
	}
	if results[0].ID != custom.ID {
		t.Fatalf("expected custom item first, got %s", results[0].ID)
	}
}

func TestSearchFoodsCapsAtFifteen(t *testing.T) {
	t.Parallel()
	s := openStore(t, newTestDB(t))

	for i := 0; i < 20; i++ {
		_, err := s.CreateCustomFood(store.FoodForm{
			Name:     fmt.Sprintf("Marmita %d", i),
			Calories: "400",
			Unit:     "1 unidade",
		})
		if err != nil {
			t.Fatalf("create custom food %d: %v", i, err)
		}
	}

	if got := len(s.SearchFoods("marmita")); got != 15 {
		t.Fatalf("expected results capped at 15, got %d", got)
	}
}
