// Package catalog holds the built-in food database. The list is
// read-only: the store merges it with user-created foods at query time
// but never mutates it.
package catalog

import "github.com/fitfocus/fitfocus-cli/internal/model"

var builtIn = []model.FoodItem{
	{ID: "1", Name: "Arroz branco cozido", Calories: 130, Unit: "100g"},
	{ID: "2", Name: "Feijão carioca", Calories: 76, Unit: "100g"},
	{ID: "3", Name: "Peito de frango grelhado", Calories: 165, Unit: "100g"},
	{ID: "4", Name: "Ovo cozido", Calories: 78, Unit: "1 unidade"},
	{ID: "5", Name: "Pão francês", Calories: 150, Unit: "1 unidade"},
	{ID: "6", Name: "Banana prata", Calories: 89, Unit: "1 unidade"},
	{ID: "7", Name: "Maçã", Calories: 95, Unit: "1 unidade"},
	{ID: "8", Name: "Batata doce cozida", Calories: 86, Unit: "100g"},
	{ID: "9", Name: "Carne bovina magra", Calories: 219, Unit: "100g"},
	{ID: "10", Name: "Tilápia grelhada", Calories: 128, Unit: "100g"},
	{ID: "11", Name: "Tapioca", Calories: 147, Unit: "1 unidade"},
	{ID: "12", Name: "Queijo minas", Calories: 264, Unit: "100g"},
	{ID: "13", Name: "Iogurte natural", Calories: 61, Unit: "100g"},
	{ID: "14", Name: "Aveia em flocos", Calories: 389, Unit: "100g"},
	{ID: "15", Name: "Leite desnatado", Calories: 35, Unit: "100ml"},
	{ID: "16", Name: "Café sem açúcar", Calories: 2, Unit: "1 xícara"},
	{ID: "17", Name: "Salada verde", Calories: 15, Unit: "1 prato"},
	{ID: "18", Name: "Azeite de oliva", Calories: 119, Unit: "1 colher"},
	{ID: "19", Name: "Whey protein", Calories: 120, Unit: "1 dose"},
	{ID: "20", Name: "Açaí sem complementos", Calories: 170, Unit: "100g"},
}

// Default returns a copy of the built-in catalog in listing order.
func Default() []model.FoodItem {
	out := make([]model.FoodItem, len(builtIn))
	copy(out, builtIn)
	return out
}
