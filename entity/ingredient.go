package entity

import (
	"gorm.io/gorm"
)

// Ingredient stock is mutated only through the inventory ledger
// (repository.InventoryRepository), never written directly.
type Ingredient struct {
	gorm.Model
	IngredientName string `json:"ingredientname"`
	Units          int    `json:"units"`    // on hand
	MinUnits       int    `json:"minUnits"` // restock threshold
	Price          int64  `json:"price"`    // cents per unit

	RecipeItems []RecipeItem `json:"-"`
}
