package entity

import (
	"gorm.io/gorm"
)

// RecipeItem is one bill-of-materials row of a menu item. Removable rows are
// toppings the customer may opt out of; fixed rows (packaging, utensils) are
// consumed on every sale.
type RecipeItem struct {
	gorm.Model
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	IngredientID uint       `json:"ingredientId"`
	Ingredient   Ingredient `json:"-"`

	Quantity  int  `json:"quantity"` // per unit of the menu item, >= 1
	Removable bool `json:"removable"`
}
