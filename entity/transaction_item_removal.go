package entity

import (
	"gorm.io/gorm"
)

// TransactionItemRemoval records one ingredient the customer opted out of on a
// line. Removal identity is the ingredient id, not its display name.
type TransactionItemRemoval struct {
	gorm.Model
	TransactionItemID uint            `json:"transactionItemId"`
	TransactionItem   TransactionItem `json:"-"`

	IngredientID uint       `json:"ingredientId"`
	Ingredient   Ingredient `json:"-"`
}
