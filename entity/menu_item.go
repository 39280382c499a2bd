package entity

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	ItemName string `json:"itemname"`
	Price    int64  `json:"price"` // cents

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for menu board views

	// nil window = available year round
	SeasonalStart *time.Time `json:"seasonalStart,omitempty"`
	SeasonalEnd   *time.Time `json:"seasonalEnd,omitempty"`

	Recipe           []RecipeItem      `json:"-"`
	TransactionItems []TransactionItem `json:"-"`
}
