package entity

import (
	"gorm.io/gorm"
)

type TransactionItem struct {
	gorm.Model
	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"` // captured at add time, never re-read from the catalog
	Total     int64 `json:"total"`

	// display label for tickets, e.g. "No Pickles, No Onions"
	Modification string `json:"modification"`

	TransactionID uint        `json:"transactionId"`
	Transaction   Transaction `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the item name is needed

	Removals []TransactionItemRemoval `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"removals"`
}
