package entity

import (
	"gorm.io/gorm"
)

type Transaction struct {
	gorm.Model
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`

	TransactionStatusID uint              `json:"transactionStatusId"`
	TransactionStatus   TransactionStatus `json:"transactionStatus"`

	// preload only for detail views
	Items []TransactionItem `json:"-"`
}
