package entity

import (
	"gorm.io/gorm"
)

type TransactionStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`

	Transactions []Transaction `json:"-"`
}
