package entity

import (
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	Email     string `json:"email" gorm:"uniqueIndex"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"` // manager | cashier
}
