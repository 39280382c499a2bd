package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	CategoryName string `json:"categoryName" gorm:"uniqueIndex"`

	MenuItems []MenuItem `json:"-"`
}
