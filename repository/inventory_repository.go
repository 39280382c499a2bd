package repository

import (
	"errors"
	"fmt"

	"grillpos/entity"
	"grillpos/pkg/apperr"

	"gorm.io/gorm"
)

// InventoryRepository is the only writer of ingredient stock counts. Debits
// and credits are single guarded UPDATE statements, so concurrent callers on
// the same ingredient serialize in the store and never act on a stale count.
type InventoryRepository struct{ DB *gorm.DB }

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

// Debit decreases on-hand units. The "units >= amount" guard is the
// compare-and-set: zero rows affected means the ingredient is missing or the
// debit would drive the count negative. Nothing is changed in either case.
func (r *InventoryRepository) Debit(tx *gorm.DB, ingredientID uint, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative debit amount %d", apperr.ErrValidation, amount)
	}
	if amount == 0 {
		return nil
	}
	res := tx.Model(&entity.Ingredient{}).
		Where("id = ? AND units >= ?", ingredientID, amount).
		Update("units", gorm.Expr("units - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		exists, err := r.exists(tx, ingredientID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: ingredient %d", apperr.ErrNotFound, ingredientID)
		}
		return fmt.Errorf("%w: ingredient %d short by up to %d units", apperr.ErrInsufficientStock, ingredientID, amount)
	}
	return nil
}

// Credit increases on-hand units. Fails only for an unknown ingredient.
func (r *InventoryRepository) Credit(tx *gorm.DB, ingredientID uint, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative credit amount %d", apperr.ErrValidation, amount)
	}
	if amount == 0 {
		return nil
	}
	res := tx.Model(&entity.Ingredient{}).
		Where("id = ?", ingredientID).
		Update("units", gorm.Expr("units + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: ingredient %d", apperr.ErrNotFound, ingredientID)
	}
	return nil
}

func (r *InventoryRepository) CurrentCount(ingredientID uint) (int, error) {
	var row struct{ Units int }
	err := r.DB.Model(&entity.Ingredient{}).
		Select("units").Where("id = ?", ingredientID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: ingredient %d", apperr.ErrNotFound, ingredientID)
	}
	return row.Units, err
}

func (r *InventoryRepository) IsBelowMinimum(ingredientID uint) (bool, error) {
	var row struct {
		Units    int
		MinUnits int
	}
	err := r.DB.Model(&entity.Ingredient{}).
		Select("units, min_units").Where("id = ?", ingredientID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("%w: ingredient %d", apperr.ErrNotFound, ingredientID)
	}
	if err != nil {
		return false, err
	}
	return row.Units < row.MinUnits, nil
}

// ListBelowMinimum feeds the restock report.
func (r *InventoryRepository) ListBelowMinimum() ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	err := r.DB.Where("units < min_units").Order("ingredient_name").Find(&out).Error
	return out, err
}

func (r *InventoryRepository) exists(tx *gorm.DB, ingredientID uint) (bool, error) {
	var cnt int64
	if err := tx.Model(&entity.Ingredient{}).Where("id = ?", ingredientID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
