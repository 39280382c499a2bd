package repository

import (
	"errors"
	"fmt"
	"time"

	"grillpos/entity"
	"grillpos/pkg/apperr"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GetMenuBasics returns just what pricing and validation need (id, name, price).
func (r *MenuRepository) GetMenuBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, item_name, price").First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, id)
	}
	return m, err
}

// GetRecipe returns the bill-of-materials rows for a menu item, fixed and
// removable alike.
func (r *MenuRepository) GetRecipe(menuItemID uint) ([]entity.RecipeItem, error) {
	var rows []entity.RecipeItem
	err := r.DB.Where("menu_item_id = ?", menuItemID).Find(&rows).Error
	return rows, err
}

// RecipeRow is one recipe line with its ingredient display name, for the
// customize modal.
type RecipeRow struct {
	IngredientID   uint   `json:"ingredientId"`
	IngredientName string `json:"ingredientname"`
	Quantity       int    `json:"quantity"`
	Removable      bool   `json:"removable"`
}

func (r *MenuRepository) GetRecipeRows(menuItemID uint) ([]RecipeRow, error) {
	var rows []RecipeRow
	err := r.DB.Table("recipe_items AS ri").
		Select("ri.ingredient_id, i.ingredient_name, ri.quantity, ri.removable").
		Joins("JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("ri.menu_item_id = ? AND ri.deleted_at IS NULL", menuItemID).
		Order("ri.id").
		Scan(&rows).Error
	return rows, err
}

// ListAvailable returns the menu grid, hiding seasonal items outside their
// window.
func (r *MenuRepository) ListAvailable(now time.Time) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("seasonal_start IS NULL OR (seasonal_start <= ? AND seasonal_end >= ?)", now, now).
		Order("category_id, item_name").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) MenuItemExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
