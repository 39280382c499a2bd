package services

import (
	"fmt"

	"grillpos/entity"
	"grillpos/pkg/apperr"
	"grillpos/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InventoryService fronts the ledger for the restock report and manual stock
// intake. Order flow never goes through here; it debits the ledger directly
// inside its own transactions.
type InventoryService struct {
	DB   *gorm.DB
	Repo *repository.InventoryRepository
	Log  *zap.Logger
}

func NewInventoryService(db *gorm.DB, repo *repository.InventoryRepository, logger *zap.Logger) *InventoryService {
	return &InventoryService{DB: db, Repo: repo, Log: logger}
}

func (s *InventoryService) CurrentCount(ingredientID uint) (int, error) {
	return s.Repo.CurrentCount(ingredientID)
}

func (s *InventoryService) IsBelowMinimum(ingredientID uint) (bool, error) {
	return s.Repo.IsBelowMinimum(ingredientID)
}

// RestockReport lists every ingredient under its minimum threshold.
func (s *InventoryService) RestockReport() ([]entity.Ingredient, error) {
	return s.Repo.ListBelowMinimum()
}

// ReceiveDelivery credits stock after a supplier delivery.
func (s *InventoryService) ReceiveDelivery(ingredientID uint, amount int) error {
	if amount < 1 {
		return fmt.Errorf("%w: delivery amount must be at least 1", apperr.ErrValidation)
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Credit(tx, ingredientID, amount)
	})
	if err != nil {
		return err
	}
	s.Log.Info("delivery received",
		zap.Uint("ingredient_id", ingredientID),
		zap.Int("amount", amount))
	return nil
}
