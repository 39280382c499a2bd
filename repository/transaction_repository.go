package repository

import (
	"errors"
	"fmt"

	"grillpos/entity"
	"grillpos/pkg/apperr"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// ---------------- Transactions ----------------

func (r *TransactionRepository) CreateTransaction(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *TransactionRepository) GetTransaction(id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := r.DB.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaction %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) GetTransactionForUpdate(tx *gorm.DB, id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := tx.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaction %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &t, nil
}

// ListInProgress returns the kitchen queue in submission order.
func (r *TransactionRepository) ListInProgress(statusID uint) ([]entity.Transaction, error) {
	var out []entity.Transaction
	err := r.DB.Where("transaction_status_id = ?", statusID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips status only when the current status still matches
// fromID; the caller reads RowsAffected to detect a lost race or an invalid
// transition.
func (r *TransactionRepository) UpdateStatusGuard(tx *gorm.DB, transactionID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Transaction{}).
		Where("id = ? AND transaction_status_id = ?", transactionID, fromID).
		Update("transaction_status_id", toID)
	return res.RowsAffected, res.Error
}

func (r *TransactionRepository) UpdateTotals(tx *gorm.DB, transactionID uint, subtotal, taxAmount, total int64) error {
	return tx.Model(&entity.Transaction{}).
		Where("id = ?", transactionID).
		Updates(map[string]any{"subtotal": subtotal, "tax": taxAmount, "total": total}).Error
}

// ---------------- Transaction Items ----------------

func (r *TransactionRepository) CreateTransactionItem(tx *gorm.DB, ti *entity.TransactionItem) error {
	return tx.Create(ti).Error
}

func (r *TransactionRepository) GetTransactionItems(transactionID uint) ([]entity.TransactionItem, error) {
	var items []entity.TransactionItem
	err := r.DB.Model(&entity.TransactionItem{}).
		Where("transaction_id = ?", transactionID).
		Preload("Removals").
		Preload("MenuItem").
		Order("id").
		Find(&items).Error
	return items, err
}

// ReplaceItems swaps the stored line set for a reconciled transaction. Removal
// rows go first while their parent items are still live for the subquery.
func (r *TransactionRepository) ReplaceItems(tx *gorm.DB, transactionID uint, items []entity.TransactionItem) error {
	if err := tx.Exec(`
		UPDATE transaction_item_removals SET deleted_at = CURRENT_TIMESTAMP
		 WHERE deleted_at IS NULL
		   AND transaction_item_id IN (
			SELECT id FROM transaction_items
			 WHERE transaction_id = ? AND deleted_at IS NULL)
	`, transactionID).Error; err != nil {
		return err
	}
	if err := tx.Where("transaction_id = ?", transactionID).
		Delete(&entity.TransactionItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].TransactionID = transactionID
		if err := tx.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// ItemSummary is one kitchen display line: what to make and how many.
type ItemSummary struct {
	ItemName string `json:"itemname"`
	Quantity int    `json:"quantity"`
}

func (r *TransactionRepository) GetItemSummaries(transactionID uint) ([]ItemSummary, error) {
	var rows []ItemSummary
	err := r.DB.Table("transaction_items AS ti").
		Select("m.item_name, ti.qty AS quantity").
		Joins("JOIN menu_items m ON m.id = ti.menu_item_id").
		Where("ti.transaction_id = ? AND ti.deleted_at IS NULL", transactionID).
		Order("ti.id").
		Scan(&rows).Error
	return rows, err
}

// ---------------- Lookups ----------------

func (r *TransactionRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.TransactionStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

func (r *TransactionRepository) GetStatusName(id uint) (string, error) {
	var row struct{ StatusName string }
	err := r.DB.Model(&entity.TransactionStatus{}).
		Select("status_name").Where("id = ?", id).First(&row).Error
	return row.StatusName, err
}
