package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"grillpos/entity"
	"grillpos/pkg/apperr"
	"grillpos/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StatusIDs struct {
	InProgress uint
	Fulfilled  uint
}

type TransactionService struct {
	DB       *gorm.DB
	Repo     *repository.TransactionRepository
	MenuRepo *repository.MenuRepository
	Ledger   *repository.InventoryRepository

	Status    StatusIDs
	TaxRateBP int64
	Log       *zap.Logger

	// one mutex per transaction id; serializes reconciles of the same order
	editLocks sync.Map
}

func NewTransactionService(
	db *gorm.DB,
	repo *repository.TransactionRepository,
	menuRepo *repository.MenuRepository,
	ledger *repository.InventoryRepository,
	taxRateBP int64,
	logger *zap.Logger,
) *TransactionService {
	s := &TransactionService{
		DB: db, Repo: repo, MenuRepo: menuRepo, Ledger: ledger,
		TaxRateBP: taxRateBP, Log: logger,
	}

	if id, err := repo.GetStatusIDByName("in progress"); err == nil {
		s.Status.InProgress = id
	}
	if id, err := repo.GetStatusIDByName("fulfilled"); err == nil {
		s.Status.Fulfilled = id
	}

	return s
}

// ----- DTOs from Controller -----

type LineIn struct {
	MenuItemID           uint   `json:"menuItemId"`
	Qty                  int    `json:"qty"`
	UnitPrice            int64  `json:"unitPrice"`
	Modification         string `json:"modification"`
	RemovedIngredientIDs []uint `json:"removedIngredientIds"`
}

type SubmitRes struct {
	ID       uint  `json:"id"`
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// ----- Submit -----

// Submit turns a cart snapshot into a persisted in-progress transaction and
// debits the ledger for every consumed ingredient. All debits happen inside
// one DB transaction: if any ingredient would go negative, nothing is
// persisted and the whole submission fails.
func (s *TransactionService) Submit(lines []LineIn) (*SubmitRes, error) {
	subtotal, err := s.validateLines(lines)
	if err != nil {
		return nil, err
	}
	taxAmount := taxFor(subtotal, s.TaxRateBP)
	total := subtotal + taxAmount

	need, err := s.consumptionFor(lines)
	if err != nil {
		return nil, err
	}

	var out SubmitRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		t := entity.Transaction{
			Subtotal:            subtotal,
			Tax:                 taxAmount,
			Total:               total,
			TransactionStatusID: s.Status.InProgress,
		}
		if err := s.Repo.CreateTransaction(tx, &t); err != nil {
			return err
		}

		for _, item := range buildItems(lines) {
			item.TransactionID = t.ID
			if err := s.Repo.CreateTransactionItem(tx, &item); err != nil {
				return err
			}
		}

		if err := s.applyDelta(tx, need); err != nil {
			return err
		}

		out = SubmitRes{ID: t.ID, Subtotal: subtotal, Tax: taxAmount, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("transaction submitted",
		zap.Uint("transaction_id", out.ID),
		zap.Int("lines", len(lines)),
		zap.Int64("total", out.Total))
	return &out, nil
}

// ----- Fulfill -----

// Fulfill moves an in-progress transaction to its terminal state.
func (s *TransactionService) Fulfill(transactionID uint) error {
	t, err := s.Repo.GetTransaction(transactionID)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, t.ID, s.Status.InProgress, s.Status.Fulfilled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: transaction %d is not in progress", apperr.ErrInvalidTransition, t.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Log.Info("transaction fulfilled", zap.Uint("transaction_id", transactionID))
	return nil
}

// ----- Detail & Listing -----

type ItemOut struct {
	MenuItemID           uint   `json:"menuItemId"`
	ItemName             string `json:"itemname"`
	Qty                  int    `json:"qty"`
	UnitPrice            int64  `json:"unitPrice"`
	Total                int64  `json:"total"`
	Modification         string `json:"modification"`
	RemovedIngredientIDs []uint `json:"removedIngredientIds"`
}

type TransactionDetail struct {
	ID        uint      `json:"id"`
	Subtotal  int64     `json:"subtotal"`
	Tax       int64     `json:"tax"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Items     []ItemOut `json:"items"`
}

func (s *TransactionService) Detail(transactionID uint) (*TransactionDetail, error) {
	t, err := s.Repo.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}
	status, err := s.Repo.GetStatusName(t.TransactionStatusID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetTransactionItems(t.ID)
	if err != nil {
		return nil, err
	}

	out := &TransactionDetail{
		ID: t.ID, Subtotal: t.Subtotal, Tax: t.Tax, Total: t.Total,
		Status: status, CreatedAt: t.CreatedAt,
		Items: make([]ItemOut, 0, len(items)),
	}
	for _, it := range items {
		removed := make([]uint, 0, len(it.Removals))
		for _, rm := range it.Removals {
			removed = append(removed, rm.IngredientID)
		}
		out.Items = append(out.Items, ItemOut{
			MenuItemID:           it.MenuItemID,
			ItemName:             it.MenuItem.ItemName,
			Qty:                  it.Qty,
			UnitPrice:            it.UnitPrice,
			Total:                it.Total,
			Modification:         it.Modification,
			RemovedIngredientIDs: removed,
		})
	}
	return out, nil
}

type KitchenOrder struct {
	TransactionID uint                     `json:"transactionid"`
	Components    []repository.ItemSummary `json:"components"`
}

// ListInProgress is the kitchen queue in submission order. Callers may poll it
// or subscribe to the websocket feed; the contract is the same.
func (s *TransactionService) ListInProgress() ([]KitchenOrder, error) {
	rows, err := s.Repo.ListInProgress(s.Status.InProgress)
	if err != nil {
		return nil, err
	}
	out := make([]KitchenOrder, 0, len(rows))
	for _, t := range rows {
		components, err := s.Repo.GetItemSummaries(t.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, KitchenOrder{TransactionID: t.ID, Components: components})
	}
	return out, nil
}

// ----- Shared helpers -----

func (s *TransactionService) validateLines(lines []LineIn) (int64, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w: order lines are required", apperr.ErrValidation)
	}
	var subtotal int64
	for _, ln := range lines {
		if ln.Qty < 1 {
			return 0, fmt.Errorf("%w: quantity must be at least 1", apperr.ErrValidation)
		}
		if ln.UnitPrice <= 0 {
			return 0, fmt.Errorf("%w: missing or non-positive price on menu item %d", apperr.ErrValidation, ln.MenuItemID)
		}
		ok, err := s.MenuRepo.MenuItemExists(ln.MenuItemID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("%w: unknown menu item %d", apperr.ErrValidation, ln.MenuItemID)
		}
		subtotal += ln.UnitPrice * int64(ln.Qty)
	}
	if subtotal <= 0 {
		return 0, fmt.Errorf("%w: total must be positive", apperr.ErrValidation)
	}
	return subtotal, nil
}

// consumptionFor aggregates per-ingredient usage implied by a line set:
// fixed recipe rows always count, removable rows count unless the line removed
// them, everything scaled by line quantity.
func (s *TransactionService) consumptionFor(lines []LineIn) (map[uint]int, error) {
	need := make(map[uint]int)
	for _, ln := range lines {
		recipe, err := s.MenuRepo.GetRecipe(ln.MenuItemID)
		if err != nil {
			return nil, err
		}
		removed := make(map[uint]bool, len(ln.RemovedIngredientIDs))
		for _, id := range ln.RemovedIngredientIDs {
			removed[id] = true
		}
		for _, r := range recipe {
			if r.Removable && removed[r.IngredientID] {
				continue
			}
			need[r.IngredientID] += r.Quantity * ln.Qty
		}
	}
	return need, nil
}

// applyDelta commits a per-ingredient net delta: positive entries debit,
// negative entries credit. Debits run first so a failed one rolls back before
// any credit lands. Ids are walked in order to keep lock ordering stable.
func (s *TransactionService) applyDelta(tx *gorm.DB, delta map[uint]int) error {
	ids := make([]uint, 0, len(delta))
	for id := range delta {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if d := delta[id]; d > 0 {
			if err := s.Ledger.Debit(tx, id, d); err != nil {
				return err
			}
		}
	}
	for _, id := range ids {
		if d := delta[id]; d < 0 {
			if err := s.Ledger.Credit(tx, id, -d); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildItems(lines []LineIn) []entity.TransactionItem {
	items := make([]entity.TransactionItem, 0, len(lines))
	for _, ln := range lines {
		removals := make([]entity.TransactionItemRemoval, 0, len(ln.RemovedIngredientIDs))
		for _, id := range ln.RemovedIngredientIDs {
			removals = append(removals, entity.TransactionItemRemoval{IngredientID: id})
		}
		items = append(items, entity.TransactionItem{
			MenuItemID:   ln.MenuItemID,
			Qty:          ln.Qty,
			UnitPrice:    ln.UnitPrice,
			Total:        ln.UnitPrice * int64(ln.Qty),
			Modification: ln.Modification,
			Removals:     removals,
		})
	}
	return items
}

func lineTotal(lines []LineIn) int64 {
	var sum int64
	for _, ln := range lines {
		sum += ln.UnitPrice * int64(ln.Qty)
	}
	return sum
}

// taxFor rounds half-up on the subtotal.
func taxFor(subtotal, rateBP int64) int64 {
	return (subtotal*rateBP + 5000) / 10000
}

func (s *TransactionService) lockFor(transactionID uint) *sync.Mutex {
	v, _ := s.editLocks.LoadOrStore(transactionID, &sync.Mutex{})
	return v.(*sync.Mutex)
}
