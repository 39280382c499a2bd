package services

import (
	"fmt"

	"grillpos/pkg/apperr"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reconcile applies an edit to a still-in-progress transaction. It diffs the
// two snapshots into a single net delta per ingredient (never undo-all /
// redo-all, so net-neutral edits cannot hit a transient shortfall), applies
// the delta and the new line set in one DB transaction, and returns the
// signed monetary delta in cents: positive means charge, negative refund.
//
// The new snapshot is committed unconditionally once the inventory delta
// succeeds; payment presentation is the caller's problem. If any debit would
// drive an ingredient negative, nothing changes.
func (s *TransactionService) Reconcile(transactionID uint, oldLines, newLines []LineIn) (int64, error) {
	mu := s.lockFor(transactionID)
	mu.Lock()
	defer mu.Unlock()

	subtotal, err := s.validateLines(newLines)
	if err != nil {
		return 0, err
	}

	t, err := s.Repo.GetTransaction(transactionID)
	if err != nil {
		return 0, err
	}
	if t.TransactionStatusID != s.Status.InProgress {
		return 0, fmt.Errorf("%w: transaction %d is not in progress", apperr.ErrInvalidTransition, transactionID)
	}

	oldNeed, err := s.consumptionFor(oldLines)
	if err != nil {
		return 0, err
	}
	newNeed, err := s.consumptionFor(newLines)
	if err != nil {
		return 0, err
	}

	delta := make(map[uint]int, len(newNeed))
	for id, n := range newNeed {
		delta[id] = n
	}
	for id, n := range oldNeed {
		delta[id] -= n
	}

	taxAmount := taxFor(subtotal, s.TaxRateBP)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// re-check under the DB transaction; a concurrent fulfill may have
		// landed since the read above
		cur, err := s.Repo.GetTransactionForUpdate(tx, transactionID)
		if err != nil {
			return err
		}
		if cur.TransactionStatusID != s.Status.InProgress {
			return fmt.Errorf("%w: transaction %d is not in progress", apperr.ErrInvalidTransition, transactionID)
		}

		if err := s.applyDelta(tx, delta); err != nil {
			return err
		}
		if err := s.Repo.ReplaceItems(tx, transactionID, buildItems(newLines)); err != nil {
			return err
		}
		return s.Repo.UpdateTotals(tx, transactionID, subtotal, taxAmount, subtotal+taxAmount)
	})
	if err != nil {
		return 0, err
	}

	// Charge/refund is the plain line-total difference; tax presentation is
	// left to the register.
	charge := lineTotal(newLines) - lineTotal(oldLines)

	s.Log.Info("transaction reconciled",
		zap.Uint("transaction_id", transactionID),
		zap.Int64("charge", charge))
	return charge, nil
}
