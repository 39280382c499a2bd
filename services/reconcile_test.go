package services

import (
	"errors"
	"testing"

	"grillpos/pkg/apperr"
)

func TestReconcileChargesForQuantityIncrease(t *testing.T) {
	f := newFixture(t)

	oldLines := []LineIn{{MenuItemID: f.burger.ID, Qty: 2, UnitPrice: 500}}
	out, err := f.svc.Submit(oldLines)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	newLines := []LineIn{{MenuItemID: f.burger.ID, Qty: 3, UnitPrice: 500}}
	charge, err := f.svc.Reconcile(out.ID, oldLines, newLines)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if charge != 500 {
		t.Fatalf("charge = %d, want 500", charge)
	}

	// net debit is one more burger, not an undo/redo of the whole order
	if got := f.count(f.patty); got != 97 {
		t.Fatalf("patties = %d, want 97", got)
	}

	detail, err := f.svc.Detail(out.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].Qty != 3 {
		t.Fatalf("stored snapshot not replaced: %+v", detail.Items)
	}
	if detail.Subtotal != 1500 {
		t.Fatalf("subtotal not recomputed: %d", detail.Subtotal)
	}
}

func TestReconcileRefundsAndDropsRemovedLine(t *testing.T) {
	f := newFixture(t)

	oldLines := []LineIn{
		{MenuItemID: f.burger.ID, Qty: 2, UnitPrice: 500},
		{MenuItemID: f.hotdog.ID, Qty: 1, UnitPrice: 300},
	}
	out, err := f.svc.Submit(oldLines)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	newLines := []LineIn{{MenuItemID: f.burger.ID, Qty: 1, UnitPrice: 500}}
	charge, err := f.svc.Reconcile(out.ID, oldLines, newLines)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if charge != -800 {
		t.Fatalf("charge = %d, want -800", charge)
	}

	detail, err := f.svc.Detail(out.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].MenuItemID != f.burger.ID {
		t.Fatalf("hot dog line still stored: %+v", detail.Items)
	}

	// credits: one burger's worth back, the frank back, bags net -1
	if got := f.count(f.frank); got != 100 {
		t.Fatalf("franks = %d, want 100", got)
	}
	if got := f.count(f.patty); got != 99 {
		t.Fatalf("patties = %d, want 99", got)
	}
	if got := f.count(f.bag); got != 99 {
		t.Fatalf("bags = %d, want 99", got)
	}
}

func TestReconcileDebitsWhenRemovalCleared(t *testing.T) {
	f := newFixture(t)

	oldLines := []LineIn{{
		MenuItemID:           f.burger.ID,
		Qty:                  2,
		UnitPrice:            500,
		Modification:         "No Pickles",
		RemovedIngredientIDs: []uint{f.pickles.ID},
	}}
	out, err := f.svc.Submit(oldLines)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := f.count(f.pickles); got != 100 {
		t.Fatalf("pickles = %d before edit, want 100", got)
	}

	// customer changed their mind: pickles back on
	newLines := []LineIn{{MenuItemID: f.burger.ID, Qty: 2, UnitPrice: 500}}
	charge, err := f.svc.Reconcile(out.ID, oldLines, newLines)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if charge != 0 {
		t.Fatalf("charge = %d, want 0", charge)
	}
	if got := f.count(f.pickles); got != 98 {
		t.Fatalf("pickles = %d after edit, want 98", got)
	}
}

func TestReconcileCreditsNewlyRemovedIngredient(t *testing.T) {
	f := newFixture(t)

	oldLines := []LineIn{{MenuItemID: f.burger.ID, Qty: 2, UnitPrice: 500}}
	out, err := f.svc.Submit(oldLines)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	newLines := []LineIn{{
		MenuItemID:           f.burger.ID,
		Qty:                  2,
		UnitPrice:            500,
		Modification:         "No Onions",
		RemovedIngredientIDs: []uint{f.onions.ID},
	}}
	if _, err := f.svc.Reconcile(out.ID, oldLines, newLines); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if got := f.count(f.onions); got != 100 {
		t.Fatalf("onions = %d, want 100", got)
	}
}

// A net-neutral edit on an ingredient must not fail even when its stock is
// exhausted; the whole point of diffing snapshots into one delta.
func TestReconcileNetNeutralEditUnderExhaustedStock(t *testing.T) {
	f := newFixture(t)
	f.setUnits(f.patty, 2)

	oldLines := []LineIn{{MenuItemID: f.burger.ID, Qty: 2, UnitPrice: 500}}
	out, err := f.svc.Submit(oldLines)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := f.count(f.patty); got != 0 {
		t.Fatalf("patties = %d, want 0", got)
	}

	// same quantity, pickles dropped: patty delta is zero
	newLines := []LineIn{{
		MenuItemID:           f.burger.ID,
		Qty:                  2,
		UnitPrice:            500,
		Modification:         "No Pickles",
		RemovedIngredientIDs: []uint{f.pickles.ID},
	}}
	charge, err := f.svc.Reconcile(out.ID, oldLines, newLines)
	if err != nil {
		t.Fatalf("reconcile failed on net-neutral edit: %v", err)
	}
	if charge != 0 {
		t.Fatalf("charge = %d, want 0", charge)
	}
	if got := f.count(f.pickles); got != 100 {
		t.Fatalf("pickles = %d, want 100", got)
	}
}

func TestReconcileInsufficientStockLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)

	oldLines := []LineIn{{MenuItemID: f.burger.ID, Qty: 1, UnitPrice: 500}}
	out, err := f.svc.Submit(oldLines)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	f.setUnits(f.patty, 0)

	newLines := []LineIn{{MenuItemID: f.burger.ID, Qty: 3, UnitPrice: 500}}
	_, err = f.svc.Reconcile(out.ID, oldLines, newLines)
	if !errors.Is(err, apperr.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}

	detail, err := f.svc.Detail(out.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].Qty != 1 {
		t.Fatalf("line snapshot changed on failed reconcile: %+v", detail.Items)
	}
	if got := f.count(f.bun); got != 99 {
		t.Fatalf("buns = %d, want 99", got)
	}
}

func TestReconcileFulfilledTransactionFails(t *testing.T) {
	f := newFixture(t)

	oldLines := []LineIn{{MenuItemID: f.burger.ID, Qty: 1, UnitPrice: 500}}
	out, err := f.svc.Submit(oldLines)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := f.svc.Fulfill(out.ID); err != nil {
		t.Fatalf("fulfill: %v", err)
	}

	_, err = f.svc.Reconcile(out.ID, oldLines, oldLines)
	if !errors.Is(err, apperr.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestReconcileUnknownTransaction(t *testing.T) {
	f := newFixture(t)

	lines := []LineIn{{MenuItemID: f.burger.ID, Qty: 1, UnitPrice: 500}}
	if _, err := f.svc.Reconcile(4242, lines, lines); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// Ledger debits across a submit, two reconciles and a fulfill must equal
// exactly what the final snapshot implies; intermediate snapshots leave no
// residue.
func TestInventoryConservationAcrossEdits(t *testing.T) {
	f := newFixture(t)

	snap1 := []LineIn{{MenuItemID: f.burger.ID, Qty: 2, UnitPrice: 500}}
	out, err := f.svc.Submit(snap1)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	snap2 := []LineIn{{
		MenuItemID:           f.burger.ID,
		Qty:                  3,
		UnitPrice:            500,
		Modification:         "No Onions",
		RemovedIngredientIDs: []uint{f.onions.ID},
	}}
	if charge, err := f.svc.Reconcile(out.ID, snap1, snap2); err != nil || charge != 500 {
		t.Fatalf("first reconcile: charge=%d err=%v", charge, err)
	}

	snap3 := []LineIn{
		{
			MenuItemID:           f.burger.ID,
			Qty:                  1,
			UnitPrice:            500,
			Modification:         "No Onions",
			RemovedIngredientIDs: []uint{f.onions.ID},
		},
		{MenuItemID: f.hotdog.ID, Qty: 2, UnitPrice: 300},
	}
	if charge, err := f.svc.Reconcile(out.ID, snap2, snap3); err != nil || charge != -400 {
		t.Fatalf("second reconcile: charge=%d err=%v", charge, err)
	}

	if err := f.svc.Fulfill(out.ID); err != nil {
		t.Fatalf("fulfill: %v", err)
	}

	// final snapshot: 1 burger (no onions) + 2 hot dogs
	for _, tc := range []struct {
		name string
		got  int
		want int
	}{
		{"buns", f.count(f.bun), 99},
		{"patties", f.count(f.patty), 99},
		{"pickles", f.count(f.pickles), 99},
		{"onions", f.count(f.onions), 100},
		{"franks", f.count(f.frank), 98},
		{"bags", f.count(f.bag), 97},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}
