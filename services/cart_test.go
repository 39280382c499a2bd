package services

import "testing"

func TestAddOrIncrementMergesIdenticalLines(t *testing.T) {
	var c Cart

	noToppings := Modification{RemovedIngredientIDs: []uint{3, 4}, Label: "No Pickles, No Onions"}
	c.AddOrIncrement(1, 500, noToppings)

	// same removals in a different order must still merge
	sameReversed := Modification{RemovedIngredientIDs: []uint{4, 3}, Label: "No Onions, No Pickles"}
	c.AddOrIncrement(1, 500, sameReversed)

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
	if got := c.Lines()[0].Qty; got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}
}

func TestAddOrIncrementSeparatesDifferentModifications(t *testing.T) {
	var c Cart

	c.AddOrIncrement(1, 500, Modification{})
	c.AddOrIncrement(1, 500, Modification{RemovedIngredientIDs: []uint{3}, Label: "No Pickles"})

	if c.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", c.Len())
	}
	for _, ln := range c.Lines() {
		if ln.Qty != 1 {
			t.Fatalf("expected quantity 1 on line %d, got %d", ln.LineID, ln.Qty)
		}
	}
}

func TestSetQuantitySetsDirectly(t *testing.T) {
	var c Cart
	id := c.AddOrIncrement(1, 500, Modification{})

	c.SetQuantity(id, 5)

	if got := c.Lines()[0].Qty; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	var c Cart
	id := c.AddOrIncrement(1, 500, Modification{})

	c.SetQuantity(id, 0)

	if c.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", c.Len())
	}
}

func TestSetQuantityRemoveSentinel(t *testing.T) {
	var c Cart
	c.AddOrIncrement(1, 500, Modification{})
	id := c.AddOrIncrement(2, 300, Modification{})

	c.SetQuantity(id, RemoveLineQty)

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
	if got := c.Lines()[0].MenuItemID; got != 1 {
		t.Fatalf("wrong line removed, remaining menu item %d", got)
	}
}

func TestRemoveLine(t *testing.T) {
	var c Cart
	id := c.AddOrIncrement(1, 500, Modification{})

	c.RemoveLine(id)
	c.RemoveLine(id) // second delete is a no-op

	if c.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", c.Len())
	}
}

func TestLinesReturnsCopies(t *testing.T) {
	var c Cart
	c.AddOrIncrement(1, 500, Modification{RemovedIngredientIDs: []uint{3}})

	snap := c.Lines()
	snap[0].Qty = 99
	snap[0].Modification.RemovedIngredientIDs[0] = 42

	fresh := c.Lines()[0]
	if fresh.Qty != 1 {
		t.Fatalf("cart quantity mutated through snapshot: %d", fresh.Qty)
	}
	if fresh.Modification.RemovedIngredientIDs[0] != 3 {
		t.Fatalf("cart removals mutated through snapshot: %v", fresh.Modification.RemovedIngredientIDs)
	}
}

func TestSnapshotCarriesModification(t *testing.T) {
	var c Cart
	c.AddOrIncrement(7, 500, Modification{RemovedIngredientIDs: []uint{3}, Label: "No Pickles"})
	c.AddOrIncrement(7, 500, Modification{RemovedIngredientIDs: []uint{3}, Label: "No Pickles"})

	snap := c.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 line, got %d", len(snap))
	}
	ln := snap[0]
	if ln.MenuItemID != 7 || ln.Qty != 2 || ln.UnitPrice != 500 {
		t.Fatalf("unexpected line: %+v", ln)
	}
	if ln.Modification != "No Pickles" || len(ln.RemovedIngredientIDs) != 1 {
		t.Fatalf("modification not carried: %+v", ln)
	}
}
