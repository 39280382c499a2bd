package services

import (
	"sort"
	"strconv"
	"strings"
)

// RemoveLineQty is the sentinel a keypad sends to delete a line outright.
const RemoveLineQty = -1

// Modification records the ingredients a customer opted out of on a line,
// plus the label printed on tickets ("No Pickles, No Onions"). Identity is the
// id set; the label is display only.
type Modification struct {
	RemovedIngredientIDs []uint `json:"removedIngredientIds"`
	Label                string `json:"label"`
}

// key canonicalizes the removed set so that two lines with the same removals
// in different order still merge.
func (m Modification) key() string {
	if len(m.RemovedIngredientIDs) == 0 {
		return ""
	}
	ids := make([]uint, len(m.RemovedIngredientIDs))
	copy(ids, m.RemovedIngredientIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

// CartLine is one row of an unsubmitted order. UnitPrice is captured when the
// line is added and never re-read from the catalog, so historical orders stay
// stable across price changes.
type CartLine struct {
	LineID       int          `json:"lineId"`
	MenuItemID   uint         `json:"menuItemId"`
	Qty          int          `json:"qty"`
	UnitPrice    int64        `json:"unitPrice"`
	Modification Modification `json:"modification"`
}

// Cart accumulates lines before submission. It is a plain value type: no
// persistence, no inventory. Snapshots handed out are copies, never aliases
// into the live line slice.
type Cart struct {
	nextID int
	lines  []CartLine
}

// AddOrIncrement merges into an existing line when menu item and modification
// match, otherwise appends a new line with quantity 1. Returns the line id.
func (c *Cart) AddOrIncrement(menuItemID uint, unitPrice int64, mod Modification) int {
	k := mod.key()
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID && c.lines[i].Modification.key() == k {
			c.lines[i].Qty++
			return c.lines[i].LineID
		}
	}
	c.nextID++
	c.lines = append(c.lines, CartLine{
		LineID:       c.nextID,
		MenuItemID:   menuItemID,
		Qty:          1,
		UnitPrice:    unitPrice,
		Modification: mod,
	})
	return c.nextID
}

// SetQuantity sets a line's quantity directly. Zero or the remove sentinel
// deletes the line; a cart never holds a zero-quantity row.
func (c *Cart) SetQuantity(lineID, qty int) {
	if qty <= 0 {
		c.RemoveLine(lineID)
		return
	}
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines[i].Qty = qty
			return
		}
	}
}

func (c *Cart) RemoveLine(lineID int) {
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a deep copy of the current lines.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	for i := range out {
		ids := make([]uint, len(out[i].Modification.RemovedIngredientIDs))
		copy(ids, out[i].Modification.RemovedIngredientIDs)
		out[i].Modification.RemovedIngredientIDs = ids
	}
	return out
}

// Snapshot converts the cart into submission lines.
func (c *Cart) Snapshot() []LineIn {
	lines := c.Lines()
	out := make([]LineIn, 0, len(lines))
	for _, ln := range lines {
		out = append(out, LineIn{
			MenuItemID:           ln.MenuItemID,
			Qty:                  ln.Qty,
			UnitPrice:            ln.UnitPrice,
			Modification:         ln.Modification.Label,
			RemovedIngredientIDs: ln.Modification.RemovedIngredientIDs,
		})
	}
	return out
}
