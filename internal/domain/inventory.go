package domain

// InventorySlot is one (owner, item) ownership record. A slot with
// quantity zero is logically absent and is removed on mutation.
type InventorySlot struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// Inventory is the per-user item ledger, stored as a JSONB document.
type Inventory struct {
	Slots      []InventorySlot `json:"slots"`
	LastUpdate int64           `json:"last_update,omitempty"`
}

// Quantity returns the owned quantity for an item, zero if absent.
func (inv *Inventory) Quantity(itemID int) int {
	for _, slot := range inv.Slots {
		if slot.ItemID == itemID {
			return slot.Quantity
		}
	}
	return 0
}

// Add increments the slot for an item, creating it if absent.
// Quantities of zero or less are ignored.
func (inv *Inventory) Add(itemID, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range inv.Slots {
		if inv.Slots[i].ItemID == itemID {
			inv.Slots[i].Quantity += quantity
			return
		}
	}
	inv.Slots = append(inv.Slots, InventorySlot{ItemID: itemID, Quantity: quantity})
}

// Remove decrements the slot for an item. The removal is all or
// nothing: if the owned quantity is less than requested, nothing is
// deducted and ErrInsufficientQuantity is returned. A slot drained to
// zero is deleted.
func (inv *Inventory) Remove(itemID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidInput
	}
	for i := range inv.Slots {
		if inv.Slots[i].ItemID != itemID {
			continue
		}
		if inv.Slots[i].Quantity < quantity {
			return ErrInsufficientQuantity
		}
		inv.Slots[i].Quantity -= quantity
		if inv.Slots[i].Quantity == 0 {
			inv.Slots = append(inv.Slots[:i], inv.Slots[i+1:]...)
		}
		return nil
	}
	return ErrInsufficientQuantity
}
