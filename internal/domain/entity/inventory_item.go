package entity

import "time"

// InventoryItem is a stocked ingredient or supply belonging to one branch.
type InventoryItem struct {
	ID        uint      `json:"id"`         // Unique identifier of the inventory item.
	Name      string    `json:"name"`       // Display name.
	Quantity  int       `json:"quantity"`   // Current stock level in Unit.
	Unit      string    `json:"unit"`       // Measurement unit, e.g. "kg", "pcs".
	Threshold int       `json:"threshold"`  // Stock level at or below which the item counts as low.
	BranchID  uint      `json:"branch_id"`  // Owning branch.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this item was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// IsLowStock reports whether the current quantity is at or below the threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.Threshold
}
