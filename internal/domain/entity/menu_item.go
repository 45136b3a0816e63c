package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a sellable catalog entry belonging to one branch.
// Its price is authoritative at order time only: orders snapshot the unit
// price, so later catalog changes never affect existing orders.
type MenuItem struct {
	ID          uint            `json:"id"`           // Unique identifier of the menu item.
	Name        string          `json:"name"`         // Display name.
	Price       decimal.Decimal `json:"price"`        // Current catalog price, non-negative, 2 decimal places.
	Category    string          `json:"category"`     // Free-form category, e.g. "starters", "grill".
	IsAvailable bool            `json:"is_available"` // Whether the item can currently be ordered.
	BranchID    uint            `json:"branch_id"`    // Owning branch.
	CreatedAt   time.Time       `json:"created_at"`   // Timestamp of when this item was created.
	UpdatedAt   time.Time       `json:"updated_at"`   // Timestamp of the last modification.
}
