package entity

import "time"

// Branch is a physical restaurant location. It scopes staff, menu items,
// inventory and orders.
type Branch struct {
	ID        uint      `json:"id"`         // Unique identifier of the branch.
	Name      string    `json:"name"`       // Human-readable branch name.
	Address   string    `json:"address"`    // Full street address, used for delivery branch resolution.
	Phone     string    `json:"phone"`      // Contact phone number.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this branch was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
