package entity

import "time"

// User is the core account entity, covering both customers and staff.
// BranchID is a pointer on purpose: branch assignment is checked by presence,
// never by zero-value truthiness, so branch id 0 stays a valid assignment.
type User struct {
	ID           uint      // Unique identifier of the account.
	Name         string    // Display name.
	Email        string    // Login identifier, unique across accounts.
	PasswordHash string    // bcrypt hash of the account password.
	Role         Role      // The single role this account acts as.
	BranchID     *uint     // Branch assignment; nil for customers and branch-agnostic management.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
