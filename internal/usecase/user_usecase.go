package usecase

import (
	"context"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/policy"
)

// RegisterInput carries a customer self-registration request.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput carries a login request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token pair and the authenticated account.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *UserSummary `json:"user"`
}

// UserSummary is the account shape returned to clients; it never carries
// the password hash.
type UserSummary struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
	BranchID *uint       `json:"branch_id,omitempty"`
}

// CreateStaffInput carries a staff account creation request.
type CreateStaffInput struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     entity.Role `json:"role" validate:"required"`
	BranchID *uint       `json:"branch_id,omitempty"`
}

// UserUsecase defines account and staff management operations.
type UserUsecase interface {
	// Register creates a customer account and logs it in.
	Register(ctx context.Context, input *RegisterInput) (*LoginOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CreateStaff creates a staff account with a role and branch assignment.
	// Branch-scoped roles require a branch; management roles must not have one.
	CreateStaff(ctx context.Context, identity policy.Identity, input *CreateStaffInput) (*UserSummary, error)

	// ListStaff retrieves staff accounts visible to the identity.
	ListStaff(ctx context.Context, identity policy.Identity, branchID *uint) ([]*UserSummary, error)
}
