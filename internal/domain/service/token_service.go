package service

import (
	"time"

	"steakz/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService abstracts issuing and validating authentication tokens.
// Access tokens carry the account id, role and optional branch assignment;
// the middleware turns a validated token into the policy identity.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair for an account.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its parsed form.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
