// Package middleware contains the HTTP middlewares of the API.
package middleware

import (
	"strconv"
	"strings"

	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/policy"
	"steakz/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// keyIdentity is the echo.Context key the authenticated identity is stored under.
const keyIdentity = "identity"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the resulting
// policy identity on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrNoCredential
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidCredential.WrapMessage("authorization header must carry a Bearer token")
		}

		token, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return domainerrors.ErrExpiredCredential
			}

			return domainerrors.ErrInvalidCredential
		}
		if !token.Valid {
			return domainerrors.ErrInvalidCredential
		}

		identity, err := identityFromClaims(token)
		if err != nil {
			return err
		}

		c.Set(keyIdentity, identity)

		return next(c)
	}
}

// GetIdentity extracts the authenticated identity set by Authenticate.
func GetIdentity(c echo.Context) (policy.Identity, error) {
	identity, ok := c.Get(keyIdentity).(policy.Identity)
	if !ok {
		return policy.Identity{}, domainerrors.ErrNotAuthenticated
	}

	return identity, nil
}

// identityFromClaims turns validated token claims into a policy identity.
// Structurally broken claims are rejected as MALFORMED_CLAIMS; the token
// signature alone does not guarantee a shape we can authorize against.
func identityFromClaims(token *jwt.Token) (policy.Identity, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return policy.Identity{}, domainerrors.ErrMalformedClaims
	}

	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return policy.Identity{}, domainerrors.ErrMalformedClaims.WrapMessage("not an access token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return policy.Identity{}, domainerrors.ErrMalformedClaims.WrapMessage("subject claim missing")
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return policy.Identity{}, domainerrors.ErrMalformedClaims.WrapMessage("subject claim is not an account id")
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return policy.Identity{}, domainerrors.ErrMalformedClaims.WrapMessage("role claim missing")
	}
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return policy.Identity{}, domainerrors.ErrMalformedClaims.WrapMessage("unknown role claim")
	}

	identity := policy.Identity{
		UserID: uint(userID),
		Role:   role,
	}

	// JSON numbers decode as float64; absence means no branch assignment.
	if rawBranch, exists := claims["branch_id"]; exists {
		branchFloat, ok := rawBranch.(float64)
		if !ok {
			return policy.Identity{}, domainerrors.ErrMalformedClaims.WrapMessage("branch claim is not a number")
		}
		branchID := uint(branchFloat)
		identity.BranchID = &branchID
	}

	return identity, nil
}
