package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"steakz/config"
	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/infra/auth"
	"steakz/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(authorization string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// issueAccessToken signs a real token so the middleware exercises the full
// validation path instead of a mocked one.
func issueAccessToken(t *testing.T, user *entity.User) (string, *AuthMiddleware) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	access, _, err := tokenSvc.GenerateTokens(user)
	require.NoError(t, err)

	return access, NewAuthMiddleware(tokenSvc)
}

func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	branchID := uint(3)
	access, m := issueAccessToken(t, &entity.User{ID: 42, Role: entity.RoleCashier, BranchID: &branchID})

	c := newTestContext("Bearer " + access)
	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)

	identity, err := GetIdentity(c)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, entity.RoleCashier, identity.Role)
	require.NotNil(t, identity.BranchID)
	assert.Equal(t, uint(3), *identity.BranchID)
}

func TestAuthMiddleware_Authenticate_CustomerHasNoBranch(t *testing.T) {
	access, m := issueAccessToken(t, &entity.User{ID: 42, Role: entity.RoleCustomer})

	c := newTestContext("Bearer " + access)
	require.NoError(t, m.Authenticate(okHandler)(c))

	identity, err := GetIdentity(c)
	require.NoError(t, err)
	assert.Nil(t, identity.BranchID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	_, m := issueAccessToken(t, &entity.User{ID: 42, Role: entity.RoleCustomer})

	err := m.Authenticate(okHandler)(newTestContext(""))

	requireErrorCode(t, err, "NO_CREDENTIAL")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	access, m := issueAccessToken(t, &entity.User{ID: 42, Role: entity.RoleCustomer})

	err := m.Authenticate(okHandler)(newTestContext("Basic " + access))

	requireErrorCode(t, err, "INVALID_CREDENTIAL")
}

func TestAuthMiddleware_Authenticate_GarbageToken(t *testing.T) {
	_, m := issueAccessToken(t, &entity.User{ID: 42, Role: entity.RoleCustomer})

	err := m.Authenticate(okHandler)(newTestContext("Bearer not.a.token"))

	requireErrorCode(t, err, "INVALID_CREDENTIAL")
}

func TestAuthMiddleware_Authenticate_ExpiredToken(t *testing.T) {
	mockTokenSvc := service.NewMockTokenService(t)
	mockTokenSvc.EXPECT().
		ValidateAccessToken("stale").
		Return(nil, jwt.ErrTokenExpired)

	m := NewAuthMiddleware(mockTokenSvc)
	err := m.Authenticate(okHandler)(newTestContext("Bearer stale"))

	requireErrorCode(t, err, "EXPIRED_CREDENTIAL")
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	signed := signClaims(t, jwt.MapClaims{"sub": "42", "type": "refresh", "role": "customer"})

	err := authenticateClaims(t, signed)

	requireErrorCode(t, err, "MALFORMED_CLAIMS")
}

func TestAuthMiddleware_Authenticate_MalformedClaims(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing subject", jwt.MapClaims{"type": "access", "role": "customer"}},
		{"non-numeric subject", jwt.MapClaims{"sub": "forty-two", "type": "access", "role": "customer"}},
		{"missing role", jwt.MapClaims{"sub": "42", "type": "access"}},
		{"unknown role", jwt.MapClaims{"sub": "42", "type": "access", "role": "waiter"}},
		{"branch claim not a number", jwt.MapClaims{"sub": "42", "type": "access", "role": "chef", "branch_id": "three"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := authenticateClaims(t, signClaims(t, tc.claims))

			requireErrorCode(t, err, "MALFORMED_CLAIMS")
		})
	}
}

func TestGetIdentity_Unauthenticated(t *testing.T) {
	_, err := GetIdentity(newTestContext(""))

	requireErrorCode(t, err, "NOT_AUTHENTICATED")
}

func signClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	return signed
}

func authenticateClaims(t *testing.T, signed string) error {
	t.Helper()

	_, m := issueAccessToken(t, &entity.User{ID: 1, Role: entity.RoleCustomer})

	return m.Authenticate(okHandler)(newTestContext("Bearer " + signed))
}
