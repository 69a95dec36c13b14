package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ayursutra/config"
	"ayursutra/internal/domain/entity"
	"ayursutra/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the rejection paths that fire before the Redis
// revocation check, so no Redis client is needed.

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func runAuthenticate(t *testing.T, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	m := NewAuthMiddleware(testJWTService(), nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, req)
	return rec
}

func TestAuthenticateMissingHeader(t *testing.T) {
	rec := runAuthenticate(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		rec := runAuthenticate(t, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	rec := runAuthenticate(t, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	svc := testJWTService()
	token, _, err := svc.GenerateRefreshToken(entity.Principal{ID: uuid.New(), Role: entity.RoleDoctor})
	require.NoError(t, err)

	rec := runAuthenticate(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetPrincipalFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetPrincipalFromContext(req.Context())
	assert.False(t, ok)
}
