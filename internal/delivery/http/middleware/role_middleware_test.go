package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ayursutra/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func requestWithPrincipal(role entity.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	principal := entity.Principal{ID: uuid.New(), Role: role}
	ctx := context.WithValue(req.Context(), PrincipalKey, principal)
	return req.WithContext(ctx)
}

func TestRequireRoleAllows(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	RequireDoctor(next).ServeHTTP(rec, requestWithPrincipal(entity.RoleDoctor))
	assert.True(t, called)
}

func TestRequireRoleForbids(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})

	rec := httptest.NewRecorder()
	RequireDoctor(next).ServeHTTP(rec, requestWithPrincipal(entity.RolePatient))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleWithoutPrincipal(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	RequireAdmin(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireStaffExcludesPatients(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleDoctor, entity.RoleTherapist} {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		rec := httptest.NewRecorder()
		RequireStaff(next).ServeHTTP(rec, requestWithPrincipal(role))
		assert.True(t, called, "role %s", role)
	}

	rec := httptest.NewRecorder()
	RequireStaff(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})).ServeHTTP(rec, requestWithPrincipal(entity.RolePatient))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
