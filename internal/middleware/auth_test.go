package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/session"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, role models.UserRole, anonymous bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if !anonymous {
		identity := &session.Identity{ID: uuid.New(), Role: role}
		req = req.WithContext(WithIdentity(req.Context(), identity))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(okHandler())

	rec := doRequest(t, h, "", true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Vous devez être connecté."}`, rec.Body.String())

	rec = doRequest(t, h, models.RoleClient, false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleDistinguishes401From403(t *testing.T) {
	h := RequireRole(models.RoleEmployee)(okHandler())

	// No session at all: 401
	rec := doRequest(t, h, "", true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Session exists but role insufficient: 403
	rec = doRequest(t, h, models.RoleClient, false)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleOrdering(t *testing.T) {
	employeeGate := RequireRole(models.RoleEmployee)(okHandler())
	adminGate := RequireRole(models.RoleAdmin)(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(t, employeeGate, models.RoleEmployee, false).Code)
	// Admin satisfies employee-level checks
	assert.Equal(t, http.StatusOK, doRequest(t, employeeGate, models.RoleAdmin, false).Code)

	assert.Equal(t, http.StatusForbidden, doRequest(t, adminGate, models.RoleEmployee, false).Code)
	assert.Equal(t, http.StatusOK, doRequest(t, adminGate, models.RoleAdmin, false).Code)
}
