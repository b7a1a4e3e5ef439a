package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"postcare-service/internal/app/models"
	"postcare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func callRestrictTo(t *testing.T, allowedRoles []string, callerRole string) *httptest.ResponseRecorder {
	t.Helper()
	m := &Middlewares{Log: zap.NewNop()}

	handler := m.RestrictTo(allowedRoles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if callerRole != "" {
		user := &models.User{ID: "64f1b2a3c4d5e6f7a8b9c0d1", Role: callerRole}
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_USER_KEY, user))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRestrictTo_AllowsListedRole(t *testing.T) {
	rec := callRestrictTo(t, []string{constvars.UserTypeProvider}, constvars.UserTypeProvider)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRestrictTo_RejectsOtherRole(t *testing.T) {
	rec := callRestrictTo(t, []string{constvars.UserTypeProvider}, constvars.UserTypePatient)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied")
}

func TestRestrictTo_DoctorAliasAdmitsProvider(t *testing.T) {
	rec := callRestrictTo(t, []string{constvars.RoleDoctor}, constvars.UserTypeProvider)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRestrictTo_MissingUserIsUnauthorized(t *testing.T) {
	rec := callRestrictTo(t, []string{constvars.UserTypeProvider}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
