package middlewares

import (
	"net/http"
	"postcare-service/internal/app/models"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/exceptions"
	"postcare-service/internal/pkg/utils"
	"strings"
)

// RestrictTo admits only callers whose role is in the allowed set. The
// legacy "doctor" role name is still accepted by older dashboard builds, so
// allowing it also admits healthcare providers.
func (m *Middlewares) RestrictTo(roles ...string) func(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
		if role == constvars.RoleDoctor {
			allowed[constvars.UserTypeProvider] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value(constvars.CONTEXT_USER_KEY).(*models.User)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}

			if !allowed[user.Role] {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleForbidden(nil, strings.Join(roles, ", "), user.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
