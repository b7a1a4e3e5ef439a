package middlewares

import (
	"context"
	"net/http"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/exceptions"
	"postcare-service/internal/pkg/utils"
	"strings"
	"time"
)

// Authenticate verifies the bearer token and loads the full identity into
// the request context, so downstream handlers never re-fetch the caller.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := m.JWTManager.VerifyToken(token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		user, err := m.UserRepository.FindByID(ctx, userID)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if user == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenUserNotFound(nil))
			return
		}

		requestCtx := context.WithValue(r.Context(), constvars.CONTEXT_USER_KEY, user)
		next.ServeHTTP(w, r.WithContext(requestCtx))
	})
}
