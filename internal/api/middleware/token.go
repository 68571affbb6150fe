package middleware

import (
	"net/http"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
)

// RequireToken отвечает 401, если в запросе нет cookie auth_token
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handlers.TokenFromRequest(r) == "" {
			handlers.RespondUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
