package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

type requestIDKey struct{}

// RequestID присваивает запросу идентификатор (входящий X-Request-ID сохраняется)
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(domain.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(domain.HeaderRequestID, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext идентификатор текущего запроса
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
