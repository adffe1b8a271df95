package auth

import (
	"context"
	"net/http"
	"strings"

	"smartparking/internal/repository"
	"smartparking/internal/service"
)

type contextKey struct{}

var sessionKey contextKey

// SessionMiddleware rejects requests without a valid bearer session token
// and stores the session on the request context for handlers.
func SessionMiddleware(authSvc service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			session, err := authSvc.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

func WithSession(ctx context.Context, session *repository.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the session placed by SessionMiddleware, or nil.
func SessionFromContext(ctx context.Context) *repository.Session {
	session, _ := ctx.Value(sessionKey).(*repository.Session)
	return session
}
