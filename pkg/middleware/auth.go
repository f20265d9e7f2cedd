package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

type userIDKey struct{}

// CurrentUserID returns the authenticated user id injected by Auth, or ""
// on an unguarded route.
func CurrentUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithUserID stores a user id in ctx. Exposed for tests that exercise
// guarded handlers directly.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// Auth guards a route with bearer-token authentication. It rejects the
// request with a 401 when the Authorization header is absent, carries no
// token, or the token fails verification. On success the verified user id
// is injected into the request context; whether that id still denotes an
// existing account is not re-checked here.
func Auth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Unauthorized(w, "Authorization header missing")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
			if token == "" {
				response.Unauthorized(w, "Token missing")
				return
			}

			userID, err := tokens.ValidateToken(token)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
