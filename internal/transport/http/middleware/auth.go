package middleware

import (
	"context"
	"net/http"
	"strings"

	"bizsuite/internal/domain/identity"
)

type ctxKey string

const ctxKeyEmployee ctxKey = "employee"

// Auth resolves the employee identity from the bearer token once, at the
// edge. Handlers read it via GetEmployee and pass it explicitly into domain
// calls; nothing below transport touches the token.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := identity.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyEmployee, *claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetEmployee(ctx context.Context) (identity.Claims, bool) {
	claims, ok := ctx.Value(ctxKeyEmployee).(identity.Claims)
	return claims, ok
}
