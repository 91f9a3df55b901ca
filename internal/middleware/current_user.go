package middleware

import (
	"context"
	"net/http"
	"strings"

	"petcare-landing/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsSource resuelve el usuario actual (lo implementa users.Service).
// Es una interfaz para no importar el dominio desde aquí.
type ClaimsSource interface {
	CurrentClaims(ctx context.Context) (auth.Claims, bool)
}

// CurrentUser:
// - Si hay usuario actual en el store => setea claims en el contexto.
// - Si no, el request sigue igual; los handlers deciden si exigen auth.
func CurrentUser(src ClaimsSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if src == nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, ok := src.CurrentClaims(r.Context())
			if !ok || strings.TrimSpace(claims.UserID) == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// WithClaims permite inyectar claims en tests de handlers.
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}
