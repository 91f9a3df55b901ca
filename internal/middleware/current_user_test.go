package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"petcare-landing/internal/ports/auth"
)

type fakeSource struct {
	claims auth.Claims
	ok     bool
}

func (f fakeSource) CurrentClaims(ctx context.Context) (auth.Claims, bool) {
	return f.claims, f.ok
}

func TestCurrentUser_SetsClaimsWhenLoggedIn(t *testing.T) {
	var got auth.Claims
	var found bool
	h := CurrentUser(fakeSource{claims: auth.Claims{UserID: "u-1", Email: "ana@petcare.com"}, ok: true})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, found = GetClaims(r.Context())
		}),
	)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.True(t, found)
	assert.Equal(t, "u-1", got.UserID)
}

func TestCurrentUser_NoClaimsWhenLoggedOut(t *testing.T) {
	for name, src := range map[string]ClaimsSource{
		"sin usuario": fakeSource{ok: false},
		"id vacío":    fakeSource{claims: auth.Claims{UserID: " "}, ok: true},
		"sin source":  nil,
	} {
		t.Run(name, func(t *testing.T) {
			found := true
			h := CurrentUser(src)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, found = GetClaims(r.Context())
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/me", nil))
			assert.False(t, found)
		})
	}
}
