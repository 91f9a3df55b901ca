package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_NotConfigured(t *testing.T) {
	for _, cfg := range []Config{
		{},
		{BaseURL: "https://x.supabase.co"},
		{APIKey: "anon"},
		{BaseURL: "::not a url", APIKey: "anon"},
	} {
		c := NewClient(cfg)
		assert.False(t, c.IsConfigured(), "%+v", cfg)

		_, err := c.ListPlans(context.Background())
		assert.ErrorIs(t, err, ErrSupabaseNotConfigured)
	}

	var nilClient *Client
	assert.False(t, nilClient.IsConfigured())
}

func TestClient_ListTestimonials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/testimonials", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 7, "name": "Paula", "location": "Recife, PE", "text": "Ótimo", "rating": 5, "plan": "Pro", "created_at": "2025-01-02T10:00:00Z"},
			{"id": "b2c1", "name": "Rui", "location": "Natal, RN", "text": "Bom", "rating": 4, "plan": "Básico", "created_at": "2025-01-01T10:00:00Z"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/", APIKey: " anon ", Timeout: time.Second})
	require.True(t, c.IsConfigured())

	got, err := c.ListTestimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, "Paula", got[0].Name)
	assert.Equal(t, 5, got[0].Rating)
	assert.Equal(t, time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC), got[0].CreatedAt.UTC())
	assert.Equal(t, "b2c1", got[1].ID)
}

func TestClient_ListPlans(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/plans", r.URL.Path)
		assert.Equal(t, "price.asc", r.URL.Query().Get("order"))

		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Básico", "price": "R$ 19,90", "period": "/mês", "description": "d", "features": ["a", "b"], "link": "https://pay/1", "popular": false, "created_at": "2025-01-01T00:00:00Z"},
			{"id": 2, "name": "Premium", "price": "R$ 39,90", "period": "/mês", "features": null, "link": "https://pay/2", "popular": true, "created_at": "2025-01-01T00:00:00Z"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "anon"})

	got, err := c.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []string{"a", "b"}, got[0].Features)
	assert.Equal(t, []string{}, got[1].Features)
	assert.True(t, got[1].Popular)
	assert.Equal(t, "https://pay/2", got[1].Link)
}

func TestClient_EmptyResultIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "anon"})

	got, err := c.ListTestimonials(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrSupabaseUnauthorized},
		{"forbidden", http.StatusForbidden, ErrSupabaseUnauthorized},
		{"missing table", http.StatusNotFound, ErrSupabaseUpstream},
		{"server error", http.StatusInternalServerError, ErrSupabaseUpstream},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"message":"nope"}`, tc.status)
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL, APIKey: "anon"})
			_, err := c.ListPlans(context.Background())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "anon"})
	_, err := c.ListPlans(context.Background())
	assert.ErrorIs(t, err, ErrSupabaseUpstream)
}
