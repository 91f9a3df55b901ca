package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"petcare-landing/internal/domain/content"
	"petcare-landing/internal/platform/httpclient"
)

var (
	ErrSupabaseNotConfigured = errors.New("supabase client not configured")
	ErrSupabaseUnauthorized  = errors.New("supabase unauthorized")
	ErrSupabaseUpstream      = errors.New("supabase upstream error")
)

const (
	testimonialsPath = "/rest/v1/testimonials"
	plansPath        = "/rest/v1/plans"
)

type Config struct {
	BaseURL string
	APIKey  string // anon key
	Timeout time.Duration
}

// Client lee testimonials y plans de la REST API (PostgREST) de Supabase.
// Implementa content.Source.
type Client struct {
	http *httpclient.Client
}

var _ content.Source = (*Client)(nil)

// NewClient nunca falla: una URL vacía o inválida deja el client sin configurar
// y la landing usa el contenido embebido.
func NewClient(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	key := strings.TrimSpace(cfg.APIKey)
	if base == "" || key == "" {
		return &Client{}
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return &Client{}
	}
	hc.WithHeader("apikey", key).WithHeader("Authorization", "Bearer "+key)

	return &Client{http: hc}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

type testimonialRow struct {
	ID        flexID    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

type planRow struct {
	ID          flexID    `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Link        string    `json:"link"`
	Popular     bool      `json:"popular"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListTestimonials: más recientes primero.
func (c *Client) ListTestimonials(ctx context.Context) ([]content.Testimonial, error) {
	var rows []testimonialRow
	if err := c.list(ctx, testimonialsPath, "created_at.desc", &rows); err != nil {
		return nil, err
	}

	out := make([]content.Testimonial, 0, len(rows))
	for _, r := range rows {
		out = append(out, content.Testimonial{
			ID:        string(r.ID),
			Name:      r.Name,
			Location:  r.Location,
			Text:      r.Text,
			Rating:    r.Rating,
			Plan:      r.Plan,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// ListPlans: precio ascendente.
func (c *Client) ListPlans(ctx context.Context) ([]content.Plan, error) {
	var rows []planRow
	if err := c.list(ctx, plansPath, "price.asc", &rows); err != nil {
		return nil, err
	}

	out := make([]content.Plan, 0, len(rows))
	for _, r := range rows {
		features := r.Features
		if features == nil {
			features = []string{}
		}
		out = append(out, content.Plan{
			ID:          string(r.ID),
			Name:        r.Name,
			Price:       r.Price,
			Period:      r.Period,
			Description: r.Description,
			Features:    features,
			Link:        r.Link,
			Popular:     r.Popular,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, path, order string, out any) error {
	if !c.IsConfigured() {
		return ErrSupabaseNotConfigured
	}

	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", order)

	err := c.http.GetJSON(ctx, path, q, nil, out)
	if err == nil {
		return nil
	}
	switch httpclient.StatusCode(err) {
	case 0:
		return fmt.Errorf("%w: %v", ErrSupabaseUpstream, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrSupabaseUnauthorized
	default:
		return fmt.Errorf("%w: %v", ErrSupabaseUpstream, err)
	}
}

// flexID acepta ids numéricos (bigserial) o string (uuid).
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id: %s", b)
	}
	*f = flexID(n.String())
	return nil
}
