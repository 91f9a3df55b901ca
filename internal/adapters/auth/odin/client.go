package odin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petcare-landing/internal/platform/httpclient"
)

var (
	ErrOdinNotConfigured = errors.New("odin client not configured")
	ErrOdinUnauthorized  = errors.New("odin unauthorized")
	ErrOdinUpstream      = errors.New("odin upstream error")
)

const (
	sessionsPath = "/v1/sessions"
	usersPath    = "/v1/users"
)

// Config del cliente Odin.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	key := strings.TrimSpace(cfg.APIKey)
	if base == "" || key == "" {
		return &Client{}
	}

	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return &Client{}
	}
	hc.WithHeader(h, key)

	return &Client{http: hc}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

// Account es lo que Odin devuelve para sesiones y altas.
type Account struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateSession verifica credenciales (login).
func (c *Client) CreateSession(ctx context.Context, email, password string) (Account, error) {
	return c.post(ctx, sessionsPath, sessionRequest{Email: email, Password: password})
}

// CreateUser da de alta una cuenta (register).
func (c *Client) CreateUser(ctx context.Context, name, email, password string) (Account, error) {
	return c.post(ctx, usersPath, userRequest{Name: name, Email: email, Password: password})
}

func (c *Client) post(ctx context.Context, path string, in any) (Account, error) {
	if !c.IsConfigured() {
		return Account{}, ErrOdinNotConfigured
	}

	var out Account
	if err := c.http.DoJSON(ctx, http.MethodPost, path, nil, in, &out); err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return Account{}, ErrOdinUnauthorized
		default:
			return Account{}, fmt.Errorf("%w: %v", ErrOdinUpstream, err)
		}
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return Account{}, fmt.Errorf("%w: response missing user_id", ErrOdinUpstream)
	}
	return out, nil
}
