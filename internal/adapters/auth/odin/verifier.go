package odin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"petcare-landing/internal/ports/auth"
)

// Verifier implementa auth.CredentialVerifier usando Odin.
type Verifier struct {
	client *Client
}

var _ auth.CredentialVerifier = (*Verifier)(nil)

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Authenticate(ctx context.Context, c auth.Credentials) (auth.Identity, error) {
	if v == nil || v.client == nil {
		return auth.Identity{}, ErrOdinNotConfigured
	}
	acc, err := v.client.CreateSession(ctx, strings.TrimSpace(c.Email), c.Password)
	if err != nil {
		return auth.Identity{}, mapErr(err)
	}
	return toIdentity(acc), nil
}

func (v *Verifier) Register(ctx context.Context, r auth.Registration) (auth.Identity, error) {
	if v == nil || v.client == nil {
		return auth.Identity{}, ErrOdinNotConfigured
	}
	acc, err := v.client.CreateUser(ctx, strings.TrimSpace(r.Name), strings.TrimSpace(r.Email), r.Password)
	if err != nil {
		return auth.Identity{}, mapErr(err)
	}
	return toIdentity(acc), nil
}

// mapErr traduce a los errores del port conservando el error de Odin.
func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrOdinUnauthorized):
		return fmt.Errorf("%w: %w", auth.ErrInvalidCredentials, err)
	default:
		return fmt.Errorf("%w: %w", auth.ErrUpstream, err)
	}
}

func toIdentity(a Account) auth.Identity {
	return auth.Identity{
		ID:        a.UserID,
		Name:      strings.TrimSpace(a.Name),
		Email:     strings.TrimSpace(a.Email),
		Tier:      strings.TrimSpace(a.Plan),
		CreatedAt: a.CreatedAt,
	}
}
