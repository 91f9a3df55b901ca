package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials: el verificador rechazó las credenciales.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUpstream: el verificador no pudo responder.
	ErrUpstream = errors.New("credential verifier unavailable")
)

// CredentialVerifier valida credenciales y devuelve la identidad resultante.
type CredentialVerifier interface {
	Authenticate(ctx context.Context, in Credentials) (Identity, error)
	Register(ctx context.Context, in Registration) (Identity, error)
}
