package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// Repository es el slot de "usuario actual".
// Current devuelve ErrNotFound cuando no hay nadie logueado.
type Repository interface {
	Current(ctx context.Context) (User, error)
	Save(ctx context.Context, u User) error
	Clear(ctx context.Context) error
}
