package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound: el slot no existe (ausencia normal, no es un fallo).
	ErrNotFound = errors.New("kv: slot not found")
	// ErrUnavailable: no hay almacenamiento disponible en este contexto.
	ErrUnavailable = errors.New("kv: storage unavailable")
)

// Store es un almacenamiento de slots string->string, al estilo localStorage.
// Sin expiración, sin transacciones: el último que escribe gana.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
