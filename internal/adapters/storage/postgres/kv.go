package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"petcare-landing/internal/ports/kv"
)

const (
	createSlotsTableSQL = `CREATE TABLE IF NOT EXISTS kv_slots (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT now())`
	getSlotSQL          = `SELECT value FROM kv_slots WHERE key = $1`
	upsertSlotSQL       = `INSERT INTO kv_slots (key, value, updated_at) VALUES ($1, $2, now()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteSlotSQL       = `DELETE FROM kv_slots WHERE key = $1`
)

// KVStore persiste los slots en una tabla de dos columnas.
// Upsert simple: el último que escribe gana, igual que en memoria.
type KVStore struct {
	db DBTX
}

func NewKVStore(db DBTX) *KVStore {
	return &KVStore{db: db}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, createSlotsTableSQL)
	return err
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", kv.ErrNotFound
	}

	var value string
	if err := s.db.QueryRow(ctx, getSlotSQL, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("slot key required")
	}
	_, err := s.db.Exec(ctx, upsertSlotSQL, key, value)
	return err
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, deleteSlotSQL, strings.TrimSpace(key))
	return err
}
