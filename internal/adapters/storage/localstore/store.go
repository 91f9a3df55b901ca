package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"petcare-landing/internal/domain/pets"
	"petcare-landing/internal/domain/users"
	"petcare-landing/internal/ports/kv"
)

// Slots donde viven las dos colecciones.
const (
	UserKey = "petcare_user"
	PetsKey = "petcare_pets"
)

// Store guarda el usuario actual y la colección de mascotas como JSON
// sobre un kv.Store. Con kv nil no hay storage: las lecturas devuelven
// ausencia/vacío y las escrituras kv.ErrUnavailable.
type Store struct {
	kv kv.Store

	// serializa read-modify-write de la colección dentro del proceso
	mu sync.Mutex
}

var (
	_ users.Repository = (*Store)(nil)
	_ pets.Repository  = (*Store)(nil)
)

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

type userRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
}

type petRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Breed     string  `json:"breed"`
	Age       int     `json:"age"`
	Weight    float64 `json:"weight"`
	BirthDate string  `json:"birthDate,omitempty"`
	Photo     string  `json:"photo,omitempty"`
	UserID    string  `json:"userId"`
}

// -------------------------
// users.Repository
// -------------------------

func (s *Store) Current(ctx context.Context) (users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.read(ctx, UserKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) || errors.Is(err, kv.ErrUnavailable) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	var rec userRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return users.User{}, fmt.Errorf("decode %s: %w", UserKey, err)
	}
	return users.User{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Tier:      users.ParseTier(rec.Plan),
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Save reemplaza el usuario actual.
func (s *Store) Save(ctx context.Context, u users.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(userRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Plan:      string(u.Tier),
		CreatedAt: u.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", UserKey, err)
	}
	return s.write(ctx, UserKey, string(b))
}

// Clear borra solo el slot del usuario.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv == nil {
		return kv.ErrUnavailable
	}
	return s.kv.Remove(ctx, UserKey)
}

// -------------------------
// pets.Repository
// -------------------------

func (s *Store) Create(ctx context.Context, p pets.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}

	all, err := s.loadPets(ctx)
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.ID == p.ID {
			return errors.New("pet already exists")
		}
	}
	return s.storePets(ctx, append(all, toPetRecord(p)))
}

// Update reemplaza en su lugar (mantiene el orden de la colección).
func (s *Store) Update(ctx context.Context, p pets.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadPets(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == p.ID {
			all[i] = toPetRecord(p)
			return s.storePets(ctx, all)
		}
	}
	return pets.ErrNotFound
}

func (s *Store) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadPets(ctx)
	if err != nil {
		return pets.Pet{}, err
	}
	for _, rec := range all {
		if rec.ID == id {
			return rec.toPet(), nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

// ListByOwner respeta el orden de inserción.
func (s *Store) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadPets(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0)
	for _, rec := range all {
		if rec.UserID == ownerUserID {
			out = append(out, rec.toPet())
		}
	}
	return out, nil
}

// loadPets: slot ausente o sin storage = colección vacía.
func (s *Store) loadPets(ctx context.Context) ([]petRecord, error) {
	raw, err := s.read(ctx, PetsKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) || errors.Is(err, kv.ErrUnavailable) {
			return []petRecord{}, nil
		}
		return nil, err
	}

	var all []petRecord
	if strings.TrimSpace(raw) == "" {
		return []petRecord{}, nil
	}
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		return nil, fmt.Errorf("decode %s: %w", PetsKey, err)
	}
	if all == nil {
		all = []petRecord{}
	}
	return all, nil
}

func (s *Store) storePets(ctx context.Context, all []petRecord) error {
	b, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode %s: %w", PetsKey, err)
	}
	return s.write(ctx, PetsKey, string(b))
}

func (s *Store) read(ctx context.Context, key string) (string, error) {
	if s.kv == nil {
		return "", kv.ErrUnavailable
	}
	return s.kv.Get(ctx, key)
}

func (s *Store) write(ctx context.Context, key, value string) error {
	if s.kv == nil {
		return kv.ErrUnavailable
	}
	return s.kv.Set(ctx, key, value)
}

func toPetRecord(p pets.Pet) petRecord {
	return petRecord{
		ID:        p.ID,
		Name:      p.Name,
		Breed:     p.Breed,
		Age:       p.Age,
		Weight:    p.Weight,
		BirthDate: p.BirthDate,
		Photo:     p.Photo,
		UserID:    p.UserID,
	}
}

func (r petRecord) toPet() pets.Pet {
	return pets.Pet{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Breed:     r.Breed,
		Age:       r.Age,
		Weight:    r.Weight,
		BirthDate: r.BirthDate,
		Photo:     r.Photo,
	}
}
