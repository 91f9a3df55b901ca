package pets

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"petcare-landing/internal/platform/logger"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// OwnerResolver devuelve el id del usuario actual.
// Lo implementa users.Service; evita el import pets -> users.
type OwnerResolver interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

type Service struct {
	repo   Repository
	owners OwnerResolver
	log    logger.Logger
	newID  func() string
}

func NewService(repo Repository, owners OwnerResolver, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:   repo,
		owners: owners,
		log:    log.With(map[string]any{"component": "pets"}),
		newID:  uuid.NewString,
	}
}

// GetUserPets: mascotas del usuario actual. Sin usuario o sin storage = lista vacía.
func (s *Service) GetUserPets(ctx context.Context) []Pet {
	ownerID, ok := s.currentOwner(ctx)
	if !ok {
		return []Pet{}
	}

	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.log.Warn("list pets failed", map[string]any{"user_id": ownerID, "error": err.Error()})
		return []Pet{}
	}
	if items == nil {
		items = []Pet{}
	}
	return items
}

// AddPet asigna id y owner. Sin usuario actual falla con ErrUnauthenticated
// y la colección queda intacta.
func (s *Service) AddPet(ctx context.Context, in NewPet) (Pet, error) {
	ownerID, ok := s.currentOwner(ctx)
	if !ok {
		return Pet{}, ErrUnauthenticated
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || in.Age < 0 || in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:        s.newID(),
		UserID:    ownerID,
		Name:      name,
		Breed:     strings.TrimSpace(in.Breed),
		Age:       in.Age,
		Weight:    in.Weight,
		BirthDate: strings.TrimSpace(in.BirthDate),
		Photo:     strings.TrimSpace(in.Photo),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}

	s.log.Info("pet added", map[string]any{"pet_id": p.ID, "user_id": ownerID})
	return p, nil
}

// UpdatePet busca en toda la colección (no solo las del usuario actual).
// Si el id no existe es no-op: (Pet{}, false, nil).
func (s *Service) UpdatePet(ctx context.Context, id string, in Patch) (Pet, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, false, nil
	}

	in = in.trimmed()
	if in.Name != nil && *in.Name == "" {
		return Pet{}, false, ErrInvalidInput
	}
	if (in.Age != nil && *in.Age < 0) || (in.Weight != nil && *in.Weight < 0) {
		return Pet{}, false, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, false, nil
		}
		return Pet{}, false, err
	}

	updated := current.apply(in)
	if err := s.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, false, nil
		}
		return Pet{}, false, err
	}
	return updated, true, nil
}

func (s *Service) currentOwner(ctx context.Context) (string, bool) {
	if s.owners == nil {
		return "", false
	}
	id, ok := s.owners.CurrentUserID(ctx)
	if !ok || strings.TrimSpace(id) == "" {
		return "", false
	}
	return id, true
}
