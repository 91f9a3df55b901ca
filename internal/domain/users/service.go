package users

import (
	"context"
	"errors"
	"strings"

	"petcare-landing/internal/platform/logger"
	"petcare-landing/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo     Repository
	verifier auth.CredentialVerifier
	log      logger.Logger
}

func NewService(repo Repository, verifier auth.CredentialVerifier, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:     repo,
		verifier: verifier,
		log:      log.With(map[string]any{"component": "users"}),
	}
}

// CurrentUser nunca falla: la ausencia (o falta de storage) es un resultado normal.
func (s *Service) CurrentUser(ctx context.Context) (User, bool) {
	u, err := s.repo.Current(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Debug("current user unavailable", map[string]any{"error": err.Error()})
		}
		return User{}, false
	}
	return u, true
}

// CurrentUserID se usa desde pets para resolver el owner sin importar este paquete al revés.
func (s *Service) CurrentUserID(ctx context.Context) (string, bool) {
	u, ok := s.CurrentUser(ctx)
	if !ok || strings.TrimSpace(u.ID) == "" {
		return "", false
	}
	return u.ID, true
}

// CurrentClaims expone el usuario actual al middleware.
func (s *Service) CurrentClaims(ctx context.Context) (auth.Claims, bool) {
	u, ok := s.CurrentUser(ctx)
	if !ok {
		return auth.Claims{}, false
	}
	return auth.Claims{UserID: u.ID, Email: u.Email, Tier: string(u.Tier)}, true
}

// Login delega en el verificador y persiste el resultado como usuario actual.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, ErrInvalidInput
	}

	id, err := s.verifier.Authenticate(ctx, auth.Credentials{Email: email, Password: password})
	if err != nil {
		return User{}, err
	}

	u := fromIdentity(id)
	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, err
	}

	s.log.Info("user logged in", map[string]any{"user_id": u.ID})
	return u, nil
}

// Register pisa cualquier usuario actual existente.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return User{}, ErrInvalidInput
	}

	id, err := s.verifier.Register(ctx, auth.Registration{Name: name, Email: email, Password: password})
	if err != nil {
		return User{}, err
	}

	u := fromIdentity(id)
	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, err
	}

	s.log.Info("user registered", map[string]any{"user_id": u.ID})
	return u, nil
}

// Logout borra solo el slot del usuario; las mascotas quedan.
func (s *Service) Logout(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// UpdateUser mergea el patch sobre el usuario actual.
// Si no hay usuario actual es no-op (ok=false, err=nil).
func (s *Service) UpdateUser(ctx context.Context, in Patch) (User, bool, error) {
	u, ok := s.CurrentUser(ctx)
	if !ok {
		return User{}, false, nil
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return User{}, true, ErrInvalidInput
		}
		u.Name = v
	}
	if in.Email != nil {
		v := strings.TrimSpace(*in.Email)
		if v == "" {
			return User{}, true, ErrInvalidInput
		}
		u.Email = v
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Tier != nil {
		if !in.Tier.Valid() {
			return User{}, true, ErrInvalidInput
		}
		u.Tier = *in.Tier
	}

	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, true, err
	}
	return u, true, nil
}

func fromIdentity(id auth.Identity) User {
	return User{
		ID:        id.ID,
		Name:      id.Name,
		Email:     id.Email,
		Tier:      ParseTier(id.Tier),
		CreatedAt: id.CreatedAt,
	}
}
