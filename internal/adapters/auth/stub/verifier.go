package stub

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"petcare-landing/internal/ports/auth"
)

const DefaultDelay = time.Second

// Verifier acepta cualquier password y sintetiza la identidad después de
// una latencia simulada. Reemplazable por un verificador real vía auth.CredentialVerifier.
type Verifier struct {
	delay time.Duration
	now   func() time.Time
	newID func() string
}

var _ auth.CredentialVerifier = (*Verifier)(nil)

// NewVerifier: delay < 0 usa DefaultDelay; 0 responde sin espera.
func NewVerifier(delay time.Duration) *Verifier {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Verifier{
		delay: delay,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Authenticate: el nombre sale de la parte local del email.
func (v *Verifier) Authenticate(ctx context.Context, c auth.Credentials) (auth.Identity, error) {
	email := strings.TrimSpace(c.Email)
	return v.issue(ctx, localPart(email), email)
}

func (v *Verifier) Register(ctx context.Context, r auth.Registration) (auth.Identity, error) {
	return v.issue(ctx, strings.TrimSpace(r.Name), strings.TrimSpace(r.Email))
}

func (v *Verifier) issue(ctx context.Context, name, email string) (auth.Identity, error) {
	if err := v.wait(ctx); err != nil {
		return auth.Identity{}, err
	}
	return auth.Identity{
		ID:        v.newID(),
		Name:      name,
		Email:     email,
		Tier:      "free",
		CreatedAt: v.now(),
	}, nil
}

func (v *Verifier) wait(ctx context.Context) error {
	if v.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(v.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
