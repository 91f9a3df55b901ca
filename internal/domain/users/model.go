package users

import "time"

// Tier es el nivel de suscripción del usuario.
// @Enum free, basic, premium, pro
type Tier string

const (
	TierFree    Tier = "free"
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
	TierPro     Tier = "pro"
)

// ParseTier normaliza un tier; lo desconocido cae en free.
func ParseTier(s string) Tier {
	switch t := Tier(s); t {
	case TierFree, TierBasic, TierPremium, TierPro:
		return t
	default:
		return TierFree
	}
}

func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierBasic, TierPremium, TierPro:
		return true
	default:
		return false
	}
}

// Badge es la etiqueta que se muestra junto al nombre del usuario.
func (t Tier) Badge() string {
	switch ParseTier(string(t)) {
	case TierBasic:
		return "Básico"
	case TierPremium:
		return "Premium"
	case TierPro:
		return "Pro"
	default:
		return "Gratuito"
	}
}

// User es la identidad "logueada". El store guarda como mucho una.
type User struct {
	ID    string
	Name  string
	Email string
	Phone string // opcional

	Tier Tier

	CreatedAt time.Time
}

// Patch es una actualización parcial: nil = no tocar.
// No tiene ID: el id del usuario actual no se puede cambiar.
type Patch struct {
	Name  *string
	Email *string
	Phone *string
	Tier  *Tier
}
