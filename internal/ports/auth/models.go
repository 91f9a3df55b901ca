package auth

import "time"

// Claims representa al usuario actual tal como lo ven middleware y handlers.
type Claims struct {
	UserID string
	Email  string
	Tier   string
}

// Credentials para login. El stub acepta cualquier password.
type Credentials struct {
	Email    string
	Password string
}

// Registration para alta de usuario.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Identity es lo que devuelve un verificador de credenciales.
// Mantiene la forma del User (id, name, email, tier, created_at) para que
// cambiar el stub por un verificador real no afecte a los callers.
type Identity struct {
	ID        string
	Name      string
	Email     string
	Tier      string
	CreatedAt time.Time
}
