package pets

import "strings"

// Pet es un registro de mascota del tutor.
type Pet struct {
	ID     string
	UserID string // owner; no se valida contra el usuario actual

	Name   string
	Breed  string
	Age    int     // años
	Weight float64 // kg

	BirthDate string // YYYY-MM-DD, opcional
	Photo     string // URL o data URI, opcional
}

// NewPet son los campos que aporta el cliente al crear (sin id ni owner).
type NewPet struct {
	Name      string
	Breed     string
	Age       int
	Weight    float64
	BirthDate string
	Photo     string
}

// Patch: nil = no tocar. ID y UserID no son editables.
type Patch struct {
	Name      *string
	Breed     *string
	Age       *int
	Weight    *float64
	BirthDate *string
	Photo     *string
}

func (p Pet) apply(in Patch) Pet {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Breed != nil {
		p.Breed = *in.Breed
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.BirthDate != nil {
		p.BirthDate = *in.BirthDate
	}
	if in.Photo != nil {
		p.Photo = *in.Photo
	}
	return p
}

// trimmed normaliza los strings igual que el alta.
func (in Patch) trimmed() Patch {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}
	in.Name = trim(in.Name)
	in.Breed = trim(in.Breed)
	in.BirthDate = trim(in.BirthDate)
	in.Photo = trim(in.Photo)
	return in
}
