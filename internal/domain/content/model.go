package content

import "time"

// Testimonial es un registro de solo lectura para la landing.
type Testimonial struct {
	ID       string
	Name     string
	Location string
	Text     string
	Rating   int
	Plan     string // etiqueta del plan del autor (display)

	CreatedAt time.Time
}

// Plan es un plan de precios. Price es string de display ("R$ 19,90").
type Plan struct {
	ID          string
	Name        string
	Price       string
	Period      string
	Description string
	Features    []string // orden de display
	Link        string   // checkout externo
	Popular     bool     // conceptualmente uno solo; no se valida

	CreatedAt time.Time
}

// State es lo que la landing renderiza.
type State struct {
	Testimonials []Testimonial
	Plans        []Plan
	Loading      bool
}

// PlanByID busca un plan en el estado.
func (s State) PlanByID(id string) (Plan, bool) {
	for _, p := range s.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
