package content

import "context"

// Source es la fuente remota de contenido.
// Un Source nil o con IsConfigured()==false es la variante "sin configurar":
// el loader no hace ninguna llamada y usa el fallback.
type Source interface {
	IsConfigured() bool

	// ListTestimonials: ordenados por created_at descendente.
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	// ListPlans: ordenados por precio ascendente.
	ListPlans(ctx context.Context) ([]Plan, error)
}
