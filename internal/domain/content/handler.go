package content

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"petcare-landing/internal/middleware"
)

//go:embed templates/landing.html
var templatesFS embed.FS

var landingTmpl = template.Must(template.ParseFS(templatesFS, "templates/landing.html"))

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/", landingHandler(svc))

	r.Route("/api/content", func(cr chi.Router) {
		cr.Get("/", getContentHandler(svc))
		cr.Post("/refresh", refreshContentHandler(svc))
	})

	r.Get("/plans/{planID}/checkout", checkoutHandler(svc))
}

type testimonialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

type planResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Link        string    `json:"link"`
	Popular     bool      `json:"popular"`
	CreatedAt   time.Time `json:"created_at"`
}

type contentResponse struct {
	Testimonials []testimonialResponse `json:"testimonials"`
	Plans        []planResponse        `json:"plans"`
	Loading      bool                  `json:"loading"`
}

// getContentHandler godoc
// @Summary Contenido de la landing
// @Description Devuelve testimonials y plans. Si la fuente remota no está configurada, falla o viene vacía, se usa el contenido embebido.
// @Tags content
// @Produce json
// @Success 200 {object} contentResponse
// @Router /api/content [get]
func getContentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toContentResponse(svc.Get(r.Context())))
	}
}

// refreshContentHandler godoc
// @Summary Recargar contenido
// @Description Ignora el cache y vuelve a consultar la fuente remota.
// @Tags content
// @Produce json
// @Success 200 {object} contentResponse
// @Router /api/content/refresh [post]
func refreshContentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toContentResponse(svc.Refresh(r.Context())))
	}
}

// checkoutHandler godoc
// @Summary Checkout de un plan
// @Description Redirige (302) al link de pago externo del plan.
// @Tags content
// @Param planID path string true "Plan ID"
// @Success 302 {string} string "redirect"
// @Failure 404 {string} string "plan not found"
// @Router /plans/{planID}/checkout [get]
func checkoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, ok := svc.Get(r.Context()).PlanByID(chi.URLParam(r, "planID"))
		if !ok || plan.Link == "" {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		http.Redirect(w, r, plan.Link, http.StatusFound)
	}
}

type landingView struct {
	State
	Features  []feature
	UserEmail string
	Year      int
}

type feature struct {
	Title string
	Text  string
}

var landingFeatures = []feature{
	{Title: "Adestramento", Text: "Lições passo a passo para ensinar comandos e bons hábitos."},
	{Title: "Alimentação", Text: "Calculadora de porções pelo peso, idade e raça do seu pet."},
	{Title: "Vacinas", Text: "Carteira digital com lembretes das próximas doses."},
	{Title: "Metas diárias", Text: "Rotina de passeios, brincadeiras e cuidados acompanhada todo dia."},
}

func landingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := landingView{
			State:    svc.Get(r.Context()),
			Features: landingFeatures,
			Year:     time.Now().Year(),
		}
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			view.UserEmail = claims.Email
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := landingTmpl.Execute(w, view); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	}
}

func toContentResponse(st State) contentResponse {
	out := contentResponse{
		Testimonials: make([]testimonialResponse, 0, len(st.Testimonials)),
		Plans:        make([]planResponse, 0, len(st.Plans)),
		Loading:      st.Loading,
	}
	for _, t := range st.Testimonials {
		out.Testimonials = append(out.Testimonials, testimonialResponse{
			ID:        t.ID,
			Name:      t.Name,
			Location:  t.Location,
			Text:      t.Text,
			Rating:    t.Rating,
			Plan:      t.Plan,
			CreatedAt: t.CreatedAt,
		})
	}
	for _, p := range st.Plans {
		features := p.Features
		if features == nil {
			features = []string{}
		}
		out.Plans = append(out.Plans, planResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Period:      p.Period,
			Description: p.Description,
			Features:    features,
			Link:        p.Link,
			Popular:     p.Popular,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
