package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func RegisterRoutes(r chi.Router, svc *Service) {
	// Mascotas del usuario actual
	r.Get("/me/pets", listMyPetsHandler(svc))
	r.Post("/me/pets", createPetHandler(svc))

	// Update por id sobre toda la colección
	r.Patch("/pets/{petID}", updatePetHandler(svc))
}

type createPetRequest struct {
	Name      string  `json:"name" validate:"required"`
	Breed     string  `json:"breed"`
	Age       int     `json:"age" validate:"gte=0"`
	Weight    float64 `json:"weight" validate:"gte=0"`
	BirthDate string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Photo     string  `json:"photo"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar. id/user_id se ignoran.
	Name      *string  `json:"name" validate:"omitnil,min=1"`
	Breed     *string  `json:"breed"`
	Age       *int     `json:"age" validate:"omitnil,gte=0"`
	Weight    *float64 `json:"weight" validate:"omitnil,gte=0"`
	BirthDate *string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Photo     *string  `json:"photo"`
}

type petResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Breed     string  `json:"breed"`
	Age       int     `json:"age"`
	Weight    float64 `json:"weight"`
	BirthDate string  `json:"birth_date,omitempty"`
	Photo     string  `json:"photo,omitempty"`
}

// listMyPetsHandler godoc
// @Summary Mis mascotas
// @Description Mascotas del usuario actual. Sin usuario actual devuelve lista vacía.
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /me/pets [get]
func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.GetUserPets(r.Context())

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createPetHandler godoc
// @Summary Agregar mascota
// @Description Crea una mascota para el usuario actual (id y owner se asignan en el server).
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthenticated"
// @Router /me/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.AddPet(r.Context(), NewPet{
			Name:      req.Name,
			Breed:     req.Breed,
			Age:       req.Age,
			Weight:    req.Weight,
			BirthDate: req.BirthDate,
			Photo:     req.Photo,
		})
		if err != nil {
			writePetError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description PATCH parcial por id. Si la mascota no existe la colección no cambia y responde 404.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "Pet ID"
// @Param payload body updatePetRequest true "Campos a actualizar"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, ok, err := svc.UpdatePet(r.Context(), chi.URLParam(r, "petID"), Patch{
			Name:      req.Name,
			Breed:     req.Breed,
			Age:       req.Age,
			Weight:    req.Weight,
			BirthDate: req.BirthDate,
			Photo:     req.Photo,
		})
		if err != nil {
			writePetError(w, err)
			return
		}
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Breed:     p.Breed,
		Age:       p.Age,
		Weight:    p.Weight,
		BirthDate: p.BirthDate,
		Photo:     p.Photo,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
