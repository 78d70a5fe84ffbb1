package config

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes config HTTP endpoints. Branding is public; everything else
// sits behind the admin middleware.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, admin func(http.Handler) http.Handler) {
	r.Route("/api/v1/config", func(r chi.Router) {
		r.Get("/branding", h.getBranding) // GET /api/v1/config/branding

		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Get("/", h.getConfig)                        // GET    /api/v1/config
			r.Patch("/branding", h.updateBranding)         // PATCH  /api/v1/config/branding
			r.Patch("/credentials", h.updateCredentials)   // PATCH  /api/v1/config/credentials
			r.Post("/closed-dates", h.addClosedDate)       // POST   /api/v1/config/closed-dates
			r.Delete("/closed-dates", h.removeClosedDate)  // DELETE /api/v1/config/closed-dates
		})
	})
}

func (h *Handler) getBranding(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetBranding(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, b)
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) updateBranding(w http.ResponseWriter, r *http.Request) {
	var req UpdateBrandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := h.service.UpdateBranding(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "must be") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) updateCredentials(w http.ResponseWriter, r *http.Request) {
	var req UpdateCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.UpdateCredentials(r.Context(), req); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "credentials updated"})
}

func (h *Handler) addClosedDate(w http.ResponseWriter, r *http.Request) {
	var req ClosedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := h.service.AddClosedDate(r.Context(), req.Date)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid date") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) removeClosedDate(w http.ResponseWriter, r *http.Request) {
	var req ClosedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := h.service.RemoveClosedDate(r.Context(), req.Date)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, c)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
