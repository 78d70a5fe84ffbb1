package booking

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes booking HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, admin func(http.Handler) http.Handler) {
	r.Route("/api/v1/booking", func(r chi.Router) {
		r.Get("/slots", h.availableSlots)       // GET  /api/v1/booking/slots?date=YYYY-MM-DD
		r.Post("/appointments", h.create)       // POST /api/v1/booking/appointments

		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Get("/appointments", h.list)                      // GET   /api/v1/booking/appointments?include_cancelled=true
			r.Get("/appointments/{id}", h.get)                  // GET   /api/v1/booking/appointments/{id}
			r.Patch("/appointments/{id}/status", h.updateStatus) // PATCH /api/v1/booking/appointments/{id}/status
		})
	})
}

func (h *Handler) availableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	slots, err := h.service.AvailableSlots(r.Context(), date)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid date") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"date": date, "slots": slots})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	a, err := h.service.CreateAppointment(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if strings.Contains(msg, "no longer available") || strings.Contains(msg, "closed on") {
			code = http.StatusConflict
		} else if strings.Contains(msg, "required") || strings.Contains(msg, "invalid") ||
			strings.Contains(msg, "not a bookable") || strings.Contains(msg, "not found") ||
			strings.Contains(msg, "not currently offered") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, a)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.GetAppointment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "appointment not found"})
		return
	}
	respond(w, http.StatusOK, a)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	includeCancelled := r.URL.Query().Get("include_cancelled") == "true"
	appts, err := h.service.ListAppointments(r.Context(), includeCancelled)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, appts)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	a, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "cannot transition") {
			code = http.StatusUnprocessableEntity
		} else if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, a)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
