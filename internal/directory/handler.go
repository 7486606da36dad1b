package directory

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.repo.ListDoctors(r.Context(), r.URL.Query().Get("specialization"))
	if err != nil {
		http.Error(w, "Failed to load doctors", http.StatusInternalServerError)
		return
	}
	if doctors == nil {
		doctors = []Doctor{}
	}
	json.NewEncoder(w).Encode(doctors)
}

func (h *Handler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	emergencyOnly := r.URL.Query().Get("emergency") == "true"
	hospitals, err := h.repo.ListHospitals(r.Context(), emergencyOnly)
	if err != nil {
		http.Error(w, "Failed to load hospitals", http.StatusInternalServerError)
		return
	}
	if hospitals == nil {
		hospitals = []Hospital{}
	}
	json.NewEncoder(w).Encode(hospitals)
}

func (h *Handler) ListNGOs(w http.ResponseWriter, r *http.Request) {
	ngos, err := h.repo.ListNGOs(r.Context())
	if err != nil {
		http.Error(w, "Failed to load NGOs", http.StatusInternalServerError)
		return
	}
	if ngos == nil {
		ngos = []NGO{}
	}
	json.NewEncoder(w).Encode(ngos)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/doctors", h.ListDoctors)
	r.Get("/hospitals", h.ListHospitals)
	r.Get("/ngos", h.ListNGOs)
}
