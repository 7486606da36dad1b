package casemgmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wecare/internal/auth"
	"wecare/internal/report"
	"wecare/internal/triage"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) ListCases(w http.ResponseWriter, r *http.Request) {
	status := triage.Status(r.URL.Query().Get("status"))
	priority := triage.Priority(r.URL.Query().Get("priority"))

	cases, err := h.svc.ListCases(r.Context(), status, priority)
	if err != nil {
		http.Error(w, "Failed to load cases", http.StatusInternalServerError)
		return
	}
	if cases == nil {
		cases = []triage.Consultation{}
	}
	json.NewEncoder(w).Encode(cases)
}

func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Claim(r.Context(), id, identity.UserID)
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

type resolveRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Resolve(r.Context(), id, identity.UserID, req.Notes)
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid case ID", http.StatusBadRequest)
		return
	}

	c, err := h.svc.GetCase(r.Context(), id)
	if err != nil {
		http.Error(w, "Case not found", http.StatusNotFound)
		return
	}

	pdf, err := report.Generate(*c)
	if err != nil {
		http.Error(w, "Report generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="case_%s.pdf"`, c.ID))
	w.Write(pdf)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/admin/cases", h.ListCases)
	r.Post("/admin/cases/{id}/claim", h.Claim)
	r.Post("/admin/cases/{id}/resolve", h.Resolve)
	r.Get("/admin/cases/{id}/report", h.Report)
}
