package triage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wecare/internal/auth"
	"wecare/internal/imaging"
	"wecare/internal/ollama"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Consult accepts a multipart submission: symptoms (text, optional),
// image (file, optional), use_history (bool). At least one of symptoms and
// image must be present.
func (h *Handler) Consult(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	// Limit upload size (10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart request", http.StatusBadRequest)
		return
	}

	req := ConsultRequest{
		Symptoms:   r.FormValue("symptoms"),
		UseHistory: r.FormValue("use_history") != "false",
	}

	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, file); err != nil {
			http.Error(w, "Failed to read image", http.StatusInternalServerError)
			return
		}
		req.Image = buf.Bytes()
	}

	result, err := h.svc.Consult(r.Context(), identity.UserID, req)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	json.NewEncoder(w).Encode(result)
}

// writePipelineError maps pipeline failures onto the response status:
// caller-input problems are 400, unavailable capabilities are 503, and a
// reachable-but-failing backend passes its status through.
func writePipelineError(w http.ResponseWriter, err error) {
	var statusErr *ollama.StatusError
	switch {
	case errors.Is(err, ErrNoInput),
		errors.Is(err, imaging.ErrEmptyImage),
		errors.Is(err, imaging.ErrUnsupportedFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, imaging.ErrUnavailable):
		http.Error(w, "Image processing is not available on this server", http.StatusServiceUnavailable)
	case errors.Is(err, ollama.ErrUnreachable):
		http.Error(w, "AI backend is unavailable, please retry later", http.StatusServiceUnavailable)
	case errors.As(err, &statusErr):
		http.Error(w, statusErr.Body, statusErr.Code)
	default:
		http.Error(w, "Consultation failed: "+err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	consultations, err := h.svc.ListConsultations(r.Context(), identity.UserID, limit)
	if err != nil {
		http.Error(w, "Failed to load consultations", http.StatusInternalServerError)
		return
	}
	if consultations == nil {
		consultations = []Consultation{}
	}
	json.NewEncoder(w).Encode(consultations)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid consultation ID", http.StatusBadRequest)
		return
	}

	c, err := h.svc.GetConsultation(r.Context(), identity.UserID, id)
	if err != nil {
		http.Error(w, "Consultation not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/consultation", h.Consult)
	r.Get("/consultation", h.List)
	r.Get("/consultation/{id}", h.Get)
}
