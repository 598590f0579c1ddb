package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fletero/backoffice/internal/adapter/http/dto"
	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
)

// SalidaService defines the behavior needed by SalidaHandler.
type SalidaService interface {
	Create(ctx context.Context, actor domain.Principal, input usecase.SalidaInput) (*domain.Salida, error)
	Update(ctx context.Context, actor domain.Principal, id string, input usecase.SalidaInput) (*domain.Salida, error)
	Delete(ctx context.Context, actor domain.Principal, id string) error
	GetSalida(ctx context.Context, id string) (*domain.Salida, error)
	ListSalidas(ctx context.Context, actor domain.Principal) ([]*domain.Salida, error)
	ListSalidasMensual(ctx context.Context, actor domain.Principal) ([]*domain.Salida, error)
	ListSalidasPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Salida, error)
}

// SalidaHandler handles salida-related HTTP requests.
type SalidaHandler struct {
	salidaUC SalidaService
}

// NewSalidaHandler creates a new SalidaHandler.
func NewSalidaHandler(salidaUC SalidaService) *SalidaHandler {
	return &SalidaHandler{salidaUC: salidaUC}
}

// Create creates a new salida.
func (h *SalidaHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.SalidaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	salida, err := h.salidaUC.Create(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create salida", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SalidaFromDomain(salida))
}

// Update overwrites a salida.
func (h *SalidaHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing salida ID", "")
		return
	}

	var req dto.SalidaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	salida, err := h.salidaUC.Update(r.Context(), actor, id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update salida", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SalidaFromDomain(salida))
}

// Delete removes a salida.
func (h *SalidaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing salida ID", "")
		return
	}

	if err := h.salidaUC.Delete(r.Context(), actor, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete salida", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Get retrieves a salida by ID.
func (h *SalidaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing salida ID", "")
		return
	}

	salida, err := h.salidaUC.GetSalida(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get salida", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SalidaFromDomain(salida))
}

// List lists the actor's location's salidas.
func (h *SalidaHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	salidas, err := h.salidaUC.ListSalidas(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list salidas", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SalidasFromDomain(salidas))
}

// ListMensual lists the current month's salidas.
func (h *SalidaHandler) ListMensual(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	salidas, err := h.salidaUC.ListSalidasMensual(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list salidas", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SalidasFromDomain(salidas))
}

// ListPorFechas lists salidas within the desde/hasta range.
func (h *SalidaHandler) ListPorFechas(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	desde, hasta := dateRange(r)
	salidas, err := h.salidaUC.ListSalidasPorFechas(r.Context(), actor, desde, hasta)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list salidas", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SalidasFromDomain(salidas))
}
