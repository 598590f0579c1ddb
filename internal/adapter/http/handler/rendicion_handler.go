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

// RendicionService defines the behavior needed by RendicionHandler.
type RendicionService interface {
	Create(ctx context.Context, actor domain.Principal, input usecase.RendicionInput) (*domain.Rendicion, *domain.Caja, error)
	Update(ctx context.Context, actor domain.Principal, id string, input usecase.RendicionInput) (*domain.Rendicion, *domain.Caja, error)
	Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error)
	GetRendicion(ctx context.Context, id string) (*domain.Rendicion, error)
	ListRendiciones(ctx context.Context, actor domain.Principal) ([]*domain.Rendicion, error)
	ListRendicionesAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Rendicion, error)
	ListRendicionesMensual(ctx context.Context, actor domain.Principal) ([]*domain.Rendicion, error)
	ListRendicionesPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Rendicion, error)
}

// RendicionHandler handles rendicion-related HTTP requests.
type RendicionHandler struct {
	rendicionUC RendicionService
}

// NewRendicionHandler creates a new RendicionHandler.
func NewRendicionHandler(rendicionUC RendicionService) *RendicionHandler {
	return &RendicionHandler{rendicionUC: rendicionUC}
}

// Create creates a new rendicion.
func (h *RendicionHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.RendicionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rendicion, caja, err := h.rendicionUC.Create(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create rendicion", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementResponse[*dto.RendicionResponse]{
		Entity: dto.RendicionFromDomain(rendicion),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Update overwrites a rendicion.
func (h *RendicionHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rendicion ID", "")
		return
	}

	var req dto.RendicionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rendicion, caja, err := h.rendicionUC.Update(r.Context(), actor, id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update rendicion", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementResponse[*dto.RendicionResponse]{
		Entity: dto.RendicionFromDomain(rendicion),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Delete removes a rendicion and reverses its caja contribution.
func (h *RendicionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rendicion ID", "")
		return
	}

	caja, err := h.rendicionUC.Delete(r.Context(), actor, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete rendicion", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"caja": dto.CajaFromDomain(caja)})
}

// Get retrieves a rendicion by ID.
func (h *RendicionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rendicion ID", "")
		return
	}

	rendicion, err := h.rendicionUC.GetRendicion(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get rendicion", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RendicionFromDomain(rendicion))
}

// List lists the actor's location's rendiciones.
func (h *RendicionHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	rendiciones, err := h.rendicionUC.ListRendiciones(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list rendiciones", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RendicionesFromDomain(rendiciones))
}

// ListAdmin lists every rendicion across locations.
func (h *RendicionHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	rendiciones, err := h.rendicionUC.ListRendicionesAdmin(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list rendiciones", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RendicionesFromDomain(rendiciones))
}

// ListMensual lists the current month's rendiciones.
func (h *RendicionHandler) ListMensual(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	rendiciones, err := h.rendicionUC.ListRendicionesMensual(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list rendiciones", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RendicionesFromDomain(rendiciones))
}

// ListPorFechas lists rendiciones within the desde/hasta range.
func (h *RendicionHandler) ListPorFechas(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	desde, hasta := dateRange(r)
	rendiciones, err := h.rendicionUC.ListRendicionesPorFechas(r.Context(), actor, desde, hasta)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list rendiciones", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RendicionesFromDomain(rendiciones))
}
