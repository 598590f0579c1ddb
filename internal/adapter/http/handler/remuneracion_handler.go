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

// RemuneracionService defines the behavior needed by RemuneracionHandler.
type RemuneracionService interface {
	Create(ctx context.Context, actor domain.Principal, input usecase.RemuneracionInput) (*domain.Remuneracion, *domain.Caja, error)
	Update(ctx context.Context, actor domain.Principal, id string, input usecase.RemuneracionInput) (*domain.Remuneracion, *domain.Caja, error)
	Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error)
	GetRemuneracion(ctx context.Context, id string) (*domain.Remuneracion, error)
	ListRemuneraciones(ctx context.Context, actor domain.Principal) ([]*domain.Remuneracion, error)
	ListRemuneracionesAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Remuneracion, error)
	ListRemuneracionesMensual(ctx context.Context, actor domain.Principal) ([]*domain.Remuneracion, error)
	ListRemuneracionesPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Remuneracion, error)
}

// RemuneracionHandler handles remuneracion-related HTTP requests.
type RemuneracionHandler struct {
	remUC RemuneracionService
}

// NewRemuneracionHandler creates a new RemuneracionHandler.
func NewRemuneracionHandler(remUC RemuneracionService) *RemuneracionHandler {
	return &RemuneracionHandler{remUC: remUC}
}

// Create creates a new remuneracion.
func (h *RemuneracionHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.RemuneracionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rem, caja, err := h.remUC.Create(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create remuneracion", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementResponse[*dto.RemuneracionResponse]{
		Entity: dto.RemuneracionFromDomain(rem),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Update overwrites a remuneracion.
func (h *RemuneracionHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing remuneracion ID", "")
		return
	}

	var req dto.RemuneracionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rem, caja, err := h.remUC.Update(r.Context(), actor, id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update remuneracion", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementResponse[*dto.RemuneracionResponse]{
		Entity: dto.RemuneracionFromDomain(rem),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Delete removes a remuneracion and reverses its caja contribution.
func (h *RemuneracionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing remuneracion ID", "")
		return
	}

	caja, err := h.remUC.Delete(r.Context(), actor, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete remuneracion", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"caja": dto.CajaFromDomain(caja)})
}

// Get retrieves a remuneracion by ID.
func (h *RemuneracionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing remuneracion ID", "")
		return
	}

	rem, err := h.remUC.GetRemuneracion(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get remuneracion", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RemuneracionFromDomain(rem))
}

// List lists the actor's location's remuneraciones.
func (h *RemuneracionHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	rems, err := h.remUC.ListRemuneraciones(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list remuneraciones", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RemuneracionesFromDomain(rems))
}

// ListAdmin lists every remuneracion across locations.
func (h *RemuneracionHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	rems, err := h.remUC.ListRemuneracionesAdmin(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list remuneraciones", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RemuneracionesFromDomain(rems))
}

// ListMensual lists the current month's remuneraciones.
func (h *RemuneracionHandler) ListMensual(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	rems, err := h.remUC.ListRemuneracionesMensual(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list remuneraciones", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RemuneracionesFromDomain(rems))
}

// ListPorFechas lists remuneraciones within the desde/hasta range.
func (h *RemuneracionHandler) ListPorFechas(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	desde, hasta := dateRange(r)
	rems, err := h.remUC.ListRemuneracionesPorFechas(r.Context(), actor, desde, hasta)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list remuneraciones", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RemuneracionesFromDomain(rems))
}
