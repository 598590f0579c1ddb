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

// GastoService defines the behavior needed by GastoHandler.
type GastoService interface {
	Create(ctx context.Context, actor domain.Principal, input usecase.CreateGastoInput) (*domain.Gasto, *domain.Caja, error)
	Update(ctx context.Context, actor domain.Principal, id string, input usecase.UpdateGastoInput) (*domain.Gasto, *domain.Caja, error)
	Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error)
	GetGasto(ctx context.Context, id string) (*domain.Gasto, error)
	ListGastos(ctx context.Context, actor domain.Principal) ([]*domain.Gasto, error)
	ListGastosAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Gasto, error)
	ListGastosMensual(ctx context.Context, actor domain.Principal) ([]*domain.Gasto, error)
	ListGastosPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Gasto, error)
}

// GastoHandler handles gasto-related HTTP requests.
type GastoHandler struct {
	gastoUC GastoService
}

// NewGastoHandler creates a new GastoHandler.
func NewGastoHandler(gastoUC GastoService) *GastoHandler {
	return &GastoHandler{gastoUC: gastoUC}
}

// Create creates a new gasto.
func (h *GastoHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.CreateGastoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	gasto, caja, err := h.gastoUC.Create(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create gasto", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementResponse[*dto.GastoResponse]{
		Entity: dto.GastoFromDomain(gasto),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Update overwrites a gasto.
func (h *GastoHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing gasto ID", "")
		return
	}

	var req dto.UpdateGastoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	gasto, caja, err := h.gastoUC.Update(r.Context(), actor, id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update gasto", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementResponse[*dto.GastoResponse]{
		Entity: dto.GastoFromDomain(gasto),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Delete removes a gasto and reverses its caja contribution.
func (h *GastoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing gasto ID", "")
		return
	}

	caja, err := h.gastoUC.Delete(r.Context(), actor, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete gasto", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"caja": dto.CajaFromDomain(caja)})
}

// Get retrieves a gasto by ID.
func (h *GastoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing gasto ID", "")
		return
	}

	gasto, err := h.gastoUC.GetGasto(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get gasto", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GastoFromDomain(gasto))
}

// List lists the actor's location's gastos.
func (h *GastoHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	gastos, err := h.gastoUC.ListGastos(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list gastos", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GastosFromDomain(gastos))
}

// ListAdmin lists every gasto across locations.
func (h *GastoHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	gastos, err := h.gastoUC.ListGastosAdmin(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list gastos", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GastosFromDomain(gastos))
}

// ListMensual lists the current month's gastos.
func (h *GastoHandler) ListMensual(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	gastos, err := h.gastoUC.ListGastosMensual(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list gastos", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GastosFromDomain(gastos))
}

// ListPorFechas lists gastos within the desde/hasta range.
func (h *GastoHandler) ListPorFechas(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	desde, hasta := dateRange(r)
	gastos, err := h.gastoUC.ListGastosPorFechas(r.Context(), actor, desde, hasta)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list gastos", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GastosFromDomain(gastos))
}
