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

// IngresoService defines the behavior needed by IngresoHandler.
type IngresoService interface {
	Create(ctx context.Context, actor domain.Principal, input usecase.CreateIngresoInput) (*domain.Ingreso, *domain.Caja, error)
	Update(ctx context.Context, actor domain.Principal, id string, input usecase.UpdateIngresoInput) (*domain.Ingreso, *domain.Caja, error)
	Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error)
	GetIngreso(ctx context.Context, id string) (*domain.Ingreso, error)
	ListIngresos(ctx context.Context, actor domain.Principal) ([]*domain.Ingreso, error)
	ListIngresosAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Ingreso, error)
	ListIngresosMensual(ctx context.Context, actor domain.Principal) ([]*domain.Ingreso, error)
	ListIngresosPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Ingreso, error)
}

// IngresoHandler handles ingreso-related HTTP requests. Mutations return
// the entity together with the caja snapshot taken in the same
// transaction.
type IngresoHandler struct {
	ingresoUC IngresoService
}

// NewIngresoHandler creates a new IngresoHandler.
func NewIngresoHandler(ingresoUC IngresoService) *IngresoHandler {
	return &IngresoHandler{ingresoUC: ingresoUC}
}

// Create creates a new ingreso.
func (h *IngresoHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.CreateIngresoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ingreso, caja, err := h.ingresoUC.Create(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create ingreso", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementResponse[*dto.IngresoResponse]{
		Entity: dto.IngresoFromDomain(ingreso),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Update overwrites an ingreso.
func (h *IngresoHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing ingreso ID", "")
		return
	}

	var req dto.UpdateIngresoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ingreso, caja, err := h.ingresoUC.Update(r.Context(), actor, id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update ingreso", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementResponse[*dto.IngresoResponse]{
		Entity: dto.IngresoFromDomain(ingreso),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Delete removes an ingreso and reverses its caja contribution.
func (h *IngresoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing ingreso ID", "")
		return
	}

	caja, err := h.ingresoUC.Delete(r.Context(), actor, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete ingreso", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"caja": dto.CajaFromDomain(caja)})
}

// Get retrieves an ingreso by ID.
func (h *IngresoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing ingreso ID", "")
		return
	}

	ingreso, err := h.ingresoUC.GetIngreso(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get ingreso", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IngresoFromDomain(ingreso))
}

// List lists the actor's location's ingresos.
func (h *IngresoHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	ingresos, err := h.ingresoUC.ListIngresos(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list ingresos", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IngresosFromDomain(ingresos))
}

// ListAdmin lists every ingreso across locations.
func (h *IngresoHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	ingresos, err := h.ingresoUC.ListIngresosAdmin(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list ingresos", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IngresosFromDomain(ingresos))
}

// ListMensual lists the current month's ingresos.
func (h *IngresoHandler) ListMensual(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	ingresos, err := h.ingresoUC.ListIngresosMensual(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list ingresos", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IngresosFromDomain(ingresos))
}

// ListPorFechas lists ingresos within the desde/hasta range.
func (h *IngresoHandler) ListPorFechas(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	desde, hasta := dateRange(r)
	ingresos, err := h.ingresoUC.ListIngresosPorFechas(r.Context(), actor, desde, hasta)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list ingresos", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IngresosFromDomain(ingresos))
}
