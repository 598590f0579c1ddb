package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/adapter/http/dto"
	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
)

// CajaService defines the behavior needed by CajaHandler.
type CajaService interface {
	ProvisionCaja(ctx context.Context, actor domain.Principal, input usecase.ProvisionCajaInput) (*domain.Caja, error)
	GetCaja(ctx context.Context, id string) (*domain.Caja, error)
	ListCajas(ctx context.Context, actor domain.Principal) ([]*domain.Caja, error)
	SetTotal(ctx context.Context, actor domain.Principal, id string, total decimal.Decimal) (*domain.Caja, error)
	CheckConsistency(ctx context.Context, localidad string) (*domain.ConsistencyReport, error)
}

// CajaHandler handles caja-related HTTP requests.
type CajaHandler struct {
	cajaUC CajaService
}

// NewCajaHandler creates a new CajaHandler.
func NewCajaHandler(cajaUC CajaService) *CajaHandler {
	return &CajaHandler{cajaUC: cajaUC}
}

// Provision creates the caja row for the actor's location.
func (h *CajaHandler) Provision(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.ProvisionCajaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	caja, err := h.cajaUC.ProvisionCaja(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to provision caja", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CajaFromDomain(caja))
}

// Get retrieves a caja by ID.
func (h *CajaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing caja ID", "")
		return
	}

	caja, err := h.cajaUC.GetCaja(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get caja", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CajaFromDomain(caja))
}

// List lists the cajas visible to the actor.
func (h *CajaHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	cajas, err := h.cajaUC.ListCajas(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list cajas", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CajasFromDomain(cajas))
}

// SetTotal overrides a caja total. Admin-only repair path.
func (h *CajaHandler) SetTotal(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing caja ID", "")
		return
	}

	var req dto.SetCajaTotalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	caja, err := h.cajaUC.SetTotal(r.Context(), actor, id, req.Total)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set caja total", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CajaFromDomain(caja))
}

// Consistency recomputes the movement sum for a location and compares
// it against the stored caja total.
func (h *CajaHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	localidad := r.URL.Query().Get("localidad")
	if localidad == "" {
		localidad = actor.Localidad
	}

	report, err := h.cajaUC.CheckConsistency(r.Context(), localidad)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to check consistency", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyFromDomain(report))
}
