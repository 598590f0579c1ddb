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

// OrdenService defines the behavior needed by OrdenHandler.
type OrdenService interface {
	Create(ctx context.Context, input usecase.OrdenInput) (*domain.Orden, error)
	Update(ctx context.Context, id string, input usecase.OrdenInput) (*domain.Orden, error)
	Finalizar(ctx context.Context, id string) (*domain.Orden, error)
	Delete(ctx context.Context, id string) error
	GetOrden(ctx context.Context, id string) (*domain.Orden, error)
	ListOrdenes(ctx context.Context) ([]*domain.Orden, error)
	ListOrdenesMensual(ctx context.Context) ([]*domain.Orden, error)
	ListOrdenesPorFechas(ctx context.Context, desde, hasta string) ([]*domain.Orden, error)
}

// OrdenHandler handles work-order HTTP requests.
type OrdenHandler struct {
	ordenUC OrdenService
}

// NewOrdenHandler creates a new OrdenHandler.
func NewOrdenHandler(ordenUC OrdenService) *OrdenHandler {
	return &OrdenHandler{ordenUC: ordenUC}
}

// Create creates a new work order.
func (h *OrdenHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OrdenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	orden, err := h.ordenUC.Create(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create orden", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.OrdenFromDomain(orden))
}

// Update overwrites a work order.
func (h *OrdenHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing orden ID", "")
		return
	}

	var req dto.OrdenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	orden, err := h.ordenUC.Update(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update orden", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdenFromDomain(orden))
}

// Finalizar marks a work order as finished.
func (h *OrdenHandler) Finalizar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing orden ID", "")
		return
	}

	orden, err := h.ordenUC.Finalizar(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to finalize orden", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdenFromDomain(orden))
}

// Delete removes a work order.
func (h *OrdenHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing orden ID", "")
		return
	}

	if err := h.ordenUC.Delete(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete orden", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Get retrieves a work order by ID.
func (h *OrdenHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing orden ID", "")
		return
	}

	orden, err := h.ordenUC.GetOrden(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get orden", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdenFromDomain(orden))
}

// List lists every work order.
func (h *OrdenHandler) List(w http.ResponseWriter, r *http.Request) {
	ordenes, err := h.ordenUC.ListOrdenes(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list ordenes", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdenesFromDomain(ordenes))
}

// ListMensual lists the current month's work orders.
func (h *OrdenHandler) ListMensual(w http.ResponseWriter, r *http.Request) {
	ordenes, err := h.ordenUC.ListOrdenesMensual(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list ordenes", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdenesFromDomain(ordenes))
}

// ListPorFechas lists work orders within the desde/hasta range.
func (h *OrdenHandler) ListPorFechas(w http.ResponseWriter, r *http.Request) {
	desde, hasta := dateRange(r)
	ordenes, err := h.ordenUC.ListOrdenesPorFechas(r.Context(), desde, hasta)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list ordenes", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdenesFromDomain(ordenes))
}
