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

// ChoferService defines the behavior needed by ChoferHandler.
type ChoferService interface {
	Create(ctx context.Context, actor domain.Principal, input usecase.ChoferInput) (*domain.Chofer, error)
	Update(ctx context.Context, id string, input usecase.ChoferInput) (*domain.Chofer, error)
	Delete(ctx context.Context, id string) error
	GetChofer(ctx context.Context, id string) (*domain.Chofer, error)
	ListChoferes(ctx context.Context, actor domain.Principal) ([]*domain.Chofer, error)
}

// ChoferHandler handles driver-registry HTTP requests.
type ChoferHandler struct {
	choferUC ChoferService
}

// NewChoferHandler creates a new ChoferHandler.
func NewChoferHandler(choferUC ChoferService) *ChoferHandler {
	return &ChoferHandler{choferUC: choferUC}
}

// Create registers a new driver.
func (h *ChoferHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.ChoferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	chofer, err := h.choferUC.Create(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create chofer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ChoferFromDomain(chofer))
}

// Update overwrites a driver's details.
func (h *ChoferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing chofer ID", "")
		return
	}

	var req dto.ChoferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	chofer, err := h.choferUC.Update(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update chofer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ChoferFromDomain(chofer))
}

// Delete removes a driver.
func (h *ChoferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing chofer ID", "")
		return
	}

	if err := h.choferUC.Delete(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete chofer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Get retrieves a driver by ID.
func (h *ChoferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing chofer ID", "")
		return
	}

	chofer, err := h.choferUC.GetChofer(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get chofer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ChoferFromDomain(chofer))
}

// List lists drivers registered under the actor's location.
func (h *ChoferHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	choferes, err := h.choferUC.ListChoferes(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list choferes", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ChoferesFromDomain(choferes))
}
