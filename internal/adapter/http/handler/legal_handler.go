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

// LegalService defines the behavior needed by LegalHandler.
type LegalService interface {
	Create(ctx context.Context, actor domain.Principal, input usecase.RemuneracionInput) (*domain.Legal, *domain.Caja, error)
	Update(ctx context.Context, actor domain.Principal, id string, input usecase.RemuneracionInput) (*domain.Legal, *domain.Caja, error)
	Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error)
	GetLegal(ctx context.Context, id string) (*domain.Legal, error)
	ListLegales(ctx context.Context, actor domain.Principal) ([]*domain.Legal, error)
	ListLegalesAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Legal, error)
	ListLegalesMensual(ctx context.Context, actor domain.Principal) ([]*domain.Legal, error)
	ListLegalesPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Legal, error)
}

// LegalHandler handles legal-record HTTP requests.
type LegalHandler struct {
	legalUC LegalService
}

// NewLegalHandler creates a new LegalHandler.
func NewLegalHandler(legalUC LegalService) *LegalHandler {
	return &LegalHandler{legalUC: legalUC}
}

// Create creates a new legal record.
func (h *LegalHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.RemuneracionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	legal, caja, err := h.legalUC.Create(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create legal record", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementResponse[*dto.LegalResponse]{
		Entity: dto.LegalFromDomain(legal),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Update overwrites a legal record.
func (h *LegalHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing legal record ID", "")
		return
	}

	var req dto.RemuneracionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	legal, caja, err := h.legalUC.Update(r.Context(), actor, id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update legal record", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementResponse[*dto.LegalResponse]{
		Entity: dto.LegalFromDomain(legal),
		Caja:   dto.CajaFromDomain(caja),
	})
}

// Delete removes a legal record and reverses its caja contribution.
func (h *LegalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing legal record ID", "")
		return
	}

	caja, err := h.legalUC.Delete(r.Context(), actor, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete legal record", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"caja": dto.CajaFromDomain(caja)})
}

// Get retrieves a legal record by ID.
func (h *LegalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing legal record ID", "")
		return
	}

	legal, err := h.legalUC.GetLegal(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get legal record", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LegalFromDomain(legal))
}

// List lists the actor's location's legal records.
func (h *LegalHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	legales, err := h.legalUC.ListLegales(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list legal records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LegalesFromDomain(legales))
}

// ListAdmin lists every legal record across locations.
func (h *LegalHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	legales, err := h.legalUC.ListLegalesAdmin(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list legal records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LegalesFromDomain(legales))
}

// ListMensual lists the current month's legal records.
func (h *LegalHandler) ListMensual(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	legales, err := h.legalUC.ListLegalesMensual(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list legal records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LegalesFromDomain(legales))
}

// ListPorFechas lists legal records within the desde/hasta range.
func (h *LegalHandler) ListPorFechas(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	desde, hasta := dateRange(r)
	legales, err := h.legalUC.ListLegalesPorFechas(r.Context(), actor, desde, hasta)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list legal records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LegalesFromDomain(legales))
}
