package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/adapter/http/middleware"
	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
)

type stubIngresoService struct {
	createFn func(ctx context.Context, actor domain.Principal, input usecase.CreateIngresoInput) (*domain.Ingreso, *domain.Caja, error)
	deleteFn func(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error)
}

func (s *stubIngresoService) Create(ctx context.Context, actor domain.Principal, input usecase.CreateIngresoInput) (*domain.Ingreso, *domain.Caja, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubIngresoService) Update(ctx context.Context, actor domain.Principal, id string, input usecase.UpdateIngresoInput) (*domain.Ingreso, *domain.Caja, error) {
	return nil, nil, domain.ErrIngresoNotFound
}

func (s *stubIngresoService) Delete(ctx context.Context, actor domain.Principal, id string) (*domain.Caja, error) {
	return s.deleteFn(ctx, actor, id)
}

func (s *stubIngresoService) GetIngreso(ctx context.Context, id string) (*domain.Ingreso, error) {
	return nil, domain.ErrIngresoNotFound
}

func (s *stubIngresoService) ListIngresos(ctx context.Context, actor domain.Principal) ([]*domain.Ingreso, error) {
	return nil, nil
}

func (s *stubIngresoService) ListIngresosAdmin(ctx context.Context, actor domain.Principal) ([]*domain.Ingreso, error) {
	return nil, nil
}

func (s *stubIngresoService) ListIngresosMensual(ctx context.Context, actor domain.Principal) ([]*domain.Ingreso, error) {
	return nil, nil
}

func (s *stubIngresoService) ListIngresosPorFechas(ctx context.Context, actor domain.Principal, desde, hasta string) ([]*domain.Ingreso, error) {
	return nil, nil
}

func withPrincipal(r *http.Request, actor domain.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.PrincipalContextKey, actor)
	return r.WithContext(ctx)
}

func TestIngresoHandlerCreate(t *testing.T) {
	svc := &stubIngresoService{
		createFn: func(ctx context.Context, actor domain.Principal, input usecase.CreateIngresoInput) (*domain.Ingreso, *domain.Caja, error) {
			if actor.Localidad != "cordoba" {
				t.Fatalf("expected actor localidad cordoba, got %q", actor.Localidad)
			}
			if !input.Recaudacion.Equal(decimal.NewFromInt(300)) {
				t.Fatalf("expected recaudacion 300, got %s", input.Recaudacion)
			}
			return &domain.Ingreso{
					ID:          "ing-1",
					Observacion: input.Observacion,
					Recaudacion: input.Recaudacion,
					Localidad:   actor.Localidad,
					CreatedAt:   time.Now().UTC(),
				}, &domain.Caja{
					ID:        "caja-1",
					Localidad: actor.Localidad,
					Total:     decimal.NewFromInt(1300),
				}, nil
		},
	}
	h := NewIngresoHandler(svc)

	body := `{"tipo":"flete","observacion":"pago semanal","recaudacion":"300"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ingresos", strings.NewReader(body))
	req = withPrincipal(req, domain.Principal{UserID: "u1", Username: "maria", RoleID: domain.RoleUser, Localidad: "cordoba", Sucursal: "centro"})
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Entity struct {
			ID string `json:"id"`
		} `json:"entity"`
		Caja struct {
			Total decimal.Decimal `json:"total"`
		} `json:"caja"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Entity.ID != "ing-1" {
		t.Fatalf("expected entity ing-1, got %q", resp.Entity.ID)
	}
	if !resp.Caja.Total.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("expected caja total 1300, got %s", resp.Caja.Total)
	}
}

func TestIngresoHandlerCreateRejectsInvalidBody(t *testing.T) {
	h := NewIngresoHandler(&stubIngresoService{})

	req := httptest.NewRequest(http.MethodPost, "/api/ingresos", strings.NewReader("{not json"))
	req = withPrincipal(req, domain.Principal{Localidad: "cordoba"})
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestIngresoHandlerCreateRequiresPrincipal(t *testing.T) {
	h := NewIngresoHandler(&stubIngresoService{})

	req := httptest.NewRequest(http.MethodPost, "/api/ingresos", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIngresoHandlerCreateMapsDomainErrors(t *testing.T) {
	svc := &stubIngresoService{
		createFn: func(ctx context.Context, actor domain.Principal, input usecase.CreateIngresoInput) (*domain.Ingreso, *domain.Caja, error) {
			return nil, nil, domain.ErrCajaNotFound
		},
	}
	h := NewIngresoHandler(svc)

	body := `{"observacion":"pago","recaudacion":"300"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ingresos", strings.NewReader(body))
	req = withPrincipal(req, domain.Principal{Localidad: "cordoba"})
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
