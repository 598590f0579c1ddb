package usecase_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
	"github.com/fletero/backoffice/internal/usecase/mocks"
)

// The canonical walkthrough: every mutation moves the caja by exactly the
// signed delta of the movement it touches.
func TestLedger_MixedScenario(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture(t, decimal.NewFromInt(1000))
	ingresoRepo := mocks.NewMockIngresoRepository()
	gastoRepo := mocks.NewMockGastoRepository()
	ingresos := usecase.NewIngresoUseCase(fx.deps, ingresoRepo)
	gastos := usecase.NewGastoUseCase(fx.deps, gastoRepo)
	actor := testActor()

	ingreso, caja, err := ingresos.Create(ctx, actor, usecase.CreateIngresoInput{
		Observacion: "venta",
		Recaudacion: decimal.NewFromInt(300),
	})
	if err != nil {
		t.Fatalf("create ingreso: %v", err)
	}
	if !caja.Total.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("after ingreso: expected 1300, got %s", caja.Total)
	}

	gasto, caja, err := gastos.Create(ctx, actor, usecase.CreateGastoInput{
		Observacion: "combustible",
		Recaudacion: decimal.NewFromInt(120),
	})
	if err != nil {
		t.Fatalf("create gasto: %v", err)
	}
	if !caja.Total.Equal(decimal.NewFromInt(1180)) {
		t.Fatalf("after gasto: expected 1180, got %s", caja.Total)
	}

	caja, err = ingresos.Delete(ctx, actor, ingreso.ID)
	if err != nil {
		t.Fatalf("delete ingreso: %v", err)
	}
	if !caja.Total.Equal(decimal.NewFromInt(880)) {
		t.Fatalf("after delete: expected 880, got %s", caja.Total)
	}

	_, caja, err = gastos.Update(ctx, actor, gasto.ID, usecase.UpdateGastoInput{
		Recaudacion: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("update gasto: %v", err)
	}
	if !caja.Total.Equal(decimal.NewFromInt(950)) {
		t.Fatalf("after update: expected 950, got %s", caja.Total)
	}
}

// After any sequence of operations the caja total must equal the initial
// total plus the sum of the surviving rows' stored amounts.
func TestLedger_ConservationUnderRandomOps(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture(t, decimal.NewFromInt(5000))
	ingresoRepo := mocks.NewMockIngresoRepository()
	gastoRepo := mocks.NewMockGastoRepository()
	ingresos := usecase.NewIngresoUseCase(fx.deps, ingresoRepo)
	gastos := usecase.NewGastoUseCase(fx.deps, gastoRepo)
	actor := testActor()

	rng := rand.New(rand.NewSource(42))
	var ingresoIDs, gastoIDs []string

	for i := 0; i < 200; i++ {
		amount := decimal.NewFromInt(rng.Int63n(500) + 1)
		switch rng.Intn(6) {
		case 0, 1:
			created, _, err := ingresos.Create(ctx, actor, usecase.CreateIngresoInput{
				Observacion: "op",
				Recaudacion: amount,
			})
			if err != nil {
				t.Fatalf("create ingreso: %v", err)
			}
			ingresoIDs = append(ingresoIDs, created.ID)
		case 2:
			created, _, err := gastos.Create(ctx, actor, usecase.CreateGastoInput{
				Observacion: "op",
				Recaudacion: amount,
			})
			if err != nil {
				t.Fatalf("create gasto: %v", err)
			}
			gastoIDs = append(gastoIDs, created.ID)
		case 3:
			if len(ingresoIDs) == 0 {
				continue
			}
			id := ingresoIDs[rng.Intn(len(ingresoIDs))]
			if _, _, err := ingresos.Update(ctx, actor, id, usecase.UpdateIngresoInput{Recaudacion: amount}); err != nil {
				t.Fatalf("update ingreso: %v", err)
			}
		case 4:
			if len(gastoIDs) == 0 {
				continue
			}
			id := gastoIDs[rng.Intn(len(gastoIDs))]
			if _, _, err := gastos.Update(ctx, actor, id, usecase.UpdateGastoInput{Recaudacion: amount}); err != nil {
				t.Fatalf("update gasto: %v", err)
			}
		case 5:
			if len(ingresoIDs) == 0 {
				continue
			}
			last := len(ingresoIDs) - 1
			if _, err := ingresos.Delete(ctx, actor, ingresoIDs[last]); err != nil {
				t.Fatalf("delete ingreso: %v", err)
			}
			ingresoIDs = ingresoIDs[:last]
		}
	}

	expected := decimal.NewFromInt(5000)
	rows, _ := ingresoRepo.ListAll(ctx)
	for _, r := range rows {
		expected = expected.Add(r.Recaudacion)
	}
	gastoRows, _ := gastoRepo.ListAll(ctx)
	for _, r := range gastoRows {
		expected = expected.Add(r.Recaudacion)
	}

	got := fx.cajaRepo.Total("cordoba")
	if !got.Equal(expected) {
		t.Fatalf("conservation broken: caja %s, movement sum implies %s", got, expected)
	}
}

// Inject a failure at each step of the create sequence and verify nothing
// leaks out of the aborted transaction.
func TestLedger_CreateAtomicity(t *testing.T) {
	boom := errors.New("boom")

	steps := []struct {
		name  string
		wire  func(*ledgerFixture, *mocks.MockIngresoRepository)
		check func(*testing.T, *ledgerFixture, *mocks.MockIngresoRepository)
	}{
		{
			name: "row insert fails",
			wire: func(fx *ledgerFixture, repo *mocks.MockIngresoRepository) {
				repo.CreateTxFunc = func(ctx context.Context, tx usecase.Transaction, ingreso *domain.Ingreso) error {
					return boom
				}
			},
		},
		{
			name: "balance adjust fails",
			wire: func(fx *ledgerFixture, repo *mocks.MockIngresoRepository) {
				fx.cajaRepo.AdjustTotalFunc = func(ctx context.Context, tx usecase.Transaction, localidad string, delta decimal.Decimal) (*domain.Caja, error) {
					return nil, boom
				}
			},
		},
		{
			name: "event staging fails",
			wire: func(fx *ledgerFixture, repo *mocks.MockIngresoRepository) {
				fx.outboxRepo.CreateTxFunc = func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
					return boom
				}
			},
		},
		{
			name: "commit fails",
			wire: func(fx *ledgerFixture, repo *mocks.MockIngresoRepository) {
				fx.txMgr.BeginFunc = func(ctx context.Context) (usecase.Transaction, error) {
					return &mocks.MockTransaction{
						CommitFunc: func(ctx context.Context) error { return boom },
					}, nil
				}
			},
		},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			fx := newLedgerFixture(t, decimal.NewFromInt(1000))
			repo := mocks.NewMockIngresoRepository()
			step.wire(fx, repo)
			uc := usecase.NewIngresoUseCase(fx.deps, repo)

			_, _, err := uc.Create(context.Background(), testActor(), usecase.CreateIngresoInput{
				Observacion: "fallara",
				Recaudacion: decimal.NewFromInt(300),
			})
			if !errors.Is(err, boom) {
				t.Fatalf("expected injected error, got %v", err)
			}

			if !fx.cajaRepo.Total("cordoba").Equal(decimal.NewFromInt(1000)) {
				t.Errorf("caja moved despite failure: %s", fx.cajaRepo.Total("cordoba"))
			}
			if rows, _ := repo.ListAll(context.Background()); len(rows) != 0 {
				t.Errorf("row committed despite failure: %d rows", len(rows))
			}
			if events := fx.outboxRepo.Events(); len(events) != 0 {
				t.Errorf("event committed despite failure: %d events", len(events))
			}
		})
	}
}
