package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
)

// MockIngresoRepository is a mock implementation of IngresoRepository.
// Transactional writes are staged on the MockTransaction; reads under
// FOR UPDATE return copies so callers mutating the result do not leak
// into the store before commit.
type MockIngresoRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Ingreso

	CreateTxFunc         func(ctx context.Context, tx usecase.Transaction, ingreso *domain.Ingreso) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Ingreso, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Ingreso, error)
	UpdateTxFunc         func(ctx context.Context, tx usecase.Transaction, ingreso *domain.Ingreso) error
	DeleteTxFunc         func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockIngresoRepository() *MockIngresoRepository {
	return &MockIngresoRepository{
		items: make(map[string]*domain.Ingreso),
	}
}

// Get reads committed state directly, bypassing any Func override.
func (m *MockIngresoRepository) Get(id string) (*domain.Ingreso, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	return item, ok
}

func (m *MockIngresoRepository) CreateTx(ctx context.Context, tx usecase.Transaction, ingreso *domain.Ingreso) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, ingreso)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[ingreso.ID] = ingreso
	})
	return nil
}

func (m *MockIngresoRepository) GetByID(ctx context.Context, id string) (*domain.Ingreso, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrIngresoNotFound
}

func (m *MockIngresoRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Ingreso, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, domain.ErrIngresoNotFound
}

func (m *MockIngresoRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, ingreso *domain.Ingreso) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, ingreso)
	}
	cp := *ingreso
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[cp.ID] = &cp
	})
	return nil
}

func (m *MockIngresoRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.items, id)
	})
	return nil
}

func (m *MockIngresoRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Ingreso, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Ingreso
	for _, item := range m.items {
		if item.Localidad == localidad {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *MockIngresoRepository) ListAll(ctx context.Context) ([]*domain.Ingreso, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Ingreso
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *MockIngresoRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Ingreso, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Ingreso
	for _, item := range m.items {
		if item.Localidad == localidad && !item.CreatedAt.Before(from) && item.CreatedAt.Before(to) {
			items = append(items, item)
		}
	}
	return items, nil
}

// MockGastoRepository is a mock implementation of GastoRepository.
type MockGastoRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Gasto

	CreateTxFunc         func(ctx context.Context, tx usecase.Transaction, gasto *domain.Gasto) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Gasto, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Gasto, error)
	UpdateTxFunc         func(ctx context.Context, tx usecase.Transaction, gasto *domain.Gasto) error
	DeleteTxFunc         func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockGastoRepository() *MockGastoRepository {
	return &MockGastoRepository{
		items: make(map[string]*domain.Gasto),
	}
}

func (m *MockGastoRepository) Get(id string) (*domain.Gasto, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	return item, ok
}

func (m *MockGastoRepository) CreateTx(ctx context.Context, tx usecase.Transaction, gasto *domain.Gasto) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, gasto)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[gasto.ID] = gasto
	})
	return nil
}

func (m *MockGastoRepository) GetByID(ctx context.Context, id string) (*domain.Gasto, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrGastoNotFound
}

func (m *MockGastoRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Gasto, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, domain.ErrGastoNotFound
}

func (m *MockGastoRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, gasto *domain.Gasto) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, gasto)
	}
	cp := *gasto
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[cp.ID] = &cp
	})
	return nil
}

func (m *MockGastoRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.items, id)
	})
	return nil
}

func (m *MockGastoRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Gasto, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Gasto
	for _, item := range m.items {
		if item.Localidad == localidad {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *MockGastoRepository) ListAll(ctx context.Context) ([]*domain.Gasto, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Gasto
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *MockGastoRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Gasto, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Gasto
	for _, item := range m.items {
		if item.Localidad == localidad && !item.CreatedAt.Before(from) && item.CreatedAt.Before(to) {
			items = append(items, item)
		}
	}
	return items, nil
}

// MockRemuneracionRepository is a mock implementation of
// RemuneracionRepository.
type MockRemuneracionRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Remuneracion

	CreateTxFunc         func(ctx context.Context, tx usecase.Transaction, rem *domain.Remuneracion) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Remuneracion, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Remuneracion, error)
	UpdateTxFunc         func(ctx context.Context, tx usecase.Transaction, rem *domain.Remuneracion) error
	DeleteTxFunc         func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockRemuneracionRepository() *MockRemuneracionRepository {
	return &MockRemuneracionRepository{
		items: make(map[string]*domain.Remuneracion),
	}
}

func (m *MockRemuneracionRepository) Get(id string) (*domain.Remuneracion, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	return item, ok
}

func (m *MockRemuneracionRepository) CreateTx(ctx context.Context, tx usecase.Transaction, rem *domain.Remuneracion) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, rem)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[rem.ID] = rem
	})
	return nil
}

func (m *MockRemuneracionRepository) GetByID(ctx context.Context, id string) (*domain.Remuneracion, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrRemuneracionNotFound
}

func (m *MockRemuneracionRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Remuneracion, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, domain.ErrRemuneracionNotFound
}

func (m *MockRemuneracionRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, rem *domain.Remuneracion) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, rem)
	}
	cp := *rem
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[cp.ID] = &cp
	})
	return nil
}

func (m *MockRemuneracionRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.items, id)
	})
	return nil
}

func (m *MockRemuneracionRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Remuneracion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Remuneracion
	for _, item := range m.items {
		if item.Localidad == localidad {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *MockRemuneracionRepository) ListAll(ctx context.Context) ([]*domain.Remuneracion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Remuneracion
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *MockRemuneracionRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Remuneracion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Remuneracion
	for _, item := range m.items {
		if item.Localidad == localidad && !item.CreatedAt.Before(from) && item.CreatedAt.Before(to) {
			items = append(items, item)
		}
	}
	return items, nil
}

// MockLegalRepository is a mock implementation of LegalRepository.
type MockLegalRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Legal

	CreateTxFunc         func(ctx context.Context, tx usecase.Transaction, legal *domain.Legal) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Legal, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Legal, error)
	UpdateTxFunc         func(ctx context.Context, tx usecase.Transaction, legal *domain.Legal) error
	DeleteTxFunc         func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockLegalRepository() *MockLegalRepository {
	return &MockLegalRepository{
		items: make(map[string]*domain.Legal),
	}
}

func (m *MockLegalRepository) Get(id string) (*domain.Legal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	return item, ok
}

func (m *MockLegalRepository) CreateTx(ctx context.Context, tx usecase.Transaction, legal *domain.Legal) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, legal)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[legal.ID] = legal
	})
	return nil
}

func (m *MockLegalRepository) GetByID(ctx context.Context, id string) (*domain.Legal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrLegalNotFound
}

func (m *MockLegalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Legal, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, domain.ErrLegalNotFound
}

func (m *MockLegalRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, legal *domain.Legal) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, legal)
	}
	cp := *legal
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[cp.ID] = &cp
	})
	return nil
}

func (m *MockLegalRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.items, id)
	})
	return nil
}

func (m *MockLegalRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Legal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Legal
	for _, item := range m.items {
		if item.Localidad == localidad {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *MockLegalRepository) ListAll(ctx context.Context) ([]*domain.Legal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Legal
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *MockLegalRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Legal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Legal
	for _, item := range m.items {
		if item.Localidad == localidad && !item.CreatedAt.Before(from) && item.CreatedAt.Before(to) {
			items = append(items, item)
		}
	}
	return items, nil
}

// MockRendicionRepository is a mock implementation of RendicionRepository.
type MockRendicionRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Rendicion

	CreateTxFunc         func(ctx context.Context, tx usecase.Transaction, rendicion *domain.Rendicion) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Rendicion, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Rendicion, error)
	UpdateTxFunc         func(ctx context.Context, tx usecase.Transaction, rendicion *domain.Rendicion) error
	DeleteTxFunc         func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockRendicionRepository() *MockRendicionRepository {
	return &MockRendicionRepository{
		items: make(map[string]*domain.Rendicion),
	}
}

func (m *MockRendicionRepository) Get(id string) (*domain.Rendicion, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	return item, ok
}

func (m *MockRendicionRepository) CreateTx(ctx context.Context, tx usecase.Transaction, rendicion *domain.Rendicion) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, rendicion)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[rendicion.ID] = rendicion
	})
	return nil
}

func (m *MockRendicionRepository) GetByID(ctx context.Context, id string) (*domain.Rendicion, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrRendicionNotFound
}

func (m *MockRendicionRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Rendicion, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, domain.ErrRendicionNotFound
}

func (m *MockRendicionRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, rendicion *domain.Rendicion) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, rendicion)
	}
	cp := *rendicion
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.items[cp.ID] = &cp
	})
	return nil
}

func (m *MockRendicionRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.items, id)
	})
	return nil
}

func (m *MockRendicionRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Rendicion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Rendicion
	for _, item := range m.items {
		if item.Localidad == localidad {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *MockRendicionRepository) ListAll(ctx context.Context) ([]*domain.Rendicion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Rendicion
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *MockRendicionRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Rendicion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Rendicion
	for _, item := range m.items {
		if item.Localidad == localidad && !item.CreatedAt.Before(from) && item.CreatedAt.Before(to) {
			items = append(items, item)
		}
	}
	return items, nil
}
