package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/fletero/backoffice/internal/domain"
)

// MockSalidaRepository is a mock implementation of SalidaRepository.
type MockSalidaRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Salida

	CreateFunc  func(ctx context.Context, salida *domain.Salida) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Salida, error)
	UpdateFunc  func(ctx context.Context, salida *domain.Salida) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func NewMockSalidaRepository() *MockSalidaRepository {
	return &MockSalidaRepository{
		items: make(map[string]*domain.Salida),
	}
}

func (m *MockSalidaRepository) Create(ctx context.Context, salida *domain.Salida) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, salida)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[salida.ID] = salida
	return nil
}

func (m *MockSalidaRepository) GetByID(ctx context.Context, id string) (*domain.Salida, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrSalidaNotFound
}

func (m *MockSalidaRepository) Update(ctx context.Context, salida *domain.Salida) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, salida)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[salida.ID]; !ok {
		return domain.ErrSalidaNotFound
	}
	m.items[salida.ID] = salida
	return nil
}

func (m *MockSalidaRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrSalidaNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *MockSalidaRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Salida, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Salida
	for _, item := range m.items {
		if item.Localidad == localidad {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *MockSalidaRepository) ListByCreatedBetween(ctx context.Context, localidad string, from, to time.Time) ([]*domain.Salida, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Salida
	for _, item := range m.items {
		if item.Localidad == localidad && !item.CreatedAt.Before(from) && item.CreatedAt.Before(to) {
			items = append(items, item)
		}
	}
	return items, nil
}

// MockOrdenRepository is a mock implementation of OrdenRepository.
type MockOrdenRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Orden

	CreateFunc  func(ctx context.Context, orden *domain.Orden) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Orden, error)
	UpdateFunc  func(ctx context.Context, orden *domain.Orden) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func NewMockOrdenRepository() *MockOrdenRepository {
	return &MockOrdenRepository{
		items: make(map[string]*domain.Orden),
	}
}

func (m *MockOrdenRepository) Create(ctx context.Context, orden *domain.Orden) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, orden)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[orden.ID] = orden
	return nil
}

func (m *MockOrdenRepository) GetByID(ctx context.Context, id string) (*domain.Orden, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrOrdenNotFound
}

func (m *MockOrdenRepository) Update(ctx context.Context, orden *domain.Orden) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, orden)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[orden.ID]; !ok {
		return domain.ErrOrdenNotFound
	}
	m.items[orden.ID] = orden
	return nil
}

func (m *MockOrdenRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrOrdenNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *MockOrdenRepository) List(ctx context.Context) ([]*domain.Orden, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Orden
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *MockOrdenRepository) ListByCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Orden, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Orden
	for _, item := range m.items {
		if !item.CreatedAt.Before(from) && item.CreatedAt.Before(to) {
			items = append(items, item)
		}
	}
	return items, nil
}

// MockChoferRepository is a mock implementation of ChoferRepository.
type MockChoferRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Chofer

	CreateFunc  func(ctx context.Context, chofer *domain.Chofer) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Chofer, error)
	UpdateFunc  func(ctx context.Context, chofer *domain.Chofer) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func NewMockChoferRepository() *MockChoferRepository {
	return &MockChoferRepository{
		items: make(map[string]*domain.Chofer),
	}
}

func (m *MockChoferRepository) Create(ctx context.Context, chofer *domain.Chofer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, chofer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[chofer.ID] = chofer
	return nil
}

func (m *MockChoferRepository) GetByID(ctx context.Context, id string) (*domain.Chofer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrChoferNotFound
}

func (m *MockChoferRepository) Update(ctx context.Context, chofer *domain.Chofer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, chofer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[chofer.ID]; !ok {
		return domain.ErrChoferNotFound
	}
	m.items[chofer.ID] = chofer
	return nil
}

func (m *MockChoferRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrChoferNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *MockChoferRepository) ListByLocalidad(ctx context.Context, localidad string) ([]*domain.Chofer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.Chofer
	for _, item := range m.items {
		if item.Localidad == localidad {
			items = append(items, item)
		}
	}
	return items, nil
}
