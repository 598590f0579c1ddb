package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/usecase"
)

// MockTransaction is a mock implementation of Transaction. Repository
// mocks stage their writes on it; the writes land only on Commit, so a
// rolled-back transaction leaves the in-memory state untouched.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	mu         sync.Mutex
	staged     []func()
	Committed  bool
	RolledBack bool
}

// Stage queues a write to run on Commit.
func (m *MockTransaction) Stage(apply func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staged = append(m.staged, apply)
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, apply := range m.staged {
		apply()
	}
	m.staged = nil
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.Committed {
		m.staged = nil
		m.RolledBack = true
	}
	return nil
}

// stage applies a write through the transaction when it is a
// MockTransaction, immediately otherwise.
func stage(tx usecase.Transaction, apply func()) {
	if mt, ok := tx.(*MockTransaction); ok {
		mt.Stage(apply)
		return
	}
	apply()
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockCajaRepository is a mock implementation of CajaRepository keyed by
// localidad. AdjustTotal stages the delta on the transaction and returns
// a snapshot of what the caja will hold once the transaction commits.
type MockCajaRepository struct {
	mu      sync.RWMutex
	cajas   map[string]*domain.Caja
	pending map[usecase.Transaction]map[string]decimal.Decimal

	CreateFunc         func(ctx context.Context, caja *domain.Caja) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Caja, error)
	ListByLocationFunc func(ctx context.Context, localidad, sucursal string) ([]*domain.Caja, error)
	AdjustTotalFunc    func(ctx context.Context, tx usecase.Transaction, localidad string, delta decimal.Decimal) (*domain.Caja, error)
	SetTotalFunc       func(ctx context.Context, id string, total decimal.Decimal) (*domain.Caja, error)
	MovementSumFunc    func(ctx context.Context, localidad string) (decimal.Decimal, error)
}

func NewMockCajaRepository() *MockCajaRepository {
	return &MockCajaRepository{
		cajas:   make(map[string]*domain.Caja),
		pending: make(map[usecase.Transaction]map[string]decimal.Decimal),
	}
}

// Seed installs a caja without going through Create.
func (m *MockCajaRepository) Seed(caja *domain.Caja) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cajas[caja.Localidad] = caja
}

// Total reports the committed total for a localidad.
func (m *MockCajaRepository) Total(localidad string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if caja, ok := m.cajas[localidad]; ok {
		return caja.Total
	}
	return decimal.Zero
}

func (m *MockCajaRepository) Create(ctx context.Context, caja *domain.Caja) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, caja)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cajas[caja.Localidad]; ok {
		return domain.ErrConflict
	}
	m.cajas[caja.Localidad] = caja
	return nil
}

func (m *MockCajaRepository) GetByID(ctx context.Context, id string) (*domain.Caja, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, caja := range m.cajas {
		if caja.ID == id {
			return caja, nil
		}
	}
	return nil, domain.ErrCajaNotFound
}

func (m *MockCajaRepository) ListByLocation(ctx context.Context, localidad, sucursal string) ([]*domain.Caja, error) {
	if m.ListByLocationFunc != nil {
		return m.ListByLocationFunc(ctx, localidad, sucursal)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var cajas []*domain.Caja
	for _, caja := range m.cajas {
		if caja.Localidad == localidad && (sucursal == "" || caja.Sucursal == sucursal) {
			cajas = append(cajas, caja)
		}
	}
	return cajas, nil
}

func (m *MockCajaRepository) AdjustTotal(ctx context.Context, tx usecase.Transaction, localidad string, delta decimal.Decimal) (*domain.Caja, error) {
	if m.AdjustTotalFunc != nil {
		return m.AdjustTotalFunc(ctx, tx, localidad, delta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	caja, ok := m.cajas[localidad]
	if !ok {
		return nil, domain.ErrCajaNotFound
	}

	if m.pending[tx] == nil {
		m.pending[tx] = make(map[string]decimal.Decimal)
	}
	pend := m.pending[tx][localidad].Add(delta)
	m.pending[tx][localidad] = pend

	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		caja.Total = caja.Total.Add(delta)
		caja.UpdatedAt = time.Now().UTC()
	})

	snapshot := *caja
	snapshot.Total = caja.Total.Add(pend)
	return &snapshot, nil
}

func (m *MockCajaRepository) SetTotal(ctx context.Context, id string, total decimal.Decimal) (*domain.Caja, error) {
	if m.SetTotalFunc != nil {
		return m.SetTotalFunc(ctx, id, total)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, caja := range m.cajas {
		if caja.ID == id {
			caja.Total = total
			caja.UpdatedAt = time.Now().UTC()
			return caja, nil
		}
	}
	return nil, domain.ErrCajaNotFound
}

func (m *MockCajaRepository) MovementSum(ctx context.Context, localidad string) (decimal.Decimal, error) {
	if m.MovementSumFunc != nil {
		return m.MovementSumFunc(ctx, localidad)
	}
	return decimal.Zero, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc          func(ctx context.Context, event *domain.OutboxEvent) error
	CreateTxFunc        func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc  func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc   func(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublishedFunc func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

// Events returns the committed events.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.OutboxEvent, len(m.events))
	copy(out, m.events)
	return out
}

func (m *MockOutboxRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) CreateTx(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, event)
	}
	stage(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.events = append(m.events, event)
	})
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var events []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			events = append(events, e)
			if len(events) == limit {
				break
			}
		}
	}
	return events, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
			return nil
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published || e.PublishedAt == nil || !e.PublishedAt.Before(before) {
			kept = append(kept, e)
		}
	}
	m.events = kept
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	mu           sync.Mutex
	counter      int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.ErrConflict
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
