package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlight/pocketledger/internal/domain"
	"github.com/finlight/pocketledger/internal/usecase"
)

// MockSourceRepository is a mock implementation of SourceRepository.
type MockSourceRepository struct {
	mu      sync.RWMutex
	sources map[string]*domain.Source

	CreateFunc        func(ctx context.Context, source *domain.Source) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Source, error)
	ListFunc          func(ctx context.Context) ([]*domain.Source, error)
	AdjustBalanceFunc func(ctx context.Context, tx usecase.Transaction, id string, delta decimal.Decimal, updatedAt time.Time) error
	CountFunc         func(ctx context.Context) (int64, error)
}

func NewMockSourceRepository() *MockSourceRepository {
	return &MockSourceRepository{
		sources: make(map[string]*domain.Source),
	}
}

func (m *MockSourceRepository) Create(ctx context.Context, source *domain.Source) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, source)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[source.ID] = source
	return nil
}

func (m *MockSourceRepository) GetByID(ctx context.Context, id string) (*domain.Source, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if src, ok := m.sources[id]; ok {
		return src, nil
	}
	return nil, domain.ErrSourceNotFound
}

func (m *MockSourceRepository) List(ctx context.Context) ([]*domain.Source, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sources []*domain.Source
	for _, src := range m.sources {
		sources = append(sources, src)
	}
	return sources, nil
}

func (m *MockSourceRepository) AdjustBalance(ctx context.Context, tx usecase.Transaction, id string, delta decimal.Decimal, updatedAt time.Time) error {
	if m.AdjustBalanceFunc != nil {
		return m.AdjustBalanceFunc(ctx, tx, id, delta, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	src, ok := m.sources[id]
	if !ok {
		return domain.ErrSourceNotFound
	}
	src.Balance = src.Balance.Add(delta)
	src.UpdatedAt = updatedAt
	return nil
}

func (m *MockSourceRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.sources)), nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction

	CreateFunc      func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	ListHistoryFunc func(ctx context.Context, limit, offset int) ([]*domain.HistoryEntry, error)
	CountFunc       func(ctx context.Context) (int64, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, txn)
	return nil
}

func (m *MockTransactionRepository) ListHistory(ctx context.Context, limit, offset int) ([]*domain.HistoryEntry, error) {
	if m.ListHistoryFunc != nil {
		return m.ListHistoryFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Newest first: iterate the insertion order backwards.
	var entries []*domain.HistoryEntry
	for i := len(m.transactions) - 1; i >= 0; i-- {
		entries = append(entries, &domain.HistoryEntry{
			Transaction: *m.transactions[i],
			SourceName:  "Unknown",
		})
	}
	if offset >= len(entries) {
		return nil, nil
	}
	entries = entries[offset:]
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *MockTransactionRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.transactions)), nil
}

// All returns every recorded transaction, oldest first.
func (m *MockTransactionRepository) All() []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Transaction(nil), m.transactions...)
}

// MockReceivableRepository is a mock implementation of ReceivableRepository.
type MockReceivableRepository struct {
	mu          sync.RWMutex
	receivables map[string]*domain.Receivable

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, receivable *domain.Receivable) error
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Receivable, error)
	MarkSettledFunc      func(ctx context.Context, tx usecase.Transaction, id string, settledAt time.Time) error
	ListOpenFunc         func(ctx context.Context) ([]*domain.Receivable, error)
}

func NewMockReceivableRepository() *MockReceivableRepository {
	return &MockReceivableRepository{
		receivables: make(map[string]*domain.Receivable),
	}
}

func (m *MockReceivableRepository) Create(ctx context.Context, tx usecase.Transaction, receivable *domain.Receivable) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, receivable)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receivables[receivable.ID] = receivable
	return nil
}

func (m *MockReceivableRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Receivable, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.receivables[id]; ok {
		return r, nil
	}
	return nil, domain.ErrReceivableNotFound
}

func (m *MockReceivableRepository) MarkSettled(ctx context.Context, tx usecase.Transaction, id string, settledAt time.Time) error {
	if m.MarkSettledFunc != nil {
		return m.MarkSettledFunc(ctx, tx, id, settledAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.receivables[id]
	if !ok {
		return domain.ErrReceivableNotFound
	}
	r.Settled = true
	r.SettledAt = &settledAt
	return nil
}

func (m *MockReceivableRepository) ListOpen(ctx context.Context) ([]*domain.Receivable, error) {
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var open []*domain.Receivable
	for _, r := range m.receivables {
		if !r.Settled {
			open = append(open, r)
		}
	}
	return open, nil
}

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	Results []*usecase.SourceReconciliation

	ReconcileSourcesFunc func(ctx context.Context) ([]*usecase.SourceReconciliation, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

func (m *MockLedgerRepository) ReconcileSources(ctx context.Context) ([]*usecase.SourceReconciliation, error) {
	if m.ReconcileSourcesFunc != nil {
		return m.ReconcileSourcesFunc(ctx)
	}
	return m.Results, nil
}

// MockTransaction is a mock database transaction.
type MockTransaction struct {
	mu         sync.Mutex
	committed  bool
	rolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.committed {
		m.rolledBack = true
	}
	return nil
}

func (m *MockTransaction) Committed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.committed
}

func (m *MockTransaction) RolledBack() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rolledBack
}

// MockTransactionManager is a mock transaction manager.
type MockTransactionManager struct {
	mu           sync.Mutex
	transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.transactions = append(m.transactions, tx)
	return tx, nil
}

// Transactions returns every transaction handed out by Begin.
func (m *MockTransactionManager) Transactions() []*MockTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*MockTransaction(nil), m.transactions...)
}

// MockIDGenerator is a mock ID generator producing sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
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
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}

// MockRetrier is a mock retrier that re-runs the operation on any error, up
// to MaxAttempts attempts, with no backoff.
type MockRetrier struct {
	mu       sync.Mutex
	attempts int

	MaxAttempts int
	RetryFunc   func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{MaxAttempts: 3}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	var err error
	for i := 0; i < m.MaxAttempts; i++ {
		m.mu.Lock()
		m.attempts++
		m.mu.Unlock()
		if err = operation(); err == nil {
			return nil
		}
	}
	return err
}

// Attempts returns how many times the operation was invoked.
func (m *MockRetrier) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

// MockCache is an in-memory mock cache.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
