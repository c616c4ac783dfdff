package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/DanielPopoola/ficmart-paynow/internal/application"
	"github.com/DanielPopoola/ficmart-paynow/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store keeps orders in process memory. It backs the memory storage driver
// and the service tests.
type Store struct {
	mu      sync.Mutex
	records map[string]*orderRecord
	locks   map[string]*sync.Mutex
	nextID  int64
	now     func() time.Time
}

type orderRecord struct {
	order        domain.Order
	transactions []domain.PaymentTransaction
	history      []domain.HistoryComment
	invoices     []domain.Invoice
	checkedAt    time.Time
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]*orderRecord),
		locks:   make(map[string]*sync.Mutex),
		now:     time.Now,
	}
}

var _ application.OrderStore = (*Store)(nil)

// CreateOrder registers an order placed by the host shop. A zero EntityID is
// assigned the next sequence value.
func (s *Store) CreateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.IncrementID == "" {
		return domain.NewValidationError("order increment id is required")
	}
	if _, exists := s.records[order.IncrementID]; exists {
		return fmt.Errorf("order #%s already exists", order.IncrementID)
	}

	s.nextID++
	if order.EntityID == 0 {
		order.EntityID = s.nextID
	}
	now := s.now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	s.records[order.IncrementID] = &orderRecord{order: cloneOrder(order)}
	return nil
}

func (s *Store) FindByIncrementID(_ context.Context, incrementID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[incrementID]
	if !ok {
		return nil, domain.NewOrderNotFoundError(incrementID)
	}
	order := cloneOrder(&rec.order)
	return &order, nil
}

// ClaimStalePayments mirrors the postgres claim: the least recently changed
// or claimed orders come first and are stamped with the current time.
func (s *Store) ClaimStalePayments(_ context.Context, statuses []domain.GatewayStatus, olderThan time.Duration, limit int) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-olderThan)

	var claimed []*orderRecord
	for _, rec := range s.records {
		o := rec.order
		if !o.HasTransaction() || !slices.Contains(statuses, o.Payment.GatewayStatus) {
			continue
		}
		if !o.UpdatedAt.Before(cutoff) || (!rec.checkedAt.IsZero() && !rec.checkedAt.Before(cutoff)) {
			continue
		}
		claimed = append(claimed, rec)
	}

	sort.Slice(claimed, func(i, j int) bool {
		return claimedSince(claimed[i]).Before(claimedSince(claimed[j]))
	})
	if limit > 0 && len(claimed) > limit {
		claimed = claimed[:limit]
	}

	orders := make([]*domain.Order, 0, len(claimed))
	for _, rec := range claimed {
		rec.checkedAt = now
		c := cloneOrder(&rec.order)
		orders = append(orders, &c)
	}
	return orders, nil
}

func claimedSince(rec *orderRecord) time.Time {
	if rec.checkedAt.After(rec.order.UpdatedAt) {
		return rec.checkedAt
	}
	return rec.order.UpdatedAt
}

// WithOrderLock holds the per order mutex while fn runs. Writes are staged on
// a working copy and become visible only when fn returns nil.
func (s *Store) WithOrderLock(ctx context.Context, incrementID string, fn func(ctx context.Context, order *domain.Order, repo application.OrderRepository) error) error {
	lock := s.orderLock(incrementID)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	order, err := s.FindByIncrementID(ctx, incrementID)
	if err != nil {
		return err
	}

	tx := &txRepository{store: s, staged: cloneOrder(order)}
	if err := fn(ctx, order, tx); err != nil {
		return err
	}

	s.commit(incrementID, tx)
	return nil
}

func (s *Store) orderLock(incrementID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[incrementID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[incrementID] = lock
	}
	return lock
}

func (s *Store) commit(incrementID string, tx *txRepository) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.records[incrementID]
	if !tx.dirty {
		return
	}
	tx.staged.UpdatedAt = s.now()
	rec.order = tx.staged
	rec.transactions = append(rec.transactions, tx.transactions...)
	rec.history = append(rec.history, tx.history...)
	rec.invoices = append(rec.invoices, tx.invoices...)
}

// Transactions returns the payment transaction log of an order.
func (s *Store) Transactions(incrementID string) []domain.PaymentTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[incrementID]; ok {
		return slices.Clone(rec.transactions)
	}
	return nil
}

// History returns the status history comments of an order.
func (s *Store) History(incrementID string) []domain.HistoryComment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[incrementID]; ok {
		return slices.Clone(rec.history)
	}
	return nil
}

func (s *Store) Invoices(incrementID string) []domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[incrementID]; ok {
		return slices.Clone(rec.invoices)
	}
	return nil
}

// SetClock replaces the store clock.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// txRepository stages writes for one WithOrderLock call.
type txRepository struct {
	store        *Store
	staged       domain.Order
	transactions []domain.PaymentTransaction
	history      []domain.HistoryComment
	invoices     []domain.Invoice
	dirty        bool
}

func (r *txRepository) SavePayment(_ context.Context, order *domain.Order) error {
	r.staged.Payment = order.Payment
	r.dirty = true
	return nil
}

func (r *txRepository) AddTransaction(_ context.Context, order *domain.Order, txn domain.PaymentTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = r.store.clock()
	}

	order.TransactionCount++
	r.staged.TransactionCount = order.TransactionCount
	r.transactions = append(r.transactions, txn)
	r.dirty = true
	return nil
}

func (r *txRepository) AddHistoryComment(_ context.Context, _ *domain.Order, comment domain.HistoryComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = r.store.clock()
	}

	r.history = append(r.history, comment)
	r.dirty = true
	return nil
}

func (r *txRepository) CancelOrder(_ context.Context, order *domain.Order) error {
	if order.IsCanceled() {
		return nil
	}
	order.State = domain.OrderStateCanceled
	order.TotalDue = decimal.Zero
	r.staged.State = order.State
	r.staged.TotalDue = order.TotalDue
	r.dirty = true
	return nil
}

// RegisterCapture books a payment of amount against the order. An invoice is
// produced when something was still due.
func (r *txRepository) RegisterCapture(_ context.Context, order *domain.Order, amount decimal.Decimal) (*domain.Invoice, error) {
	if !amount.IsPositive() || !order.TotalDue.IsPositive() {
		return nil, nil
	}
	if amount.GreaterThan(order.TotalDue) {
		amount = order.TotalDue
	}

	order.TotalPaid = order.TotalPaid.Add(amount)
	order.TotalDue = order.TotalDue.Sub(amount)
	order.State = domain.OrderStateProcessing
	r.staged.TotalPaid = order.TotalPaid
	r.staged.TotalDue = order.TotalDue
	r.staged.State = order.State

	invoice := domain.Invoice{
		ID:          uuid.New().String(),
		IncrementID: fmt.Sprintf("%s-%d", order.IncrementID, len(r.store.Invoices(order.IncrementID))+len(r.invoices)+1),
		Amount:      amount,
		CreatedAt:   r.store.clock(),
	}
	r.invoices = append(r.invoices, invoice)
	r.dirty = true
	return &invoice, nil
}

func (s *Store) clock() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now()
}

func cloneOrder(o *domain.Order) domain.Order {
	c := *o
	c.Items = make([]domain.OrderItem, len(o.Items))
	for i, item := range o.Items {
		item.Categories = slices.Clone(item.Categories)
		c.Items[i] = item
	}
	return c
}
