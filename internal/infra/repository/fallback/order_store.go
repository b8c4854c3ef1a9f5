package fallback

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/rs/zerolog"
)

var _ repository.IOrderRepo = (*OrderStore)(nil)

// OrderStore serves orders from the primary store until the first primary failure,
// then degrades to the in-memory store for the rest of the process lifetime.
// Not found, duplicate ids and a cancelled caller never degrade the store.
type OrderStore struct {
	primary  repository.IOrderRepo
	memory   repository.IOrderRepo
	degraded atomic.Bool
	reason   atomic.Value
	once     sync.Once
	logger   *zerolog.Logger
}

// NewOrderStore starts degraded when primary is nil.
func NewOrderStore(primary, memory repository.IOrderRepo, logger *zerolog.Logger) *OrderStore {
	if memory == nil {
		panic("memory order store cannot be nil")
	}
	s := &OrderStore{
		primary: primary,
		memory:  memory,
		logger:  logger,
	}
	if primary == nil {
		s.degrade(errors.New("primary datastore not configured"))
	}
	return s
}

func (s *OrderStore) IsDegraded() bool {
	return s.degraded.Load()
}

func (s *OrderStore) DegradedReason() string {
	if v, ok := s.reason.Load().(string); ok {
		return v
	}
	return ""
}

func (s *OrderStore) degrade(cause error) {
	s.once.Do(func() {
		s.reason.Store(cause.Error())
		s.degraded.Store(true)
		if s.logger != nil {
			s.logger.Warn().Err(cause).Msg("order store degraded to in-memory storage until restart")
		}
	})
}

func isAnswer(err error) bool {
	return errors.Is(err, repository.ErrOrderNotFound) ||
		errors.Is(err, repository.ErrOrderIDDuplicated) ||
		errors.Is(err, repository.ErrPaymentDuplicated) ||
		errors.Is(err, context.Canceled)
}

// usePrimary runs fn against the primary store. It reports false when the caller must retry on memory.
func (s *OrderStore) usePrimary(fn func(repo repository.IOrderRepo) error) (bool, error) {
	if s.degraded.Load() {
		return false, nil
	}
	err := fn(s.primary)
	if err == nil || isAnswer(err) {
		return true, err
	}
	s.degrade(err)
	return false, nil
}

func (s *OrderStore) CreateOrder(ctx context.Context, order *model.Order) error {
	if done, err := s.usePrimary(func(repo repository.IOrderRepo) error {
		return repo.CreateOrder(ctx, order)
	}); done {
		return err
	}
	return s.memory.CreateOrder(ctx, order)
}

func (s *OrderStore) GetOrderByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order *model.Order
	if done, err := s.usePrimary(func(repo repository.IOrderRepo) error {
		var err error
		order, err = repo.GetOrderByOrderID(ctx, orderID)
		return err
	}); done {
		return order, err
	}
	return s.memory.GetOrderByOrderID(ctx, orderID)
}

func (s *OrderStore) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if done, err := s.usePrimary(func(repo repository.IOrderRepo) error {
		var err error
		orders, err = repo.ListOrders(ctx)
		return err
	}); done {
		return orders, err
	}
	return s.memory.ListOrders(ctx)
}

func (s *OrderStore) UpdateOrderStatus(ctx context.Context, orderID string, status constants.OrderStatus) (*model.Order, error) {
	var order *model.Order
	if done, err := s.usePrimary(func(repo repository.IOrderRepo) error {
		var err error
		order, err = repo.UpdateOrderStatus(ctx, orderID, status)
		return err
	}); done {
		return order, err
	}
	return s.memory.UpdateOrderStatus(ctx, orderID, status)
}

func (s *OrderStore) ExistsOrderID(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	if done, err := s.usePrimary(func(repo repository.IOrderRepo) error {
		var err error
		exists, err = repo.ExistsOrderID(ctx, orderID)
		return err
	}); done {
		return exists, err
	}
	return s.memory.ExistsOrderID(ctx, orderID)
}
