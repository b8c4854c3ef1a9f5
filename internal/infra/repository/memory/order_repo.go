package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/google/uuid"
)

var _ repository.IOrderRepo = (*OrderRepo)(nil)

// OrderRepo is the non durable order store. Contents live as long as the process.
type OrderRepo struct {
	mu       sync.RWMutex
	orders   map[string]*model.Order
	payments map[string]string // payment id -> order id
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		orders:   make(map[string]*model.Order),
		payments: make(map[string]string),
	}
}

func (r *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.OrderID]; ok {
		return repository.ErrOrderIDDuplicated
	}
	if order.PaymentID != "" {
		if _, ok := r.payments[order.PaymentID]; ok {
			return repository.ErrPaymentDuplicated
		}
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.orders[order.OrderID] = order.Clone()
	if order.PaymentID != "" {
		r.payments[order.PaymentID] = order.OrderID
	}
	return nil
}

func (r *OrderRepo) GetOrderByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return order.Clone(), nil
}

// ListOrders returns newest first.
func (r *OrderRepo) ListOrders(ctx context.Context) ([]model.Order, error) {
	r.mu.RLock()
	orders := make([]model.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, *order.Clone())
	}
	r.mu.RUnlock()

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, status constants.OrderStatus) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	return order.Clone(), nil
}

func (r *OrderRepo) ExistsOrderID(ctx context.Context, orderID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.orders[orderID]
	return ok, nil
}
