package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ repository.IOrderRepo = (*OrderRepo)(nil)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrder - 建立訂單, storage key 由這裡指派
// order_id 與 payment_id 各有 unique index, 衝突時回傳對應的 sentinel error
func (r *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	err := r.db.WithContext(ctx).Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if order.PaymentID == "" {
			return repository.ErrOrderIDDuplicated
		}
		exists, existsErr := r.ExistsOrderID(ctx, order.OrderID)
		if existsErr != nil {
			return fmt.Errorf("failed to create order %s: %w", order.OrderID, err)
		}
		if exists {
			return repository.ErrOrderIDDuplicated
		}
		return repository.ErrPaymentDuplicated
	}
	if err != nil {
		return fmt.Errorf("failed to create order %s: %w", order.OrderID, err)
	}
	return nil
}

func (r *OrderRepo) GetOrderByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// ListOrders - 依建立時間新到舊
func (r *OrderRepo) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, status constants.OrderStatus) (*model.Order, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", orderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}
	return r.GetOrderByOrderID(ctx, orderID)
}

func (r *OrderRepo) ExistsOrderID(ctx context.Context, orderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Where("order_id = ?", orderID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check order id %s: %w", orderID, err)
	}
	return count > 0, nil
}
