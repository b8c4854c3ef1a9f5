package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/notify"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/rs/zerolog"
)

// CreateOrderInput is an order payload after alias normalisation.
type CreateOrderInput struct {
	OrderID        string
	UserID         string
	GuestName      string
	GuestPhone     string
	GuestAddress   string
	GuestEmail     string
	GuestCity      string
	GuestState     string
	GuestPincode   string
	Items          []model.OrderItem
	TotalPrice     model.Rupees
	DiscountAmount model.Rupees
	DeliveryDate   string
	Payment        PaymentProof
}

func (in CreateOrderInput) validate() error {
	switch {
	case strings.TrimSpace(in.GuestName) == "":
		return apperr.New(apperr.BadRequestCode, "guest_name is required")
	case strings.TrimSpace(in.GuestPhone) == "":
		return apperr.New(apperr.BadRequestCode, "guest_phone is required")
	case strings.TrimSpace(in.GuestAddress) == "":
		return apperr.New(apperr.BadRequestCode, "guest_address is required")
	case len(in.Items) == 0:
		return apperr.New(apperr.BadRequestCode, "At least one item is required")
	case in.TotalPrice < 0:
		return apperr.New(apperr.BadRequestCode, "Valid total_price is required")
	}
	for _, item := range in.Items {
		if strings.TrimSpace(item.Name) == "" {
			return apperr.New(apperr.BadRequestCode, "Item name is required")
		}
		if item.Qty <= 0 {
			return apperr.New(apperr.BadRequestCode, "Item quantity must be positive")
		}
	}
	return nil
}

type IOrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*model.Order, error)
	PersistOrder(ctx context.Context, input CreateOrderInput) (*model.Order, error)
	NotifyOrder(order *model.Order) bool
	NextOrderID(ctx context.Context) (string, error)
	ListOrders(ctx context.Context) []model.Order
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status string) (*model.Order, error)
}

var _ IOrderService = (*OrderService)(nil)

type OrderService struct {
	store          repository.IOrderRepo
	paymentService IPaymentService
	dispatcher     notify.IDispatcher
	idPrefix       string
	now            func() time.Time
	logger         *zerolog.Logger
}

func NewOrderService(store repository.IOrderRepo, paymentService IPaymentService, dispatcher notify.IDispatcher, idPrefix string, logger *zerolog.Logger) *OrderService {
	if store == nil || paymentService == nil {
		panic("order store and payment service cannot be nil")
	}
	if idPrefix == "" {
		idPrefix = constants.DefaultOrderIDPrefix
	}
	return &OrderService{
		store:          store,
		paymentService: paymentService,
		dispatcher:     dispatcher,
		idPrefix:       idPrefix,
		now:            time.Now,
		logger:         loggerOrNop(logger),
	}
}

// CreateOrder persists the order then queues its notification.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	order, err := s.PersistOrder(ctx, input)
	if err != nil {
		return nil, err
	}
	s.NotifyOrder(order)
	return order, nil
}

// PersistOrder 驗證並寫入訂單
//
// 參數:
//   - input: 正規化後的訂單資料, Payment 不為空時必須通過簽章驗證
//
// 錯誤:
//   - 400: 必填欄位缺漏, 或附帶的簽章無效
//   - 409: 呼叫端指定的 order_id 已存在, 或同一筆付款已建立過訂單
//   - 500: 無法產生唯一 order_id 或寫入失敗
func (s *OrderService) PersistOrder(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	paymentStatus := constants.PaymentStatusPending
	if !input.Payment.IsEmpty() {
		if err := s.paymentService.VerifyPayment(ctx, input.Payment); err != nil {
			return nil, err
		}
		paymentStatus = constants.PaymentStatusConfirmed
	}

	orderID := strings.TrimSpace(input.OrderID)
	if orderID == "" {
		generated, err := s.NextOrderID(ctx)
		if err != nil {
			return nil, err
		}
		orderID = generated
	}

	now := s.now().UTC()
	order := &model.Order{
		OrderID:        orderID,
		UserID:         input.UserID,
		GuestName:      strings.TrimSpace(input.GuestName),
		GuestPhone:     strings.TrimSpace(input.GuestPhone),
		GuestAddress:   strings.TrimSpace(input.GuestAddress),
		GuestEmail:     strings.TrimSpace(input.GuestEmail),
		GuestCity:      strings.TrimSpace(input.GuestCity),
		GuestState:     strings.TrimSpace(input.GuestState),
		GuestPincode:   strings.TrimSpace(input.GuestPincode),
		Items:          input.Items,
		TotalPrice:     input.TotalPrice,
		DiscountAmount: input.DiscountAmount,
		PaymentStatus:  paymentStatus,
		DeliveryDate:   input.DeliveryDate,
		Status:         constants.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if paymentStatus == constants.PaymentStatusConfirmed {
		order.PaymentID = input.Payment.PaymentID
		order.GatewayOrderID = input.Payment.GatewayOrderID
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderIDDuplicated) {
			return nil, apperr.Newf(apperr.ConflictCode, "Order with ID %s already exists", orderID)
		}
		if errors.Is(err, repository.ErrPaymentDuplicated) {
			s.logger.Warn().Str("order_id", orderID).Str("payment_id", order.PaymentID).Msg("payment already recorded, order rejected")
			return nil, apperr.Newf(apperr.ConflictCode, "Payment %s is already recorded on another order", order.PaymentID)
		}
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to save order")
		return nil, apperr.Wrap(apperr.InternalErrorCode, "Failed to save order", err)
	}

	s.logger.Info().Str("order_id", order.OrderID).Str("payment_status", string(order.PaymentStatus)).Msg("order saved")
	return order, nil
}

// NotifyOrder never blocks and never fails the caller.
func (s *OrderService) NotifyOrder(order *model.Order) bool {
	if s.dispatcher == nil || order == nil {
		return false
	}
	return s.dispatcher.Dispatch(notify.FromOrder(order))
}

// NextOrderID generates an order id the active store does not hold yet.
// A failed uniqueness check falls back to the unchecked id.
func (s *OrderService) NextOrderID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < constants.OrderIDMaxAttempts; attempt++ {
		id := NewOrderID(s.idPrefix, s.now())
		exists, err := s.store.ExistsOrderID(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("order_id", id).Msg("order id uniqueness check failed")
			return id, nil
		}
		if !exists {
			return id, nil
		}
	}
	return "", apperr.New(apperr.InternalErrorCode, "Failed to generate a unique order id")
}

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderID returns PREFIX-<base36 unix millis>-<4 base36 chars>, uppercased.
func NewOrderID(prefix string, now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36Digits[rand.IntN(len(base36Digits))]
	}
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", prefix, ts, suffix))
}

// ListOrders returns newest first. Store failures yield an empty list.
func (s *OrderService) ListOrders(ctx context.Context) []model.Order {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders, returning empty list")
		return []model.Order{}
	}
	if orders == nil {
		return []model.Order{}
	}
	return orders
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.store.GetOrderByOrderID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, apperr.New(apperr.NotFoundCode, "Order not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "Failed to load order", err)
	}
	return order, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status string) (*model.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return nil, apperr.New(apperr.BadRequestCode, "Status is required")
	}
	if !constants.IsValidOrderStatus(status) {
		return nil, apperr.Newf(apperr.BadRequestCode, "Invalid status %s", status)
	}

	order, err := s.store.UpdateOrderStatus(ctx, orderID, constants.OrderStatus(status))
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, apperr.Newf(apperr.NotFoundCode, "Order with ID %s not found", orderID)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to update order status")
		return nil, apperr.Wrap(apperr.InternalErrorCode, "Failed to update order status", err)
	}
	return order, nil
}
