package fallback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/memory"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/mock"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newOrder(orderID string) *model.Order {
	now := time.Now().UTC()
	return &model.Order{
		OrderID:      orderID,
		GuestName:    "Meena",
		GuestPhone:   "9876543210",
		GuestAddress: "12 Temple Street",
		Items:        []model.OrderItem{{Name: "Turmeric Powder", Qty: 1, Price: 125}},
		TotalPrice:   125,
		Status:       constants.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestOrderStoreStartsDegradedWithoutPrimary(t *testing.T) {
	store := NewOrderStore(nil, memory.NewOrderRepo(), nil)
	require.True(t, store.IsDegraded())
	require.NotEmpty(t, store.DegradedReason())

	ctx := context.Background()
	require.NoError(t, store.CreateOrder(ctx, newOrder("RG-1-AAAA")))
	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestOrderStoreDegradesOnPrimaryFailureAndStaysDegraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mock.NewMockIOrderRepo(ctrl)
	store := NewOrderStore(primary, memory.NewOrderRepo(), nil)
	ctx := context.Background()

	primary.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: connection refused")).Times(1)

	order := newOrder("RG-1-BBBB")
	require.NoError(t, store.CreateOrder(ctx, order))
	require.True(t, store.IsDegraded())

	// primary must not be touched again
	got, err := store.GetOrderByOrderID(ctx, "RG-1-BBBB")
	require.NoError(t, err)
	require.Equal(t, "Meena", got.GuestName)
	require.NotEmpty(t, got.ID)

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestOrderStoreNotFoundDoesNotDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mock.NewMockIOrderRepo(ctrl)
	store := NewOrderStore(primary, memory.NewOrderRepo(), nil)
	ctx := context.Background()

	primary.EXPECT().GetOrderByOrderID(gomock.Any(), "missing").Return(nil, repository.ErrOrderNotFound)
	primary.EXPECT().UpdateOrderStatus(gomock.Any(), "missing", constants.OrderStatusShipped).Return(nil, repository.ErrOrderNotFound)

	_, err := store.GetOrderByOrderID(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
	_, err = store.UpdateOrderStatus(ctx, "missing", constants.OrderStatusShipped)
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
	require.False(t, store.IsDegraded())
}

func TestOrderStoreDuplicatePaymentDoesNotDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mock.NewMockIOrderRepo(ctrl)
	store := NewOrderStore(primary, memory.NewOrderRepo(), nil)

	primary.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(repository.ErrPaymentDuplicated)

	err := store.CreateOrder(context.Background(), newOrder("RG-2-BBBB"))
	require.ErrorIs(t, err, repository.ErrPaymentDuplicated)
	require.False(t, store.IsDegraded())
}

func TestOrderStoreUsesPrimaryWhenHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mock.NewMockIOrderRepo(ctrl)
	store := NewOrderStore(primary, memory.NewOrderRepo(), nil)
	ctx := context.Background()

	primary.EXPECT().ExistsOrderID(gomock.Any(), "RG-1-CCCC").Return(true, nil)
	primary.EXPECT().ListOrders(gomock.Any()).Return([]model.Order{*newOrder("RG-1-CCCC")}, nil)

	exists, err := store.ExistsOrderID(ctx, "RG-1-CCCC")
	require.NoError(t, err)
	require.True(t, exists)

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.False(t, store.IsDegraded())
}
