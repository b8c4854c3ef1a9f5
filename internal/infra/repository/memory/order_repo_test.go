package memory

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/stretchr/testify/suite"
)

type OrderRepoSuite struct {
	suite.Suite
	repo *OrderRepo
	ctx  context.Context
}

func (s *OrderRepoSuite) SetupTest() {
	s.repo = NewOrderRepo()
	s.ctx = context.Background()
}

func (s *OrderRepoSuite) TestListNewestFirst() {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"RG-A-0001", "RG-A-0002", "RG-A-0003"} {
		err := s.repo.CreateOrder(s.ctx, &model.Order{OrderID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		s.Require().NoError(err)
	}

	orders, err := s.repo.ListOrders(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(orders, 3)
	s.Equal("RG-A-0003", orders[0].OrderID)
	s.Equal("RG-A-0001", orders[2].OrderID)
}

func (s *OrderRepoSuite) TestDuplicateOrderID() {
	s.Require().NoError(s.repo.CreateOrder(s.ctx, &model.Order{OrderID: "RG-B-0001"}))
	err := s.repo.CreateOrder(s.ctx, &model.Order{OrderID: "RG-B-0001"})
	s.ErrorIs(err, repository.ErrOrderIDDuplicated)
}

func (s *OrderRepoSuite) TestDuplicatePaymentID() {
	s.Require().NoError(s.repo.CreateOrder(s.ctx, &model.Order{OrderID: "RG-E-0001", PaymentID: "pay_1"}))
	err := s.repo.CreateOrder(s.ctx, &model.Order{OrderID: "RG-E-0002", PaymentID: "pay_1"})
	s.ErrorIs(err, repository.ErrPaymentDuplicated)

	// unpaid orders carry no payment id and never collide
	s.Require().NoError(s.repo.CreateOrder(s.ctx, &model.Order{OrderID: "RG-E-0003"}))
	s.Require().NoError(s.repo.CreateOrder(s.ctx, &model.Order{OrderID: "RG-E-0004"}))

	exists, err := s.repo.ExistsOrderID(s.ctx, "RG-E-0002")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *OrderRepoSuite) TestUpdateStatus() {
	created := time.Now().Add(-time.Hour).UTC()
	s.Require().NoError(s.repo.CreateOrder(s.ctx, &model.Order{OrderID: "RG-C-0001", Status: constants.OrderStatusPending, UpdatedAt: created}))

	order, err := s.repo.UpdateOrderStatus(s.ctx, "RG-C-0001", constants.OrderStatusShipped)
	s.Require().NoError(err)
	s.Equal(constants.OrderStatusShipped, order.Status)
	s.True(order.UpdatedAt.After(created))

	_, err = s.repo.UpdateOrderStatus(s.ctx, "nope", constants.OrderStatusShipped)
	s.ErrorIs(err, repository.ErrOrderNotFound)
}

func (s *OrderRepoSuite) TestReturnedOrderIsACopy() {
	s.Require().NoError(s.repo.CreateOrder(s.ctx, &model.Order{OrderID: "RG-D-0001", Items: []model.OrderItem{{Name: "Ghee", Qty: 1, Price: 300}}}))

	order, err := s.repo.GetOrderByOrderID(s.ctx, "RG-D-0001")
	s.Require().NoError(err)
	order.Items[0].Qty = 99

	again, err := s.repo.GetOrderByOrderID(s.ctx, "RG-D-0001")
	s.Require().NoError(err)
	s.Equal(1, again.Items[0].Qty)
}

func TestOrderRepoSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoSuite))
}
