package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/payment/razorpay"
	gatewaymock "github.com/RoyceAzure/lab/storefront/internal/infra/payment/razorpay/mock"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/memory"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/pricing"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CheckoutServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	gateway    *gatewaymock.MockIGateway
	orders     *memory.OrderRepo
	dispatcher *recordingDispatcher
	cart       *CartService
	service    *CheckoutService
	ctx        context.Context
}

func (s *CheckoutServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.gateway = gatewaymock.NewMockIGateway(s.ctrl)
	s.gateway.EXPECT().Configured().Return(true).AnyTimes()
	s.gateway.EXPECT().KeyID().Return("rzp_test_key").AnyTimes()
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req razorpay.CreateOrderRequest) (*model.GatewayOrder, error) {
			return &model.GatewayOrder{ID: "order_" + req.Receipt, Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt, Status: "created"}, nil
		}).AnyTimes()

	calc := pricing.NewCalculator(pricing.DefaultRules())
	s.orders = memory.NewOrderRepo()
	s.dispatcher = &recordingDispatcher{}
	s.cart = NewCartService(memory.NewCartRepo(), calc, nil)
	address := NewAddressService(memory.NewAddressRepo(), nil)
	payment := NewPaymentService(s.gateway, testSecret, nil)
	orderService := NewOrderService(s.orders, payment, s.dispatcher, "RG", nil)
	draft := NewDraftService(s.cart, address, calc, nil)
	s.service = NewCheckoutService(memory.NewCheckoutSessionRepo(constants.CheckoutSessionTTL), draft, payment, orderService, s.cart, nil)
}

func TestCheckoutServiceSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceSuite))
}

func (s *CheckoutServiceSuite) start() *model.CheckoutSession {
	_, err := s.cart.AddToCart(s.ctx, guest(), model.LineItem{ProductName: "Ghee", Category: "Dairy", UnitPrice: 550}, 1)
	s.Require().NoError(err)
	result, err := s.service.StartCheckout(s.ctx, guest(), DraftInput{Source: model.DraftSourceCart, Customer: validCustomer()})
	s.Require().NoError(err)
	s.Require().Equal("rzp_test_key", result.KeyID)
	return result.Session
}

func (s *CheckoutServiceSuite) TestHappyPath() {
	session := s.start()
	s.Require().Equal(model.CheckoutGatewayOrderCreated, session.State)
	s.Require().Equal(model.Paise(46700), session.GatewayOrder.Amount)
	s.Require().Equal(session.OrderID, session.GatewayOrder.Receipt)

	sig := razorpay.Sign(testSecret, session.GatewayOrder.ID, "pay_1")
	done, err := s.service.ConfirmPayment(s.ctx, guest(), session.ID, "pay_1", sig)
	s.Require().NoError(err)
	s.Require().Equal(model.CheckoutDone, done.State)
	s.Require().Equal(constants.PaymentStatusConfirmed, done.Order.PaymentStatus)

	summary := done.Summary()
	s.Require().True(summary.Success)
	s.Require().Equal(session.OrderID, summary.OrderID)
	s.Require().Equal(model.Rupees(467), summary.Amount)

	stored, err := s.orders.GetOrderByOrderID(s.ctx, session.OrderID)
	s.Require().NoError(err)
	s.Require().Equal("pay_1", stored.PaymentID)
	s.Require().Equal(1, s.dispatcher.count())
	s.Require().Empty(s.cart.GetCart(s.ctx, guest()).Items)
}

func (s *CheckoutServiceSuite) TestTamperedSignatureFails() {
	session := s.start()
	_, err := s.service.ConfirmPayment(s.ctx, guest(), session.ID, "pay_1", "forged")
	s.Require().True(apperr.IsCode(err, apperr.BadRequestCode))

	failed, err := s.service.GetSession(s.ctx, guest(), session.ID)
	s.Require().NoError(err)
	s.Require().Equal(model.CheckoutFailed, failed.State)
	s.Require().Equal(ReasonVerificationFailed, failed.FailureReason)

	exists, err := s.orders.ExistsOrderID(s.ctx, session.OrderID)
	s.Require().NoError(err)
	s.Require().False(exists)
	s.Require().NotEmpty(s.cart.GetCart(s.ctx, guest()).Items)
}

func (s *CheckoutServiceSuite) TestCancelThenConfirmConflicts() {
	session := s.start()
	cancelled, err := s.service.CancelCheckout(s.ctx, guest(), session.ID)
	s.Require().NoError(err)
	s.Require().Equal(model.CheckoutCancelled, cancelled.State)
	s.Require().Equal(ReasonPaymentNotCompleted, cancelled.Summary().FailureReason)
	s.Require().False(cancelled.Summary().Success)

	sig := razorpay.Sign(testSecret, session.GatewayOrder.ID, "pay_1")
	_, err = s.service.ConfirmPayment(s.ctx, guest(), session.ID, "pay_1", sig)
	s.Require().True(apperr.IsCode(err, apperr.ConflictCode))
}

func (s *CheckoutServiceSuite) TestConfirmTwiceConflicts() {
	session := s.start()
	sig := razorpay.Sign(testSecret, session.GatewayOrder.ID, "pay_1")
	_, err := s.service.ConfirmPayment(s.ctx, guest(), session.ID, "pay_1", sig)
	s.Require().NoError(err)
	_, err = s.service.ConfirmPayment(s.ctx, guest(), session.ID, "pay_1", sig)
	s.Require().True(apperr.IsCode(err, apperr.ConflictCode))
	s.Require().Len(s.service.orderService.ListOrders(s.ctx), 1)
}

func (s *CheckoutServiceSuite) TestOtherScopeCannotSeeSession() {
	session := s.start()
	_, err := s.service.GetSession(s.ctx, member(), session.ID)
	s.Require().True(apperr.IsCode(err, apperr.NotFoundCode))
}

func (s *CheckoutServiceSuite) TestNotifyRejectedStillCompletes() {
	s.dispatcher.reject = true
	session := s.start()
	sig := razorpay.Sign(testSecret, session.GatewayOrder.ID, "pay_1")
	done, err := s.service.ConfirmPayment(s.ctx, guest(), session.ID, "pay_1", sig)
	s.Require().NoError(err)
	s.Require().Equal(model.CheckoutDone, done.State)
}

func (s *CheckoutServiceSuite) TestExpiredSession() {
	sessions := memory.NewCheckoutSessionRepo(time.Nanosecond)
	s.service.sessions = sessions
	session := s.start()
	time.Sleep(time.Millisecond)
	_, err := s.service.GetSession(s.ctx, guest(), session.ID)
	s.Require().True(apperr.IsCode(err, apperr.NotFoundCode))
}
