package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/notify"
	"github.com/RoyceAzure/lab/storefront/internal/infra/payment/razorpay"
	gatewaymock "github.com/RoyceAzure/lab/storefront/internal/infra/payment/razorpay/mock"
	"github.com/RoyceAzure/lab/storefront/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/fallback"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/memory"
	repomock "github.com/RoyceAzure/lab/storefront/internal/infra/repository/mock"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pricing"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const testSecret = "router_test_secret"

type RouterSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	primary *repomock.MockIOrderRepo
	store   *fallback.OrderStore
	router  *chi.Mux
	limiter *ratelimit.KeyedLimiter
}

func (s *RouterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	gateway := gatewaymock.NewMockIGateway(s.ctrl)
	gateway.EXPECT().Configured().Return(true).AnyTimes()
	gateway.EXPECT().KeyID().Return("rzp_test_key").AnyTimes()
	gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req razorpay.CreateOrderRequest) (*model.GatewayOrder, error) {
			return &model.GatewayOrder{ID: "order_" + req.Receipt, Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt}, nil
		}).AnyTimes()

	// primary store fails on first use
	s.primary = repomock.NewMockIOrderRepo(s.ctrl)
	s.primary.EXPECT().ExistsOrderID(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused")).AnyTimes()
	s.primary.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).AnyTimes()
	s.store = fallback.NewOrderStore(s.primary, memory.NewOrderRepo(), nil)

	calc := pricing.NewCalculator(pricing.DefaultRules())
	dispatcher := notify.NewDispatcher(nil, nil)
	cartService := service.NewCartService(memory.NewCartRepo(), calc, nil)
	addressService := service.NewAddressService(memory.NewAddressRepo(), nil)
	paymentService := service.NewPaymentService(gateway, testSecret, nil)
	orderService := service.NewOrderService(s.store, paymentService, dispatcher, constants.DefaultOrderIDPrefix, nil)
	reviewService := service.NewReviewService(memory.NewReviewRepo(), nil)
	draftService := service.NewDraftService(cartService, addressService, calc, nil)
	checkoutService := service.NewCheckoutService(memory.NewCheckoutSessionRepo(constants.CheckoutSessionTTL), draftService, paymentService, orderService, cartService, nil)

	s.limiter = ratelimit.NewKeyedLimiter(&ratelimit.LimiterConfig{Capacity: 100, RatePS: 10})
	server := api.NewServer(
		handler.NewOrderHandler(orderService),
		handler.NewPaymentHandler(paymentService),
		handler.NewReviewHandler(reviewService),
		handler.NewCartHandler(cartService),
		handler.NewAddressHandler(addressService),
		handler.NewCheckoutHandler(draftService, checkoutService),
		handler.NewHealthHandler(s.store, dispatcher, nil, nil, true),
		s.limiter,
	)
	s.router = SetupRouter(server, nil, nil)
}

func (s *RouterSuite) TearDownTest() {
	s.limiter.Stop()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) do(method, path string, body any, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Header().Get("Content-Type") == "application/json" && rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func (s *RouterSuite) doRaw(method, path, raw string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func orderPayload() map[string]any {
	return map[string]any{
		"guest_name":    "Meena",
		"guest_phone":   "9876543210",
		"guest_address": "12 Temple Street, Madurai",
		"items":         []map[string]any{{"name": "Ghee", "qty": 1, "price": 550}},
		"total_price":   467,
	}
}

func (s *RouterSuite) TestRootBanner() {
	rec, _ := s.do(http.MethodGet, "/", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal(handler.Banner, rec.Body.String())
}

func (s *RouterSuite) TestCreateOrderSurvivesPrimaryOutage() {
	rec, body := s.do(http.MethodPost, "/api/orders", orderPayload())
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Require().Equal(true, body["success"])
	order := body["order"].(map[string]any)
	s.Require().Regexp(`^RG-[A-Z0-9]+-[A-Z0-9]{4}$`, order["order_id"])
	s.Require().Equal("pending", order["payment_status"])
	s.Require().True(s.store.IsDegraded())

	rec, body = s.do(http.MethodGet, "/api/orders", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().EqualValues(1, body["count"])

	rec, body = s.do(http.MethodGet, "/api/orders/"+order["order_id"].(string), nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec, body = s.do(http.MethodPatch, "/api/orders/"+order["order_id"].(string)+"/status", map[string]any{"status": "shipped"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal("Order status updated to shipped", body["message"])

	rec, _ = s.do(http.MethodGet, "/api/health", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), `"order_store":"memory"`)
}

func (s *RouterSuite) TestOrderErrors() {
	rec, body := s.do(http.MethodGet, "/api/orders/RG-NOPE-0000", nil)
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Require().Equal(false, body["success"])
	s.Require().Equal("Order not found", body["message"])

	rec, body = s.do(http.MethodPatch, "/api/orders/RG-NOPE-0000/status", map[string]any{})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("Status is required", body["message"])
}

func (s *RouterSuite) TestMalformedJSONIsRejected() {
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/payments/verify"},
		{http.MethodPatch, "/api/orders/RG-NOPE-0000/status"},
		{http.MethodPost, "/api/reviews"},
		{http.MethodPost, "/api/checkout/sessions/01HZZZZZZZZZZZZZZZZZZZZZZZ/confirm"},
	} {
		rec, body := s.doRaw(tc.method, tc.path, `{"status": `)
		s.Require().Equal(http.StatusBadRequest, rec.Code, tc.path)
		s.Require().Equal(handler.MsgInvalidPayload, body["message"], tc.path)
	}

	// an empty body still reaches field validation
	rec, body := s.doRaw(http.MethodPatch, "/api/orders/RG-NOPE-0000/status", "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("Status is required", body["message"])
}

func (s *RouterSuite) TestTamperedSignatureNeverPersists() {
	payload := orderPayload()
	payload["razorpay_order_id"] = "O1"
	payload["razorpay_payment_id"] = "P1"
	payload["razorpay_signature"] = "forged"
	rec, body := s.do(http.MethodPost, "/api/orders", payload)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal(service.MsgInvalidSignature, body["message"])

	_, body = s.do(http.MethodGet, "/api/orders", nil)
	s.Require().EqualValues(0, body["count"])
}

func (s *RouterSuite) TestPayments() {
	rec, body := s.do(http.MethodPost, "/api/payments/create-order", map[string]any{"amount": 46700})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal("rzp_test_key", body["keyId"])
	s.Require().EqualValues(46700, body["order"].(map[string]any)["amount"])

	rec, body = s.do(http.MethodPost, "/api/payments/create-order", map[string]any{"amount": "abc"})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal(service.MsgInvalidAmount, body["message"])

	sig := razorpay.Sign(testSecret, "O1", "P1")
	rec, body = s.do(http.MethodPost, "/api/payments/verify", map[string]any{
		"razorpay_order_id": "O1", "razorpay_payment_id": "P1", "razorpay_signature": sig,
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal(service.MsgPaymentVerified, body["message"])

	rec, body = s.do(http.MethodPost, "/api/payments/verify", map[string]any{
		"razorpay_order_id": "O1", "razorpay_payment_id": "P2", "razorpay_signature": sig,
	})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal(false, body["success"])
}

func (s *RouterSuite) TestReviews() {
	rec, body := s.do(http.MethodPost, "/api/reviews", map[string]any{"product_name": "Ghee", "comment": "Fresh", "rating": 9})
	s.Require().Equal(http.StatusCreated, rec.Code)
	data := body["data"].(map[string]any)
	s.Require().EqualValues(0, data["rating"])
	s.Require().Equal("anonymous@shreeraagaswaadghar.com", data["user_email"])

	rec, body = s.do(http.MethodGet, "/api/reviews?productName=Ghee", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().EqualValues(1, body["count"])

	rec, body = s.do(http.MethodDelete, "/api/reviews/1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal("Review deleted successfully", body["message"])

	rec, _ = s.do(http.MethodGet, "/api/reviews", nil)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestCartCheckoutFlow() {
	guest := []string{constants.GuestIDHeader, "g-42"}
	rec, body := s.do(http.MethodPost, "/api/cart/items", map[string]any{"product_name": "Ghee", "category": "Dairy", "price": 550}, guest...)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().EqualValues(467, body["cart"].(map[string]any)["total"])

	customer := map[string]any{
		"full_name": "Meena", "phone": "9876543210", "address_line1": "12 Temple Street",
		"city": "Madurai", "state": "Tamil Nadu", "pincode": "625001",
	}
	rec, body = s.do(http.MethodPost, "/api/checkout/sessions", map[string]any{"source": "cart", "customer": customer}, guest...)
	s.Require().Equal(http.StatusCreated, rec.Code)
	sessionID := body["session"].(map[string]any)["session_id"].(string)
	gatewayOrderID := body["order"].(map[string]any)["id"].(string)

	rec, body = s.do(http.MethodPost, "/api/checkout/sessions/"+sessionID+"/confirm", map[string]any{
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  razorpay.Sign(testSecret, gatewayOrderID, "pay_1"),
	}, guest...)
	s.Require().Equal(http.StatusOK, rec.Code)
	summary := body["summary"].(map[string]any)
	s.Require().Equal(true, summary["success"])
	s.Require().Equal("DONE", summary["state"])
	s.Require().Equal("3 days", summary["delivery_time"])

	_, body = s.do(http.MethodGet, "/api/cart", nil, guest...)
	s.Require().EqualValues(0, body["cart"].(map[string]any)["count"])

	rec, _ = s.do(http.MethodGet, "/api/checkout/sessions/"+sessionID, nil)
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestAnonymousCallersGetSeparateCarts() {
	rec, body := s.do(http.MethodPost, "/api/cart/items", map[string]any{"product_name": "Ghee", "category": "oil", "price": 550})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().EqualValues(1, body["cart"].(map[string]any)["count"])
	issued := rec.Header().Get(constants.GuestIDHeader)
	s.Require().NotEmpty(issued)

	// another header-less caller starts empty
	rec, body = s.do(http.MethodGet, "/api/cart", nil)
	s.Require().EqualValues(0, body["cart"].(map[string]any)["count"])
	s.Require().NotEqual(issued, rec.Header().Get(constants.GuestIDHeader))

	// the first caller keeps its cart by sending the issued id back
	_, body = s.do(http.MethodGet, "/api/cart", nil, constants.GuestIDHeader, issued)
	s.Require().EqualValues(1, body["cart"].(map[string]any)["count"])
}

func (s *RouterSuite) TestProfileAddressRequiresUser() {
	rec, _ := s.do(http.MethodGet, "/api/profile/address", nil)
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/profile/address", nil, constants.UserIDHeader, "u-9")
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestWhatsAppDisabled() {
	rec, body := s.do(http.MethodPost, "/api/whatsapp", map[string]any{"body": "hi"})
	s.Require().Equal(http.StatusNotImplemented, rec.Code)
	s.Require().Equal(handler.MsgWhatsAppDisabled, body["error"])

	rec, _ = s.do(http.MethodOptions, "/api/whatsapp", nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)
}
