package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/payment/razorpay"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/rs/zerolog"
)

const (
	MsgGatewayNotConfigured = "Razorpay is not configured on the server."
	MsgInvalidAmount        = "Valid amount is required to create a payment order."
	MsgMissingPaymentFields = "Missing Razorpay payment details for verification."
	MsgInvalidSignature     = "Invalid payment signature. Payment verification failed."
	MsgPaymentVerified      = "Payment verified successfully."
)

type PaymentProof struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
}

func (p PaymentProof) IsEmpty() bool {
	return p.GatewayOrderID == "" && p.PaymentID == "" && p.Signature == ""
}

type IPaymentService interface {
	CreateGatewayOrder(ctx context.Context, amount model.Paise, currency, receipt string) (*model.GatewayOrder, string, error)
	VerifyPayment(ctx context.Context, proof PaymentProof) error
	Configured() bool
}

var _ IPaymentService = (*PaymentService)(nil)

type PaymentService struct {
	gateway   razorpay.IGateway
	keySecret string
	logger    *zerolog.Logger
}

func NewPaymentService(gateway razorpay.IGateway, keySecret string, logger *zerolog.Logger) *PaymentService {
	if gateway == nil {
		panic("payment gateway cannot be nil")
	}
	return &PaymentService{gateway: gateway, keySecret: keySecret, logger: loggerOrNop(logger)}
}

func (s *PaymentService) Configured() bool {
	return s.gateway.Configured() && s.keySecret != ""
}

// CreateGatewayOrder 在 razorpay 建立遠端訂單
//
// 參數:
//   - amount: 一律為 paise
//   - currency: 空字串時為 INR
//   - receipt: 空字串時為 rcpt_<unix millis>
//
// 錯誤:
//   - 500: 未設定金鑰, 或遠端呼叫失敗
//   - 400: amount <= 0
func (s *PaymentService) CreateGatewayOrder(ctx context.Context, amount model.Paise, currency, receipt string) (*model.GatewayOrder, string, error) {
	if !s.gateway.Configured() {
		return nil, "", apperr.New(apperr.InternalErrorCode, MsgGatewayNotConfigured)
	}
	if !amount.IsPositive() {
		return nil, "", apperr.New(apperr.BadRequestCode, MsgInvalidAmount)
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	if strings.TrimSpace(receipt) == "" {
		receipt = fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())
	}

	order, err := s.gateway.CreateOrder(ctx, razorpay.CreateOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", int64(amount)).Str("receipt", receipt).Msg("razorpay create order failed")
		if errors.Is(err, razorpay.ErrNotConfigured) {
			return nil, "", apperr.Wrap(apperr.InternalErrorCode, MsgGatewayNotConfigured, err)
		}
		var gwErr *razorpay.GatewayError
		if errors.As(err, &gwErr) {
			return nil, "", apperr.Wrap(apperr.InternalErrorCode, gwErr.Error(), err)
		}
		return nil, "", apperr.Wrap(apperr.InternalErrorCode, "Failed to create Razorpay order", err)
	}
	return order, s.gateway.KeyID(), nil
}

// VerifyPayment returns nil only for an exact signature of "order_id|payment_id".
func (s *PaymentService) VerifyPayment(ctx context.Context, proof PaymentProof) error {
	if s.keySecret == "" {
		return apperr.New(apperr.InternalErrorCode, MsgGatewayNotConfigured)
	}
	if proof.GatewayOrderID == "" || proof.PaymentID == "" || proof.Signature == "" {
		return apperr.New(apperr.BadRequestCode, MsgMissingPaymentFields)
	}
	if !razorpay.VerifySignature(s.keySecret, proof.GatewayOrderID, proof.PaymentID, proof.Signature) {
		s.logger.Warn().Str("gateway_order_id", proof.GatewayOrderID).Str("payment_id", proof.PaymentID).Msg("payment signature mismatch")
		return apperr.New(apperr.BadRequestCode, MsgInvalidSignature)
	}
	return nil
}
