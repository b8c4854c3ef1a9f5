package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	ReasonPaymentNotCompleted = "payment not completed"
	ReasonVerificationFailed  = "payment verification failed"
	ReasonPersistFailed       = "order could not be saved"
	ReasonGatewayFailed       = "payment order could not be created"
)

type StartCheckoutResult struct {
	Session *model.CheckoutSession
	KeyID   string
}

type ICheckoutService interface {
	StartCheckout(ctx context.Context, identity model.Identity, input DraftInput) (*StartCheckoutResult, error)
	ConfirmPayment(ctx context.Context, identity model.Identity, sessionID, paymentID, signature string) (*model.CheckoutSession, error)
	CancelCheckout(ctx context.Context, identity model.Identity, sessionID string) (*model.CheckoutSession, error)
	GetSession(ctx context.Context, identity model.Identity, sessionID string) (*model.CheckoutSession, error)
}

var _ ICheckoutService = (*CheckoutService)(nil)

// CheckoutService drives one checkout through the payment state machine.
// Steps of a single session run under that session's lock.
type CheckoutService struct {
	sessions       repository.ICheckoutSessionRepo
	draftService   IDraftService
	paymentService IPaymentService
	orderService   IOrderService
	cartService    ICartService
	locks          keyedLock
	now            func() time.Time
	logger         *zerolog.Logger
}

func NewCheckoutService(
	sessions repository.ICheckoutSessionRepo,
	draftService IDraftService,
	paymentService IPaymentService,
	orderService IOrderService,
	cartService ICartService,
	logger *zerolog.Logger,
) *CheckoutService {
	if sessions == nil || draftService == nil || paymentService == nil || orderService == nil || cartService == nil {
		panic("checkout service dependencies cannot be nil")
	}
	return &CheckoutService{
		sessions:       sessions,
		draftService:   draftService,
		paymentService: paymentService,
		orderService:   orderService,
		cartService:    cartService,
		now:            time.Now,
		logger:         loggerOrNop(logger),
	}
}

func (s *CheckoutService) lock(sessionID string) func() {
	return s.locks.lock("session:" + sessionID)
}

func (s *CheckoutService) transition(session *model.CheckoutSession, next model.CheckoutState) error {
	if !session.State.CanTransitionTo(next) {
		return apperr.Newf(apperr.ConflictCode, "Checkout is %s and cannot move to %s", session.State, next)
	}
	s.logger.Debug().Str("session_id", session.ID).Str("from", string(session.State)).Str("to", string(next)).Msg("checkout transition")
	session.State = next
	session.UpdatedAt = s.now().UTC()
	return nil
}

func (s *CheckoutService) fail(ctx context.Context, session *model.CheckoutSession, reason string) {
	if err := s.transition(session, model.CheckoutFailed); err != nil {
		s.logger.Error().Err(err).Str("session_id", session.ID).Msg("cannot mark checkout failed")
		return
	}
	session.FailureReason = reason
	s.save(ctx, session)
}

func (s *CheckoutService) save(ctx context.Context, session *model.CheckoutSession) {
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Error().Err(err).Str("session_id", session.ID).Str("state", string(session.State)).Msg("failed to save checkout session")
	}
}

// StartCheckout 建立草稿與 razorpay 訂單
//
// 參數:
//   - identity: 呼叫者, session 只對相同 scope 可見
//   - input: 與 BuildDraft 相同
//
// 錯誤:
//   - 400: 草稿驗證失敗
//   - 500: 閘道未設定或建立遠端訂單失敗, session 記為 FAILED
func (s *CheckoutService) StartCheckout(ctx context.Context, identity model.Identity, input DraftInput) (*StartCheckoutResult, error) {
	draft, err := s.draftService.BuildDraft(ctx, identity, input)
	if err != nil {
		return nil, err
	}
	orderID, err := s.orderService.NextOrderID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := &model.CheckoutSession{
		ID:        ulid.Make().String(),
		Scope:     identity.Scope(),
		State:     model.CheckoutInitiated,
		Draft:     *draft,
		OrderID:   orderID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	unlock := s.lock(session.ID)
	defer unlock()

	gatewayOrder, keyID, err := s.paymentService.CreateGatewayOrder(ctx, draft.PayableAmount(), constants.DefaultCurrency, orderID)
	if err != nil {
		s.fail(ctx, session, ReasonGatewayFailed)
		return nil, err
	}
	if err := s.transition(session, model.CheckoutGatewayOrderCreated); err != nil {
		return nil, err
	}
	session.GatewayOrder = gatewayOrder
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Error().Err(err).Str("session_id", session.ID).Msg("failed to save checkout session")
		return nil, apperr.Wrap(apperr.InternalErrorCode, "Failed to start checkout", err)
	}

	s.logger.Info().Str("session_id", session.ID).Str("order_id", orderID).Str("gateway_order_id", gatewayOrder.ID).Msg("checkout started")
	return &StartCheckoutResult{Session: session, KeyID: keyID}, nil
}

// ConfirmPayment runs SIGNATURE_RECEIVED through DONE. A rejected signature never reaches the order store.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, identity model.Identity, sessionID, paymentID, signature string) (*model.CheckoutSession, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, identity, sessionID)
	if err != nil {
		return nil, err
	}
	if paymentID == "" || signature == "" {
		return nil, apperr.New(apperr.BadRequestCode, MsgMissingPaymentFields)
	}
	if err := s.transition(session, model.CheckoutSignatureReceived); err != nil {
		return nil, err
	}
	session.PaymentID = paymentID

	proof := PaymentProof{
		GatewayOrderID: session.GatewayOrder.ID,
		PaymentID:      paymentID,
		Signature:      signature,
	}
	if err := s.paymentService.VerifyPayment(ctx, proof); err != nil {
		s.fail(ctx, session, ReasonVerificationFailed)
		return nil, err
	}
	if err := s.transition(session, model.CheckoutVerified); err != nil {
		return nil, err
	}

	order, err := s.orderService.PersistOrder(ctx, orderInputFromDraft(session, proof))
	if err != nil {
		s.fail(ctx, session, ReasonPersistFailed)
		return nil, err
	}
	session.Order = order
	if err := s.transition(session, model.CheckoutOrderPersisted); err != nil {
		return nil, err
	}

	if s.orderService.NotifyOrder(order) {
		_ = s.transition(session, model.CheckoutNotified)
	}
	if session.Draft.Source == model.DraftSourceCart {
		s.cartService.ClearCart(ctx, identity)
	}
	_ = s.transition(session, model.CheckoutDone)
	s.save(ctx, session)

	s.logger.Info().Str("session_id", session.ID).Str("order_id", order.OrderID).Msg("checkout completed")
	return session, nil
}

// CancelCheckout ends a session whose payment UI was dismissed.
func (s *CheckoutService) CancelCheckout(ctx context.Context, identity model.Identity, sessionID string) (*model.CheckoutSession, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, identity, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.transition(session, model.CheckoutCancelled); err != nil {
		return nil, err
	}
	session.FailureReason = ReasonPaymentNotCompleted
	s.save(ctx, session)
	return session, nil
}

func (s *CheckoutService) GetSession(ctx context.Context, identity model.Identity, sessionID string) (*model.CheckoutSession, error) {
	return s.load(ctx, identity, sessionID)
}

// load hides sessions of other scopes behind NotFound.
func (s *CheckoutService) load(ctx context.Context, identity model.Identity, sessionID string) (*model.CheckoutSession, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, apperr.New(apperr.NotFoundCode, "Checkout session not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "Failed to load checkout session", err)
	}
	if session.Scope != identity.Scope() {
		return nil, apperr.New(apperr.NotFoundCode, "Checkout session not found")
	}
	return session, nil
}

func orderInputFromDraft(session *model.CheckoutSession, proof PaymentProof) CreateOrderInput {
	d := session.Draft
	return CreateOrderInput{
		OrderID:        session.OrderID,
		UserID:         d.UserID,
		GuestName:      d.Customer.FullName,
		GuestPhone:     d.Customer.Phone,
		GuestAddress:   d.Customer.FullAddress(),
		GuestEmail:     d.Customer.Email,
		GuestCity:      d.Customer.City,
		GuestState:     d.Customer.State,
		GuestPincode:   d.Customer.Pincode,
		Items:          d.OrderItems(),
		TotalPrice:     d.Total,
		DiscountAmount: d.Discount,
		DeliveryDate:   d.DeliveryTime,
		Payment:        proof,
	}
}
