package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/response"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type PaymentHandler struct {
	paymentService service.IPaymentService
}

func NewPaymentHandler(paymentService service.IPaymentService) *PaymentHandler {
	if paymentService == nil {
		panic("paymentService cannot be nil")
	}
	return &PaymentHandler{paymentService: paymentService}
}

// @Summary create razorpay order
// @Tags payments
// @Accept json
// @Produce json
// @Param body body dto.CreatePaymentOrderDTO true "amount in paise"
// @Success 200 {object} dto.CreatePaymentOrderResponse "success"
// @Failure 400 {object} response.ResponseError "invalid amount"
// @Failure 500 {object} response.ResponseError "gateway not configured or failed"
// @Router /payments/create-order [post]
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body dto.CreatePaymentOrderDTO
	decodeErr := decodeJSON(r, &body)

	if !h.paymentService.Configured() {
		response.ErrorJSON(w, apperr.New(apperr.InternalErrorCode, service.MsgGatewayNotConfigured))
		return
	}
	amount, ok := dto.ParsePaise(body.Amount)
	if decodeErr != nil || !ok {
		response.BadRequest(w, service.MsgInvalidAmount)
		return
	}

	order, keyID, err := h.paymentService.CreateGatewayOrder(r.Context(), amount, body.Currency, body.Receipt)
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, dto.CreatePaymentOrderResponse{Success: true, Order: order, KeyID: keyID})
}

// @Summary verify razorpay payment signature
// @Tags payments
// @Accept json
// @Produce json
// @Param body body dto.VerifyPaymentDTO true "razorpay callback fields"
// @Success 200 {object} response.Message "verified"
// @Failure 400 {object} response.ResponseError "missing fields or invalid signature"
// @Failure 500 {object} response.ResponseError "gateway not configured"
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var body dto.VerifyPaymentDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, MsgInvalidPayload)
		return
	}

	err := h.paymentService.VerifyPayment(r.Context(), service.PaymentProof{
		GatewayOrderID: body.RazorpayOrderID,
		PaymentID:      body.RazorpayPaymentID,
		Signature:      body.RazorpaySignature,
	})
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, response.Message{Success: true, Message: service.MsgPaymentVerified})
}
