package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/response"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/go-chi/chi/v5"
)

type CheckoutHandler struct {
	draftService    service.IDraftService
	checkoutService service.ICheckoutService
}

func NewCheckoutHandler(draftService service.IDraftService, checkoutService service.ICheckoutService) *CheckoutHandler {
	if draftService == nil || checkoutService == nil {
		panic("draftService and checkoutService cannot be nil")
	}
	return &CheckoutHandler{draftService: draftService, checkoutService: checkoutService}
}

func writeSummary(w http.ResponseWriter, session *model.CheckoutSession) {
	response.SuccessJSON(w, http.StatusOK, dto.CheckoutSummaryResponse{
		Success: true,
		Summary: session.Summary(),
		Order:   session.Order,
	})
}

// @Summary build order draft
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body dto.DraftRequestDTO true "buy_now selection or source=cart, plus customer"
// @Success 200 {object} dto.DraftResponse "success"
// @Failure 400 {object} response.ResponseError "first validation failure"
// @Router /checkout/draft [post]
func (h *CheckoutHandler) BuildDraft(w http.ResponseWriter, r *http.Request) {
	var body dto.DraftRequestDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, "")
		return
	}
	ctx := r.Context()
	draft, err := h.draftService.BuildDraft(ctx, util.GetIdentityFromContext(ctx), body.ToInput())
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, dto.DraftResponse{Success: true, Draft: draft})
}

// @Summary start checkout
// @Description builds the draft and creates the razorpay order for its total
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body dto.DraftRequestDTO true "draft request"
// @Success 201 {object} dto.CheckoutStartResponse "gateway order created"
// @Failure 400 {object} response.ResponseError "validation failed"
// @Failure 500 {object} response.ResponseError "gateway failure"
// @Router /checkout/sessions [post]
func (h *CheckoutHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	var body dto.DraftRequestDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, "")
		return
	}
	ctx := r.Context()
	result, err := h.checkoutService.StartCheckout(ctx, util.GetIdentityFromContext(ctx), body.ToInput())
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusCreated, dto.CheckoutStartResponse{
		Success:      true,
		Session:      result.Session.Summary(),
		GatewayOrder: result.Session.GatewayOrder,
		KeyID:        result.KeyID,
		Draft:        result.Session.Draft,
	})
}

// @Summary confirm payment
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body dto.ConfirmCheckoutDTO true "razorpay callback fields"
// @Success 200 {object} dto.CheckoutSummaryResponse "order placed"
// @Failure 400 {object} response.ResponseError "invalid signature"
// @Failure 404 {object} response.ResponseError "session not found"
// @Failure 409 {object} response.ResponseError "session not awaiting payment"
// @Router /checkout/sessions/{id}/confirm [post]
func (h *CheckoutHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var body dto.ConfirmCheckoutDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, MsgInvalidPayload)
		return
	}

	ctx := r.Context()
	session, err := h.checkoutService.ConfirmPayment(ctx, util.GetIdentityFromContext(ctx), chi.URLParam(r, "id"), body.RazorpayPaymentID, body.RazorpaySignature)
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	writeSummary(w, session)
}

// @Summary cancel checkout, payment not completed
// @Tags checkout
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} dto.CheckoutSummaryResponse "cancelled"
// @Failure 409 {object} response.ResponseError "session not awaiting payment"
// @Router /checkout/sessions/{id}/cancel [post]
func (h *CheckoutHandler) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, err := h.checkoutService.CancelCheckout(ctx, util.GetIdentityFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	writeSummary(w, session)
}

// @Summary checkout summary
// @Tags checkout
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} dto.CheckoutSummaryResponse "success"
// @Failure 404 {object} response.ResponseError "session not found"
// @Router /checkout/sessions/{id} [get]
func (h *CheckoutHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, err := h.checkoutService.GetSession(ctx, util.GetIdentityFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	writeSummary(w, session)
}
