package handler

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/response"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService}
}

// @Summary create order
// @Description order_id is generated when absent. payment_status is confirmed only with a valid razorpay signature.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderDTO true "order payload"
// @Success 201 {object} dto.OrderResponse "created"
// @Failure 400 {object} response.ResponseError "invalid payload"
// @Failure 409 {object} response.ResponseError "duplicate order id"
// @Failure 500 {object} response.ResponseError "Internal server error"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateOrderDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, "Invalid order payload")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), body.ToInput())
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusCreated, dto.OrderResponse{Success: true, Order: order})
}

// @Summary list orders
// @Description newest first, always 200
// @Tags orders
// @Produce json
// @Success 200 {object} dto.OrderListResponse "success"
// @Router /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orderService.ListOrders(r.Context())
	response.SuccessJSON(w, http.StatusOK, dto.OrderListResponse{Success: true, Count: len(orders), Orders: orders})
}

// @Summary get order
// @Tags orders
// @Produce json
// @Param orderId path string true "human readable order id"
// @Success 200 {object} dto.OrderResponse "success"
// @Failure 404 {object} response.ResponseError "Order not found"
// @Router /orders/{orderId} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, dto.OrderResponse{Success: true, Order: order})
}

// @Summary update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path string true "human readable order id"
// @Param body body dto.UpdateOrderStatusDTO true "new status"
// @Success 200 {object} dto.UpdateOrderStatusResponse "success"
// @Failure 400 {object} response.ResponseError "Status is required"
// @Failure 404 {object} response.ResponseError "order not found"
// @Router /orders/{orderId}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateOrderStatusDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, MsgInvalidPayload)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(r.Context(), chi.URLParam(r, "orderId"), body.Status)
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, dto.UpdateOrderStatusResponse{
		Success: true,
		Message: fmt.Sprintf("Order status updated to %s", order.Status),
		Order:   order,
	})
}
