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

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) writeCart(w http.ResponseWriter, cart *model.Cart) {
	response.SuccessJSON(w, http.StatusOK, dto.CartResponse{Success: true, Cart: h.cartService.View(cart)})
}

// @Summary get cart with totals
// @Tags cart
// @Produce json
// @Param X-User-ID header string false "signed in user"
// @Param X-Guest-ID header string false "guest id"
// @Success 200 {object} dto.CartResponse "success"
// @Router /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.writeCart(w, h.cartService.GetCart(ctx, util.GetIdentityFromContext(ctx)))
}

// @Summary add item to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddCartItemDTO true "item"
// @Success 200 {object} dto.CartResponse "success"
// @Failure 400 {object} response.ResponseError "invalid item"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body dto.AddCartItemDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, "")
		return
	}
	ctx := r.Context()
	item, qty := body.ToLineItem()
	cart, err := h.cartService.AddToCart(ctx, util.GetIdentityFromContext(ctx), item, qty)
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	h.writeCart(w, cart)
}

// @Summary set item quantity, 0 removes
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "line item id"
// @Param body body dto.UpdateCartItemDTO true "quantity"
// @Success 200 {object} dto.CartResponse "success"
// @Failure 404 {object} response.ResponseError "Cart item not found"
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateCartItemDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, "")
		return
	}
	ctx := r.Context()
	cart, err := h.cartService.UpdateQuantity(ctx, util.GetIdentityFromContext(ctx), chi.URLParam(r, "id"), body.Quantity)
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	h.writeCart(w, cart)
}

// @Summary remove item
// @Tags cart
// @Produce json
// @Param id path string true "line item id"
// @Success 200 {object} dto.CartResponse "success"
// @Failure 404 {object} response.ResponseError "Cart item not found"
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cart, err := h.cartService.RemoveFromCart(ctx, util.GetIdentityFromContext(ctx), chi.URLParam(r, "id"))
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	h.writeCart(w, cart)
}

// @Summary clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} dto.CartResponse "success"
// @Router /cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.writeCart(w, h.cartService.ClearCart(ctx, util.GetIdentityFromContext(ctx)))
}

// @Summary is product in cart
// @Tags cart
// @Produce json
// @Param productName query string true "product name"
// @Success 200 {object} dto.CartContainsResponse "success"
// @Router /cart/contains [get]
func (h *CartHandler) Contains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	inCart := h.cartService.IsInCart(ctx, util.GetIdentityFromContext(ctx), r.URL.Query().Get("productName"))
	response.SuccessJSON(w, http.StatusOK, dto.CartContainsResponse{Success: true, InCart: inCart})
}

// @Summary reset to an empty guest cart
// @Tags cart
// @Produce json
// @Success 200 {object} dto.CartResponse "success"
// @Router /cart/logout [post]
func (h *CartHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.writeCart(w, h.cartService.Logout(ctx, util.GetIdentityFromContext(ctx)))
}
