package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/response"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

type AddressHandler struct {
	addressService service.IAddressService
}

func NewAddressHandler(addressService service.IAddressService) *AddressHandler {
	if addressService == nil {
		panic("addressService cannot be nil")
	}
	return &AddressHandler{addressService: addressService}
}

// @Summary get saved address
// @Tags profile
// @Produce json
// @Param X-User-ID header string true "signed in user"
// @Success 200 {object} dto.AddressResponse "success"
// @Failure 401 {object} response.ResponseError "guest caller"
// @Failure 404 {object} response.ResponseError "No saved address"
// @Router /profile/address [get]
func (h *AddressHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address, err := h.addressService.GetSavedAddress(ctx, util.GetIdentityFromContext(ctx))
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, dto.AddressResponse{Success: true, Address: address})
}

// @Summary save address
// @Tags profile
// @Accept json
// @Produce json
// @Param X-User-ID header string true "signed in user"
// @Param address body dto.AddressDTO true "address"
// @Success 200 {object} dto.AddressResponse "success"
// @Failure 400 {object} response.ResponseError "validation failed"
// @Failure 401 {object} response.ResponseError "guest caller"
// @Router /profile/address [put]
func (h *AddressHandler) SaveAddress(w http.ResponseWriter, r *http.Request) {
	var body dto.AddressDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, "")
		return
	}
	ctx := r.Context()
	address, err := h.addressService.SaveAddress(ctx, util.GetIdentityFromContext(ctx), body.ToModel())
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, dto.AddressResponse{Success: true, Address: address})
}
