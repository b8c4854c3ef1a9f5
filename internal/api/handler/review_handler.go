package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/response"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	return &ReviewHandler{reviewService: reviewService}
}

// @Summary list product reviews
// @Tags reviews
// @Produce json
// @Param productName query string true "product name"
// @Success 200 {object} dto.ReviewListResponse "success"
// @Failure 400 {object} response.ResponseError "productName missing"
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListReviews(r.Context(), r.URL.Query().Get("productName"))
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	data := make([]dto.ReviewDTO, 0, len(reviews))
	for _, review := range reviews {
		data = append(data, dto.NewReviewDTO(review))
	}
	response.SuccessJSON(w, http.StatusOK, dto.ReviewListResponse{Success: true, Count: len(data), Data: data})
}

// @Summary create review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body dto.CreateReviewDTO true "review"
// @Success 201 {object} dto.ReviewResponse "created"
// @Failure 400 {object} response.ResponseError "product_name and comment are required"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateReviewDTO
	if err := decodeJSON(r, &body); err != nil {
		response.BadRequest(w, MsgInvalidPayload)
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), service.CreateReviewInput{
		ProductName: body.ProductName,
		Rating:      dto.ParseRating(body.Rating),
		Comment:     body.Comment,
		UserEmail:   body.UserEmail,
	})
	if err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusCreated, dto.ReviewResponse{Success: true, Data: dto.NewReviewDTO(*review)})
}

// @Summary delete review
// @Tags reviews
// @Produce json
// @Param id path int true "review id"
// @Success 200 {object} response.Message "deleted"
// @Failure 400 {object} response.ResponseError "Review id is required"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Review id is required")
		return
	}
	if err := h.reviewService.DeleteReview(r.Context(), id); err != nil {
		response.ErrorJSON(w, err)
		return
	}
	response.SuccessJSON(w, http.StatusOK, response.Message{Success: true, Message: "Review deleted successfully"})
}
