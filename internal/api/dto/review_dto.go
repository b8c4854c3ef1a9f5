package dto

import (
	"encoding/json"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
)

type CreateReviewDTO struct {
	ProductName string          `json:"product_name"`
	Rating      json.RawMessage `json:"rating" swaggertype:"integer"`
	Comment     string          `json:"comment"`
	UserEmail   string          `json:"user_email"`
}

type ReviewDTO struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"product_name"`
	UserEmail   string    `json:"user_email"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewReviewDTO(r model.Review) ReviewDTO {
	return ReviewDTO{
		ID:          r.ID,
		ProductName: r.ProductName,
		UserEmail:   r.UserEmail,
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
}

type ReviewListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    []ReviewDTO `json:"data"`
}

type ReviewResponse struct {
	Success bool      `json:"success"`
	Data    ReviewDTO `json:"data"`
}
