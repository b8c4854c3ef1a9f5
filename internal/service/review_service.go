package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/rs/zerolog"
)

type CreateReviewInput struct {
	ProductName string
	// Rating is nil when the caller sent no numeric rating.
	Rating    *float64
	Comment   string
	UserEmail string
}

type IReviewService interface {
	ListReviews(ctx context.Context, productName string) ([]model.Review, error)
	CreateReview(ctx context.Context, input CreateReviewInput) (*model.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

var _ IReviewService = (*ReviewService)(nil)

type ReviewService struct {
	repo   repository.IReviewRepo
	logger *zerolog.Logger
}

func NewReviewService(repo repository.IReviewRepo, logger *zerolog.Logger) *ReviewService {
	if repo == nil {
		panic("review repo cannot be nil")
	}
	return &ReviewService{repo: repo, logger: loggerOrNop(logger)}
}

func (s *ReviewService) ListReviews(ctx context.Context, productName string) ([]model.Review, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, apperr.New(apperr.BadRequestCode, "productName query parameter is required")
	}
	reviews, err := s.repo.ListReviewsByProduct(ctx, productName)
	if err != nil {
		s.logger.Error().Err(err).Str("product_name", productName).Msg("failed to fetch reviews")
		return nil, apperr.Wrap(apperr.InternalErrorCode, "Failed to fetch reviews", err)
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*model.Review, error) {
	productName := strings.TrimSpace(input.ProductName)
	comment := strings.TrimSpace(input.Comment)
	if productName == "" || comment == "" {
		return nil, apperr.New(apperr.BadRequestCode, "product_name and comment are required")
	}

	review := &model.Review{
		ProductName: productName,
		Rating:      NormalizeRating(input.Rating),
		Comment:     comment,
		UserName:    model.AnonymousUserName,
		UserEmail:   model.AnonymousUserEmail,
		CreatedAt:   time.Now().UTC(),
	}
	if email := strings.TrimSpace(input.UserEmail); email != "" {
		review.UserName = email
		review.UserEmail = email
	}

	if err := s.repo.CreateReview(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("product_name", productName).Msg("failed to create review")
		return nil, apperr.Wrap(apperr.InternalErrorCode, "Failed to create review", err)
	}
	return review, nil
}

// DeleteReview treats a missing review as already deleted.
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.New(apperr.BadRequestCode, "Review id is required")
	}
	err := s.repo.DeleteReview(ctx, id)
	if err == nil || errors.Is(err, repository.ErrReviewNotFound) {
		return nil
	}
	s.logger.Error().Err(err).Int64("review_id", id).Msg("failed to delete review")
	return apperr.Wrap(apperr.InternalErrorCode, "Failed to delete review", err)
}

// NormalizeRating maps absent, fractional or out of range ratings to 0.
func NormalizeRating(rating *float64) int {
	if rating == nil {
		return 0
	}
	r := *rating
	if math.IsNaN(r) || math.IsInf(r, 0) || r != math.Trunc(r) {
		return 0
	}
	if r < model.MinRating || r > model.MaxRating {
		return 0
	}
	return int(r)
}
