package service

import (
	"context"
	"math"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/memory"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestNormalizeRating(t *testing.T) {
	testCases := []struct {
		in   *float64
		want int
	}{
		{nil, 0},
		{ptr(4), 4},
		{ptr(0), 0},
		{ptr(5), 5},
		{ptr(4.5), 0},
		{ptr(6), 0},
		{ptr(-1), 0},
		{ptr(math.NaN()), 0},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, NormalizeRating(tc.in))
	}
}

func TestReviewLifecycle(t *testing.T) {
	service := NewReviewService(memory.NewReviewRepo(), nil)
	ctx := context.Background()

	_, err := service.CreateReview(ctx, CreateReviewInput{ProductName: "Ghee", Comment: " "})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, "product_name and comment are required", appErr.Msg)

	anon, err := service.CreateReview(ctx, CreateReviewInput{ProductName: "Ghee", Comment: "Fresh", Rating: ptr(5)})
	require.NoError(t, err)
	require.Equal(t, model.AnonymousUserEmail, anon.UserEmail)
	require.Equal(t, model.AnonymousUserName, anon.UserName)
	require.Equal(t, 5, anon.Rating)

	named, err := service.CreateReview(ctx, CreateReviewInput{ProductName: "Ghee", Comment: "Good", UserEmail: "a@b.in"})
	require.NoError(t, err)
	require.Equal(t, "a@b.in", named.UserEmail)
	require.Equal(t, 0, named.Rating)

	_, err = service.CreateReview(ctx, CreateReviewInput{ProductName: "Pickle", Comment: "Spicy"})
	require.NoError(t, err)

	reviews, err := service.ListReviews(ctx, "Ghee")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.Less(t, reviews[0].ID, reviews[1].ID)

	require.NoError(t, service.DeleteReview(ctx, anon.ID))
	require.NoError(t, service.DeleteReview(ctx, anon.ID))
	reviews, err = service.ListReviews(ctx, "Ghee")
	require.NoError(t, err)
	require.Len(t, reviews, 1)

	_, err = service.ListReviews(ctx, "")
	require.True(t, apperr.IsCode(err, apperr.BadRequestCode))
}
