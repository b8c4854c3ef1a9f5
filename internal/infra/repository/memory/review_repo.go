package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

var _ repository.IReviewRepo = (*ReviewRepo)(nil)

type ReviewRepo struct {
	mu      sync.RWMutex
	nextID  int64
	reviews map[int64]model.Review
}

func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{reviews: make(map[int64]model.Review)}
}

func (r *ReviewRepo) CreateReview(ctx context.Context, review *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	review.ID = r.nextID
	r.reviews[review.ID] = *review
	return nil
}

// ListReviewsByProduct returns reviews in id order.
func (r *ReviewRepo) ListReviewsByProduct(ctx context.Context, productName string) ([]model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := []model.Review{}
	for _, review := range r.reviews {
		if review.ProductName == productName {
			reviews = append(reviews, review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}

func (r *ReviewRepo) DeleteReview(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}
