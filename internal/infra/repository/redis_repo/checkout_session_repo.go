package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/redis/go-redis/v9"
)

var _ repository.ICheckoutSessionRepo = (*CheckoutSessionRepo)(nil)

type CheckoutSessionRepo struct {
	cache *redis.Client
	ttl   time.Duration
}

func NewCheckoutSessionRepo(cache *redis.Client, ttl time.Duration) *CheckoutSessionRepo {
	return &CheckoutSessionRepo{cache: cache, ttl: ttl}
}

func generateSessionKey(id string) string {
	return fmt.Sprintf("checkout:session:%s", id)
}

func (r *CheckoutSessionRepo) GetSession(ctx context.Context, id string) (*model.CheckoutSession, error) {
	raw, err := r.cache.Get(ctx, generateSessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout session %s: %w", id, err)
	}

	var session model.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("invalid checkout session payload %s: %w", id, err)
	}
	return &session, nil
}

// SaveSession refreshes the ttl on every write.
func (r *CheckoutSessionRepo) SaveSession(ctx context.Context, session *model.CheckoutSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := r.cache.Set(ctx, generateSessionKey(session.ID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save checkout session %s: %w", session.ID, err)
	}
	return nil
}
