package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/redis/go-redis/v9"
)

var _ repository.ICartRepo = (*CartRepo)(nil)

// guest carts are abandoned often, user carts are kept longer
const (
	guestCartTTL = 7 * 24 * time.Hour
	userCartTTL  = 30 * 24 * time.Hour
)

type CartRepo struct {
	CartCache *redis.Client
}

func NewCartRepo(cartCache *redis.Client) *CartRepo {
	return &CartRepo{CartCache: cartCache}
}

func generateCartKey(scope string) string {
	return fmt.Sprintf("cart:%s", scope)
}

func (r *CartRepo) GetCart(ctx context.Context, scope string) (*model.Cart, error) {
	raw, err := r.CartCache.Get(ctx, generateCartKey(scope)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart %s: %w", scope, err)
	}

	var cart model.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("invalid cart payload for %s: %w", scope, err)
	}
	return &cart, nil
}

func (r *CartRepo) SaveCart(ctx context.Context, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", cart.Scope, err)
	}

	ttl := guestCartTTL
	if strings.HasPrefix(cart.Scope, "user:") {
		ttl = userCartTTL
	}
	if err := r.CartCache.Set(ctx, generateCartKey(cart.Scope), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", cart.Scope, err)
	}
	return nil
}

func (r *CartRepo) DeleteCart(ctx context.Context, scope string) error {
	if err := r.CartCache.Del(ctx, generateCartKey(scope)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", scope, err)
	}
	return nil
}
