package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/redis/go-redis/v9"
)

var _ repository.IAddressRepo = (*AddressRepo)(nil)

type AddressRepo struct {
	cache *redis.Client
}

func NewAddressRepo(cache *redis.Client) *AddressRepo {
	return &AddressRepo{cache: cache}
}

func generateAddressKey(userID string) string {
	return fmt.Sprintf("address:%s", userID)
}

func (r *AddressRepo) GetAddress(ctx context.Context, userID string) (*model.SavedAddress, error) {
	raw, err := r.cache.Get(ctx, generateAddressKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get address of %s: %w", userID, err)
	}

	var address model.SavedAddress
	if err := json.Unmarshal(raw, &address); err != nil {
		return nil, fmt.Errorf("invalid address payload for %s: %w", userID, err)
	}
	return &address, nil
}

// SaveAddress 不設定過期時間
func (r *AddressRepo) SaveAddress(ctx context.Context, address *model.SavedAddress) error {
	raw, err := json.Marshal(address)
	if err != nil {
		return err
	}
	if err := r.cache.Set(ctx, generateAddressKey(address.UserID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save address of %s: %w", address.UserID, err)
	}
	return nil
}
