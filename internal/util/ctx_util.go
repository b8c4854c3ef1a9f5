package util

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, constants.IdentityKey, identity)
}

// GetIdentityFromContext 取得呼叫者身分, 沒有設定時回傳預設 guest
func GetIdentityFromContext(ctx context.Context) model.Identity {
	if v, ok := ctx.Value(constants.IdentityKey).(model.Identity); ok {
		return v
	}
	return model.Identity{GuestID: constants.DefaultGuest}
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(constants.RequestIDKey).(string); ok {
		return v
	}
	return "unknown"
}
