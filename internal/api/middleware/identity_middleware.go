package middleware

import (
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/google/uuid"
)

// IdentityMiddleware reads the caller from X-User-ID / X-Guest-ID.
// Authentication happens upstream, this only scopes per-caller state.
// A caller without a guest id gets a fresh one, echoed back in X-Guest-ID
// so the client can keep using the same guest cart.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := model.Identity{
			UserID:  strings.TrimSpace(r.Header.Get(constants.UserIDHeader)),
			GuestID: strings.TrimSpace(r.Header.Get(constants.GuestIDHeader)),
		}
		if identity.GuestID == "" {
			identity.GuestID = uuid.NewString()
		}
		w.Header().Set(constants.GuestIDHeader, identity.GuestID)
		next.ServeHTTP(w, r.WithContext(util.WithIdentity(r.Context(), identity)))
	})
}
