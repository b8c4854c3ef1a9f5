package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestIdentityMiddleware(t *testing.T) {
	var got model.Identity
	h := IdentityMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = util.GetIdentityFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(constants.UserIDHeader, "u-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "user:u-1", got.Scope())

	// header-less callers each get their own guest scope
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	first := got
	require.NotEmpty(t, first.GuestID)
	require.Equal(t, first.GuestID, rec.Header().Get(constants.GuestIDHeader))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	require.NotEqual(t, first.Scope(), got.Scope())

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(constants.GuestIDHeader, "g-7")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "guest:g-7", got.Scope())
	require.Equal(t, "g-7", rec.Header().Get(constants.GuestIDHeader))
}

func TestRequestIdMiddleware(t *testing.T) {
	var id string
	h := RequestIdMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = util.GetRequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, id)
	require.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "abc", id)
}

func TestRecoverMiddleware(t *testing.T) {
	h := RecoverMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestRateLimitMiddlewareKeysOnClientAddress(t *testing.T) {
	limiter := ratelimit.NewKeyedLimiter(&ratelimit.LimiterConfig{Capacity: 1, RatePS: 0})
	defer limiter.Stop()

	h := IdentityMiddleware(NewRateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	send := func(userID, guestID, remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remoteAddr
		if userID != "" {
			req.Header.Set(constants.UserIDHeader, userID)
		}
		if guestID != "" {
			req.Header.Set(constants.GuestIDHeader, guestID)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusNoContent, send("", "g-1", "10.0.0.1:1000"))
	// rotating identity headers does not earn a new budget
	require.Equal(t, http.StatusTooManyRequests, send("", "g-2", "10.0.0.1:1000"))
	require.Equal(t, http.StatusTooManyRequests, send("u-1", "", "10.0.0.1:2000"))
	require.Equal(t, http.StatusTooManyRequests, send("", "", "10.0.0.1:3000"))

	require.Equal(t, http.StatusNoContent, send("", "g-1", "10.0.0.2:1000"))
}

func TestLoggerMiddlewareRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var ctxLogger *zerolog.Logger
	h := LoggerMiddleware(&logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = zerolog.Ctx(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.NotNil(t, ctxLogger)
	require.NotEqual(t, zerolog.Disabled, ctxLogger.GetLevel())
	require.Contains(t, buf.String(), `"status":418`)
	require.Contains(t, buf.String(), `"bytes":15`)
}
