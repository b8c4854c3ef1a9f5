package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/notify"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/response"
)

const Banner = "ShreeRaagaSWAADGHAR API is running"

type StoreStatus interface {
	IsDegraded() bool
	DegradedReason() string
}

type NotifyStats interface {
	Stats() notify.Stats
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Success       bool         `json:"success"`
	OrderStore    string       `json:"order_store"`
	DegradedCause string       `json:"degraded_reason,omitempty"`
	Database      string       `json:"database"`
	Cache         string       `json:"cache"`
	Payments      bool         `json:"payments_configured"`
	Notifications notify.Stats `json:"notifications"`
}

type HealthHandler struct {
	store              StoreStatus
	stats              NotifyStats
	database           Pinger
	cache              Pinger
	paymentsConfigured bool
}

// NewHealthHandler accepts nil database and cache pingers for deployments without them.
func NewHealthHandler(store StoreStatus, stats NotifyStats, database, cache Pinger, paymentsConfigured bool) *HealthHandler {
	return &HealthHandler{
		store:              store,
		stats:              stats,
		database:           database,
		cache:              cache,
		paymentsConfigured: paymentsConfigured,
	}
}

func pingState(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}

// @Summary service health
// @Tags health
// @Produce json
// @Success 200 {object} handler.HealthResponse "success"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	res := HealthResponse{
		Success:    true,
		OrderStore: "primary",
		Database:   pingState(ctx, h.database),
		Cache:      pingState(ctx, h.cache),
		Payments:   h.paymentsConfigured,
	}
	if h.store != nil && h.store.IsDegraded() {
		res.OrderStore = "memory"
		res.DegradedCause = h.store.DegradedReason()
	}
	if h.stats != nil {
		res.Notifications = h.stats.Stats()
	}
	response.SuccessJSON(w, http.StatusOK, res)
}

func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(Banner))
}
