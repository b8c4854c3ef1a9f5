package router

import (
	"net/http"

	_ "github.com/RoyceAzure/lab/storefront/docs"
	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *api.Server, allowedOrigins []string, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.IdentityMiddleware)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", constants.UserIDHeader, constants.GuestIDHeader, m.RequestIDHeader},
		ExposedHeaders: []string{m.RequestIDHeader, constants.GuestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", handler.Root)

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", server.HealthHandler.Health)

		r.Route("/payments", func(r chi.Router) {
			r.Use(m.NewRateLimitMiddleware(server.PaymentLimiter))
			r.Post("/create-order", server.PaymentHandler.CreateOrder)
			r.Post("/verify", server.PaymentHandler.Verify)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Get("/", server.OrderHandler.ListOrders)
			r.Get("/{orderId}", server.OrderHandler.GetOrder)
			r.Patch("/{orderId}/status", server.OrderHandler.UpdateOrderStatus)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", server.ReviewHandler.ListReviews)
			r.Post("/", server.ReviewHandler.CreateReview)
			r.Delete("/{id}", server.ReviewHandler.DeleteReview)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.CartHandler.GetCart)
			r.Delete("/", server.CartHandler.ClearCart)
			r.Get("/contains", server.CartHandler.Contains)
			r.Post("/logout", server.CartHandler.Logout)
			r.Post("/items", server.CartHandler.AddItem)
			r.Patch("/items/{id}", server.CartHandler.UpdateItem)
			r.Delete("/items/{id}", server.CartHandler.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/draft", server.CheckoutHandler.BuildDraft)
			r.Group(func(r chi.Router) {
				r.Use(m.NewRateLimitMiddleware(server.PaymentLimiter))
				r.Post("/sessions", server.CheckoutHandler.StartCheckout)
				r.Post("/sessions/{id}/confirm", server.CheckoutHandler.ConfirmPayment)
			})
			r.Post("/sessions/{id}/cancel", server.CheckoutHandler.CancelCheckout)
			r.Get("/sessions/{id}", server.CheckoutHandler.GetSession)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/address", server.AddressHandler.GetAddress)
			r.Put("/address", server.AddressHandler.SaveAddress)
		})

		r.Options("/whatsapp", handler.WhatsAppPreflight)
		r.Post("/whatsapp", handler.WhatsAppSend)
	})

	// 在設置完所有路由後記錄路由樹
	if logger != nil {
		_ = chi.Walk(r, func(method string, route string, h http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			logger.Debug().Str("method", method).Str("route", route).Msg("route registered")
			return nil
		})
	}
	return r
}
