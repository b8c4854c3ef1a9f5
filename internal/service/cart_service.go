package service

import (
	"context"
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/pricing"
	"github.com/rs/zerolog"
)

type ICartService interface {
	GetCart(ctx context.Context, identity model.Identity) *model.Cart
	AddToCart(ctx context.Context, identity model.Identity, item model.LineItem, quantity int) (*model.Cart, error)
	RemoveFromCart(ctx context.Context, identity model.Identity, itemID string) (*model.Cart, error)
	UpdateQuantity(ctx context.Context, identity model.Identity, itemID string, quantity int) (*model.Cart, error)
	ClearCart(ctx context.Context, identity model.Identity) *model.Cart
	IsInCart(ctx context.Context, identity model.Identity, productName string) bool
	Logout(ctx context.Context, guest model.Identity) *model.Cart
	View(cart *model.Cart) CartView
}

type CartView struct {
	Scope          string               `json:"scope"`
	Items          []model.LineItem     `json:"items"`
	Count          int                  `json:"count"`
	Subtotal       model.Rupees         `json:"subtotal"`
	Discount       model.Rupees         `json:"discount"`
	DeliveryCharge model.Rupees         `json:"delivery_charge"`
	Total          model.Rupees         `json:"total"`
	Offer          pricing.DiscountInfo `json:"offer"`
	HasFreeSamples bool                 `json:"has_free_samples"`
	HasPaidItems   bool                 `json:"has_paid_items"`
}

var _ ICartService = (*CartService)(nil)

// CartService persists the whole cart after every mutation.
// Mutations of one scope are serialised within the process.
// Storage failures are logged and never fail the caller.
type CartService struct {
	repo       repository.ICartRepo
	locks      keyedLock
	calculator *pricing.Calculator
	logger     *zerolog.Logger
}

func NewCartService(repo repository.ICartRepo, calculator *pricing.Calculator, logger *zerolog.Logger) *CartService {
	if repo == nil || calculator == nil {
		panic("cart repo and calculator cannot be nil")
	}
	return &CartService{repo: repo, calculator: calculator, logger: loggerOrNop(logger)}
}

func (s *CartService) GetCart(ctx context.Context, identity model.Identity) *model.Cart {
	scope := identity.Scope()
	cart, err := s.repo.GetCart(ctx, scope)
	if err == nil {
		if cart.Items == nil {
			cart.Items = []model.LineItem{}
		}
		return cart
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		s.logger.Error().Err(err).Str("scope", scope).Msg("failed to load cart, using empty cart")
	}
	return model.NewCart(scope)
}

func (s *CartService) persist(ctx context.Context, cart *model.Cart) {
	if err := s.repo.SaveCart(ctx, cart); err != nil {
		s.logger.Error().Err(err).Str("scope", cart.Scope).Msg("failed to persist cart")
	}
}

func (s *CartService) AddToCart(ctx context.Context, identity model.Identity, item model.LineItem, quantity int) (*model.Cart, error) {
	item.ProductName = strings.TrimSpace(item.ProductName)
	item.Category = strings.TrimSpace(item.Category)
	if item.ProductName == "" {
		return nil, apperr.New(apperr.BadRequestCode, "product_name is required")
	}
	if item.UnitPrice < 0 {
		return nil, apperr.New(apperr.BadRequestCode, "price must not be negative")
	}
	if quantity < 0 {
		return nil, apperr.New(apperr.BadRequestCode, "quantity must be positive")
	}

	unlock := s.locks.lock(identity.Scope())
	defer unlock()

	cart := s.GetCart(ctx, identity)
	cart.Add(item, quantity)
	s.persist(ctx, cart)
	return cart, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, identity model.Identity, itemID string) (*model.Cart, error) {
	unlock := s.locks.lock(identity.Scope())
	defer unlock()

	cart := s.GetCart(ctx, identity)
	if !cart.Remove(itemID) {
		return nil, apperr.New(apperr.NotFoundCode, "Cart item not found")
	}
	s.persist(ctx, cart)
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, identity model.Identity, itemID string, quantity int) (*model.Cart, error) {
	unlock := s.locks.lock(identity.Scope())
	defer unlock()

	cart := s.GetCart(ctx, identity)
	if !cart.UpdateQuantity(itemID, quantity) {
		return nil, apperr.New(apperr.NotFoundCode, "Cart item not found")
	}
	s.persist(ctx, cart)
	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, identity model.Identity) *model.Cart {
	unlock := s.locks.lock(identity.Scope())
	defer unlock()

	cart := s.GetCart(ctx, identity)
	cart.Clear()
	s.persist(ctx, cart)
	return cart
}

func (s *CartService) IsInCart(ctx context.Context, identity model.Identity, productName string) bool {
	return s.GetCart(ctx, identity).IsInCart(strings.TrimSpace(productName))
}

// Logout drops whatever the guest scope held and starts an empty guest cart.
// A user cart is never merged into or out of the guest cart.
func (s *CartService) Logout(ctx context.Context, guest model.Identity) *model.Cart {
	guest.UserID = ""
	scope := guest.Scope()
	unlock := s.locks.lock(scope)
	defer unlock()

	if err := s.repo.DeleteCart(ctx, scope); err != nil {
		s.logger.Error().Err(err).Str("scope", scope).Msg("failed to reset guest cart")
	}
	cart := model.NewCart(scope)
	s.persist(ctx, cart)
	return cart
}

func (s *CartService) View(cart *model.Cart) CartView {
	b := s.calculator.Calculate(cart.Items)
	return CartView{
		Scope:          cart.Scope,
		Items:          cart.Items,
		Count:          cart.Count(),
		Subtotal:       b.Subtotal,
		Discount:       b.Discount,
		DeliveryCharge: b.DeliveryCharge,
		Total:          b.Total,
		Offer:          b.Offer,
		HasFreeSamples: cart.HasFreeSamples(),
		HasPaidItems:   cart.HasPaidItems(),
	}
}
