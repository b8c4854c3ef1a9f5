package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/pricing"
	"github.com/rs/zerolog"
)

type BuyNowVariant struct {
	Label    string
	Price    model.Rupees
	Quantity int
}

type BuyNowSelection struct {
	ProductName string
	Category    string
	IsSample    bool
	Variants    []BuyNowVariant
}

type DraftInput struct {
	Source           model.DraftSource
	BuyNow           *BuyNowSelection
	Customer         model.Address
	UseCustomAddress bool
}

type IDraftService interface {
	BuildDraft(ctx context.Context, identity model.Identity, input DraftInput) (*model.OrderDraft, error)
}

var _ IDraftService = (*DraftService)(nil)

type DraftService struct {
	cartService    ICartService
	addressService IAddressService
	calculator     *pricing.Calculator
	logger         *zerolog.Logger
}

func NewDraftService(cartService ICartService, addressService IAddressService, calculator *pricing.Calculator, logger *zerolog.Logger) *DraftService {
	if cartService == nil || addressService == nil || calculator == nil {
		panic("draft service dependencies cannot be nil")
	}
	return &DraftService{
		cartService:    cartService,
		addressService: addressService,
		calculator:     calculator,
		logger:         loggerOrNop(logger),
	}
}

// BuildDraft 由購物車或 buy now 選項組出訂單草稿
//
// 參數:
//   - identity: 呼叫者, 已登入且有儲存地址時預設使用儲存地址
//   - input: 來源, 聯絡資料與是否使用自訂地址
//
// 錯誤:
//   - 400: 第一個驗證失敗的欄位, 或沒有任何商品
func (s *DraftService) BuildDraft(ctx context.Context, identity model.Identity, input DraftInput) (*model.OrderDraft, error) {
	customer, usingSaved := s.resolveCustomer(ctx, identity, input)
	if err := ValidateCustomer(customer, identity.IsAuthenticated(), !usingSaved); err != nil {
		return nil, err
	}

	items, source, err := s.resolveItems(ctx, identity, input)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.New(apperr.BadRequestCode, "No items to order")
	}

	b := s.calculator.Calculate(items)
	draft := &model.OrderDraft{
		Customer:       customer,
		Items:          items,
		Subtotal:       b.Subtotal,
		Discount:       b.Discount,
		DeliveryCharge: b.DeliveryCharge,
		FinalAmount:    b.Final,
		Total:          b.Total,
		DeliveryTime:   s.calculator.DeliveryTime(customer.State),
		IsGuest:        !identity.IsAuthenticated(),
		UserID:         identity.UserID,
		Source:         source,
	}
	return draft, nil
}

// resolveCustomer prefers the saved address unless the caller opted out.
// Email always comes from the submitted form.
func (s *DraftService) resolveCustomer(ctx context.Context, identity model.Identity, input DraftInput) (model.Address, bool) {
	submitted := trimAddress(input.Customer)
	if !identity.IsAuthenticated() || input.UseCustomAddress {
		return submitted, false
	}

	saved, err := s.addressService.GetSavedAddress(ctx, identity)
	if err != nil {
		if !apperr.IsCode(err, apperr.NotFoundCode) {
			s.logger.Warn().Err(err).Str("user_id", identity.UserID).Msg("saved address unavailable, using submitted address")
		}
		return submitted, false
	}

	customer := saved.Address
	customer.Email = submitted.Email
	return customer, true
}

func (s *DraftService) resolveItems(ctx context.Context, identity model.Identity, input DraftInput) ([]model.LineItem, model.DraftSource, error) {
	if input.BuyNow != nil && input.Source != model.DraftSourceCart {
		items, err := buyNowItems(*input.BuyNow)
		return items, model.DraftSourceBuyNow, err
	}
	cart := s.cartService.GetCart(ctx, identity)
	return cart.Snapshot(), model.DraftSourceCart, nil
}

func buyNowItems(sel BuyNowSelection) ([]model.LineItem, error) {
	name := strings.TrimSpace(sel.ProductName)
	if name == "" {
		return nil, apperr.New(apperr.BadRequestCode, "product_name is required")
	}

	items := make([]model.LineItem, 0, len(sel.Variants))
	for _, v := range sel.Variants {
		if v.Quantity <= 0 {
			continue
		}
		if v.Price < 0 {
			return nil, apperr.New(apperr.BadRequestCode, "price must not be negative")
		}
		productName := name
		if label := strings.TrimSpace(v.Label); label != "" {
			productName = fmt.Sprintf("%s (%s)", name, label)
		}
		price := v.Price
		if sel.IsSample {
			price = 0
		}
		items = append(items, model.LineItem{
			ID:          fmt.Sprintf("buynow-%d", len(items)+1),
			ProductName: productName,
			Category:    strings.TrimSpace(sel.Category),
			UnitPrice:   price,
			Quantity:    v.Quantity,
			IsSample:    sel.IsSample,
		})
	}
	return items, nil
}
