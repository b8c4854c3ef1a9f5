package pricing

import (
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
)

const (
	OfferOngoing      = "Ongoing Offer"
	OfferSampleBundle = "Free Samples Discount"
	OfferNone         = "No Discount"
)

type Rules struct {
	DiscountThreshold   model.Rupees
	DiscountPercent     int64
	SampleBundlePercent int64
	DeliveryCharge      model.Rupees
	ReferenceState      string
	LocalDeliveryTime   string
	DefaultDeliveryTime string
}

func DefaultRules() Rules {
	return Rules{
		DiscountThreshold:   500,
		DiscountPercent:     15,
		SampleBundlePercent: 10,
		DeliveryCharge:      50,
		ReferenceState:      "Tamil Nadu",
		LocalDeliveryTime:   "3 days",
		DefaultDeliveryTime: "10 days",
	}
}

type DiscountInfo struct {
	Type       string       `json:"type"`
	Percentage int64        `json:"percentage"`
	Amount     model.Rupees `json:"amount"`
}

type Breakdown struct {
	Subtotal       model.Rupees `json:"subtotal"`
	Discount       model.Rupees `json:"discount"`
	Final          model.Rupees `json:"final_amount"`
	DeliveryCharge model.Rupees `json:"delivery_charge"`
	Total          model.Rupees `json:"total"`
	Offer          DiscountInfo `json:"offer"`
}

type Calculator struct {
	rules Rules
}

func NewCalculator(rules Rules) *Calculator {
	return &Calculator{rules: rules}
}

func (c *Calculator) Rules() Rules {
	return c.rules
}

// Calculate prices a set of line items.
// Samples contribute nothing and never count towards the discount threshold.
// Quantities and prices are taken as given.
func (c *Calculator) Calculate(items []model.LineItem) Breakdown {
	var (
		subtotal   model.Rupees
		hasSamples bool
		hasPaid    bool
	)
	for _, item := range items {
		if item.IsSample {
			hasSamples = true
			continue
		}
		if item.UnitPrice > 0 {
			hasPaid = true
		}
		subtotal += item.Total()
	}

	offer := c.offer(subtotal, hasSamples, hasPaid)
	final := subtotal - offer.Amount
	if final < 0 {
		final = 0
	}

	var delivery model.Rupees
	if hasPaid && subtotal < c.rules.DiscountThreshold {
		delivery = c.rules.DeliveryCharge
	}

	return Breakdown{
		Subtotal:       subtotal,
		Discount:       offer.Amount,
		Final:          final,
		DeliveryCharge: delivery,
		Total:          final + delivery,
		Offer:          offer,
	}
}

func (c *Calculator) offer(subtotal model.Rupees, hasSamples, hasPaid bool) DiscountInfo {
	if subtotal >= c.rules.DiscountThreshold && c.rules.DiscountPercent > 0 {
		return DiscountInfo{
			Type:       OfferOngoing,
			Percentage: c.rules.DiscountPercent,
			Amount:     percentOf(subtotal, c.rules.DiscountPercent),
		}
	}
	if hasSamples && hasPaid && c.rules.SampleBundlePercent > 0 {
		return DiscountInfo{
			Type:       OfferSampleBundle,
			Percentage: c.rules.SampleBundlePercent,
			Amount:     percentOf(subtotal, c.rules.SampleBundlePercent),
		}
	}
	return DiscountInfo{Type: OfferNone}
}

// DeliveryTime is "3 days" inside the reference state and "10 days" everywhere else.
func (c *Calculator) DeliveryTime(state string) string {
	if strings.EqualFold(strings.TrimSpace(state), c.rules.ReferenceState) {
		return c.rules.LocalDeliveryTime
	}
	return c.rules.DefaultDeliveryTime
}

// percentOf rounds half up, 82.5 becomes 83.
func percentOf(amount model.Rupees, percent int64) model.Rupees {
	v := decimal.NewFromInt(int64(amount)).
		Mul(decimal.NewFromInt(percent)).
		Div(decimal.NewFromInt(100)).
		Round(0)
	return model.Rupees(v.IntPart())
}
