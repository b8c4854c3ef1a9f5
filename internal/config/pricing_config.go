package config

import (
	"errors"
	"os"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pricing"
	"gopkg.in/yaml.v3"
)

type DiscountConfig struct {
	Threshold           int64 `yaml:"threshold"`
	Percent             int64 `yaml:"percent"`
	SampleBundlePercent int64 `yaml:"sample_bundle_percent"`
}

type DeliveryConfig struct {
	Charge         int64  `yaml:"charge"`
	ReferenceState string `yaml:"reference_state"`
	LocalTime      string `yaml:"local_time"`
	DefaultTime    string `yaml:"default_time"`
}

type PricingConfig struct {
	Discount DiscountConfig `yaml:"discount"`
	Delivery DeliveryConfig `yaml:"delivery"`
}

// LoadPricingConfig reads the pricing yaml. A missing file yields the built in rules.
func LoadPricingConfig(path string) (*PricingConfig, error) {
	defaults := pricing.DefaultRules()
	cf := &PricingConfig{
		Discount: DiscountConfig{
			Threshold:           int64(defaults.DiscountThreshold),
			Percent:             defaults.DiscountPercent,
			SampleBundlePercent: defaults.SampleBundlePercent,
		},
		Delivery: DeliveryConfig{
			Charge:         int64(defaults.DeliveryCharge),
			ReferenceState: defaults.ReferenceState,
			LocalTime:      defaults.LocalDeliveryTime,
			DefaultTime:    defaults.DefaultDeliveryTime,
		},
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cf, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cf); err != nil {
		return nil, err
	}
	return cf, nil
}

func (p *PricingConfig) Rules() pricing.Rules {
	return pricing.Rules{
		DiscountThreshold:   model.Rupees(p.Discount.Threshold),
		DiscountPercent:     p.Discount.Percent,
		SampleBundlePercent: p.Discount.SampleBundlePercent,
		DeliveryCharge:      model.Rupees(p.Delivery.Charge),
		ReferenceState:      p.Delivery.ReferenceState,
		LocalDeliveryTime:   p.Delivery.LocalTime,
		DefaultDeliveryTime: p.Delivery.DefaultTime,
	}
}
