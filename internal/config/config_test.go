package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pricing"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "6001")
	t.Setenv("KAFKA_BROKERS", "localhost:9092, localhost:9093")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")

	cf, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "6001", cf.ServerPort)
	require.Equal(t, []string{"localhost:9092", "localhost:9093"}, cf.KafkaBrokerList())
	require.True(t, cf.RazorpayConfigured())
	require.Equal(t, "order-notifications", cf.KafkaNotifyTopic)
	require.Equal(t, "RG", cf.OrderIDPrefix)
}

func TestLoadPricingConfigDefaultsWhenMissing(t *testing.T) {
	cf, err := LoadPricingConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	require.Equal(t, pricing.DefaultRules(), cf.Rules())
}

func TestLoadPricingConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	err := os.WriteFile(path, []byte("discount:\n  threshold: 1000\n  percent: 20\ndelivery:\n  charge: 0\n"), 0o600)
	require.NoError(t, err)

	cf, err := LoadPricingConfig(path)
	require.NoError(t, err)
	rules := cf.Rules()
	require.Equal(t, model.Rupees(1000), rules.DiscountThreshold)
	require.Equal(t, int64(20), rules.DiscountPercent)
	require.Equal(t, model.Rupees(0), rules.DeliveryCharge)
	require.Equal(t, "Tamil Nadu", rules.ReferenceState)
}

func TestLoadPricingConfigInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("discount: [oops"), 0o600))

	_, err := LoadPricingConfig(path)
	require.Error(t, err)
}
