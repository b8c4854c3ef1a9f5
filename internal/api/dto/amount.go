package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
)

// parseNumber accepts a JSON number or a numeric JSON string.
func parseNumber(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, false
	}
	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, false
		}
		text = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParsePaise reads a gateway amount. Only whole, positive paise are valid.
func ParsePaise(raw json.RawMessage) (model.Paise, bool) {
	d, ok := parseNumber(raw)
	if !ok || !d.IsInteger() || !d.IsPositive() {
		return 0, false
	}
	return model.Paise(d.IntPart()), true
}

// ParseRupees reads an order amount, rounding half up to whole rupees.
func ParseRupees(raw json.RawMessage) (model.Rupees, bool) {
	d, ok := parseNumber(raw)
	if !ok {
		return 0, false
	}
	return model.Rupees(d.Round(0).IntPart()), true
}

// ParseRating returns nil unless raw is a JSON number.
func ParseRating(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}
