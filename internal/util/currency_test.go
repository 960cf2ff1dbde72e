package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "₹0.00"},
		{"single decimal", decimal.NewFromFloat(1234.5), "₹1234.50"},
		{"two decimals", decimal.NewFromFloat(99.99), "₹99.99"},
		{"no grouping for large amounts", decimal.NewFromInt(1234567), "₹1234567.00"},
		{"cent precision preserved", decimal.NewFromFloat(0.05), "₹0.05"},
		{"negative", decimal.NewFromFloat(-42.10), "-₹42.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.want {
				t.Errorf("FormatINR(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatINRIndian(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "₹0.00"},
		{"under a thousand", decimal.NewFromFloat(999.99), "₹999.99"},
		{"thousand", decimal.NewFromInt(1000), "₹1,000.00"},
		{"lakh", decimal.NewFromInt(100000), "₹1,00,000.00"},
		{"mixed", decimal.NewFromFloat(1234567.89), "₹12,34,567.89"},
		{"crore", decimal.NewFromInt(10000000), "₹1,00,00,000.00"},
		{"negative lakh", decimal.NewFromInt(-250000), "-₹2,50,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINRIndian(tt.amount); got != tt.want {
				t.Errorf("FormatINRIndian(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatVariantsAgreeOnValue(t *testing.T) {
	// Stripping separators from the localized form must yield the plain form.
	amounts := []decimal.Decimal{
		decimal.NewFromFloat(0.01),
		decimal.NewFromFloat(4321.09),
		decimal.NewFromInt(98765432),
	}

	for _, amount := range amounts {
		plain := FormatINR(amount)
		localized := FormatINRIndian(amount)

		stripped := ""
		for _, r := range localized {
			if r != ',' {
				stripped += string(r)
			}
		}

		if stripped != plain {
			t.Errorf("localized %q does not agree with plain %q", localized, plain)
		}
	}
}
