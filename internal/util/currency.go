package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol is the currency symbol for Indian Rupees.
const RupeeSymbol = "₹"

// FormatINR formats an amount as Indian Rupees with exactly two decimal
// places and no digit grouping, e.g. "₹1234.50".
func FormatINR(amount decimal.Decimal) string {
	return RupeeSymbol + amount.StringFixed(2)
}

// FormatINRIndian formats an amount as Indian Rupees using the Indian
// numbering system: the last three integer digits form one group, every two
// digits after that form another, e.g. "₹12,34,567.89". The numeric value is
// identical to FormatINR; only grouping differs.
func FormatINRIndian(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:] // includes the dot

	grouped := groupIndian(intPart)

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(RupeeSymbol)
	b.WriteString(grouped)
	b.WriteString(fracPart)
	return b.String()
}

// groupIndian inserts commas per the lakh/crore convention.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
