package utils

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyTokens = []string{"TSh", "TZS", "KSh", "KES", "USD", "EUR", "GBP", "$", "€", "£"}

// ParseAmount accepts user-formatted amounts like "1,234.50", "TSh 20,000" or "-$3.5".
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	for _, token := range currencyTokens {
		s = strings.ReplaceAll(s, token, "")
	}
	s = strings.TrimSpace(s)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	// keep digits and '.'
	var b strings.Builder
	b.Grow(len(s) + 1)
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return decimal.Zero, errors.New("invalid amount")
	}
	if neg {
		clean = "-" + clean
	}
	return decimal.NewFromString(clean)
}

// RoundMoney rounds to two decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FloorZero returns d, or zero when d is negative.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
