package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rationshop-api/internal/domain"
)

// ParseQuantity converts user input into a stock quantity.
// Empty, non-numeric, negative, too large and too precise values are rejected with domain.ErrInvalidQuantity;
// decimal has no NaN or infinity, so every parsed value is finite.
func ParseQuantity(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	q, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	if err := ValidateQuantity(q); err != nil {
		return decimal.Zero, err
	}
	return q, nil
}

// QuantityScale is the number of decimals a stored quantity keeps (NUMERIC(14, 3)).
const QuantityScale = 3

// MaxQuantity is the first value NUMERIC(14, 3) cannot hold.
var MaxQuantity = decimal.New(1, 14-QuantityScale)

// ValidateQuantity checks 0 <= q < MaxQuantity with at most QuantityScale decimals, so a
// stored quantity reads back exactly.
func ValidateQuantity(q decimal.Decimal) error {
	if q.IsNegative() || q.GreaterThanOrEqual(MaxQuantity) {
		return domain.ErrInvalidQuantity
	}
	if !q.Equal(q.Truncate(QuantityScale)) {
		return domain.ErrInvalidQuantity
	}
	return nil
}
