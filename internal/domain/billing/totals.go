// Package billing holds the pure financial arithmetic over invoice line
// items. Amounts are kept at full precision; rounding to two places happens
// only at presentation time.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
)

// LineAmount is quantity × price for a single item.
func LineAmount(item entity.LineItem) decimal.Decimal {
	return decimal.NewFromInt(item.Quantity).Mul(item.Price)
}

// Subtotal sums quantity × price over all items.
func Subtotal(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineAmount(item))
	}
	return sum
}

// Total equals Subtotal: the per-line tax value is recorded but deliberately
// not aggregated. Do not change this without a product decision.
func Total(items []entity.LineItem) decimal.Decimal {
	return Subtotal(items)
}
