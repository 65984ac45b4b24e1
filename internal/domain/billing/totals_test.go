package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/udhaydurai/donor-breeze/internal/domain/billing"
	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
)

func item(qty int64, price string) entity.LineItem {
	return entity.LineItem{
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
	}
}

func TestSubtotal_SumsQuantityTimesPrice(t *testing.T) {
	items := []entity.LineItem{item(2, "10.50")}
	assert.Equal(t, "21.00", billing.Subtotal(items).StringFixed(2))

	// Add a second row.
	items = append(items, item(1, "5"))
	assert.Equal(t, "26.00", billing.Subtotal(items).StringFixed(2))

	// Drop the first row.
	items = items[1:]
	assert.Equal(t, "5.00", billing.Subtotal(items).StringFixed(2))
}

func TestSubtotal_EmptyIsZero(t *testing.T) {
	assert.True(t, billing.Subtotal(nil).IsZero())
}

func TestSubtotal_AppendThenRemoveRestoresPriorValue(t *testing.T) {
	items := []entity.LineItem{item(3, "7.25"), item(1, "100")}
	before := billing.Subtotal(items)

	items = append(items, item(2, "49.99"))
	items = items[:len(items)-1]

	assert.True(t, before.Equal(billing.Subtotal(items)),
		"append then remove must restore the prior subtotal")
}

// Total equals Subtotal: the per-line tax value is tracked but never
// aggregated.
func TestTotal_EqualsSubtotalEvenWithTax(t *testing.T) {
	tax := decimal.RequireFromString("8.25")
	items := []entity.LineItem{
		{Quantity: 2, Price: decimal.RequireFromString("10.50"), Tax: &tax},
		item(4, "3.10"),
	}
	assert.True(t, billing.Total(items).Equal(billing.Subtotal(items)))
}

func TestSubtotal_KeepsFullPrecision(t *testing.T) {
	// 3 × 0.333 = 0.999: stored values keep full precision, rounding
	// happens only at presentation time.
	items := []entity.LineItem{item(3, "0.333")}
	assert.Equal(t, "0.999", billing.Subtotal(items).String())
	assert.Equal(t, "1.00", billing.Subtotal(items).StringFixed(2))
}
