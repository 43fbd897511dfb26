package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/pos-engine/models"
)

func item(total, vatPct float64) models.CartItem {
	return models.CartItem{
		LineID:        "line",
		Name:          "Burger",
		Unit:          models.UnitPerItem,
		Quantity:      1,
		SellingPrice:  SellingPriceExclTax(total, vatPct),
		VAT:           VATAmount(total, vatPct),
		VATPercentage: vatPct,
		Total:         total,
	}
}

// total=115 at 15% VAT with a 10% cart discount: selling 100, VAT 15,
// proportional discount 11.50, final 103.50, discount percentage 10.
func TestDistributeCartWideDiscount(t *testing.T) {
	items := DistributeDiscounts([]models.CartItem{item(115, 15)}, 10)

	it := items[0]
	assert.Equal(t, 11.50, it.Discount)
	assert.Equal(t, 103.50, it.DiscountedTotal)
	assert.InDelta(t, 10.00, it.DiscountPercentage, 1e-9)
	assert.Equal(t, 100.00, SellingPriceExclTax(115, 15))
	assert.Equal(t, 15.00, VATAmount(115, 15))
}

// Item promotion first, cart discount off the promotion-discounted base:
// total 100, promo 20, cart 10% -> proportional 8, final 72.
func TestDistributePromotionStacking(t *testing.T) {
	it := item(100, 0)
	it.PromotionDiscount = 20
	it.PromotionID = "promo-1"

	items := DistributeDiscounts([]models.CartItem{it}, 10)

	got := items[0]
	assert.Equal(t, 28.00, got.Discount)
	assert.Equal(t, 72.00, got.DiscountedTotal)
	assert.InDelta(t, 28.00, got.DiscountPercentage, 1e-9) // 8% proportional + 20% specific
}

func TestDistributeFreeItemNeutrality(t *testing.T) {
	for _, pct := range []float64{0, 10, 50, 100} {
		it := item(115, 15)
		it.FreeKind = models.FreeItem
		it.PromotionDiscount = 20 // must be wiped too

		items := DistributeDiscounts([]models.CartItem{it}, pct)

		got := items[0]
		assert.Equal(t, 0.00, got.Discount)
		assert.Equal(t, 0.00, got.DiscountPercentage)
		assert.Equal(t, 0.00, got.PromotionDiscount)
		assert.Equal(t, 115.00, got.DiscountedTotal)
	}
}

func TestDistributeFreeQuantity(t *testing.T) {
	it := item(30, 0) // 3 x 10
	it.Quantity = 3
	it.SellingPrice = 10
	it.FreeKind = models.FreeQuantity
	it.FreeQuantity = 1

	items := DistributeDiscounts([]models.CartItem{it}, 0)

	got := items[0]
	assert.Equal(t, 10.00, got.Discount)
	assert.Equal(t, 20.00, got.DiscountedTotal)
}

func TestDistributeVoidAndComp(t *testing.T) {
	v := item(50, 0)
	v.Void = true
	cm := item(40, 0)
	cm.Comp = true

	items := DistributeDiscounts([]models.CartItem{v, cm}, 10)

	assert.Equal(t, 0.00, items[0].DiscountedTotal)
	assert.Equal(t, 50.00, items[0].AmountBeforeVoidComp)
	assert.Equal(t, 0.00, items[1].DiscountedTotal)
	assert.Equal(t, 40.00, items[1].AmountBeforeVoidComp)
}

// Summing final totals plus discounts must reproduce the pre-discount
// subtotal within 0.01 per line; the per-item rounding drift is accepted and
// documented, never redistributed.
func TestDistributeReconciliation(t *testing.T) {
	var items []models.CartItem
	totals := []float64{19.99, 7.35, 112.40, 3.33, 0.99, 45.67, 88.88}
	for _, tt := range totals {
		items = append(items, item(tt, 15))
	}

	for _, pct := range []float64{3.33, 7, 12.5, 33.33} {
		out := DistributeDiscounts(items, pct)

		var gross, final, discount float64
		for _, it := range out {
			gross += it.Total
			final += it.DiscountedTotal
			discount += it.Discount
		}
		tolerance := 0.01 * float64(len(out))
		assert.InDelta(t, gross, final+discount, tolerance, "pct=%v", pct)
	}
}
