package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/pos-engine/models"
)

func productWith(variants int, stock models.Stock) *models.Product {
	p := &models.Product{ID: "p1", Name: "Cola", Unit: models.UnitPerItem}
	for i := 0; i < variants; i++ {
		p.Variants = append(p.Variants, models.Variant{
			ID:     "v" + string(rune('1'+i)),
			SKU:    "SKU-" + string(rune('1'+i)),
			Prices: []models.PriceTier{{Tier: "default", Price: 10}},
			Stocks: []models.Stock{stock},
		})
	}
	return p
}

func TestBillableAvailableUntracked(t *testing.T) {
	p := productWith(1, models.Stock{LocationID: "loc", Available: true, Tracking: false})
	assert.True(t, Billable(p, &p.Variants[0], models.Location{ID: "loc"}))
}

func TestBillableUnavailable(t *testing.T) {
	p := productWith(2, models.Stock{LocationID: "loc", Available: false})
	assert.False(t, Billable(p, &p.Variants[0], models.Location{ID: "loc", NegativeBilling: true}))
}

func TestBillableTrackedOutOfStock(t *testing.T) {
	stock := models.Stock{LocationID: "loc", Available: true, Tracking: true, StockCount: 0}

	p := productWith(2, stock)
	assert.False(t, Billable(p, &p.Variants[0], models.Location{ID: "loc"}))
	// Negative billing lets a multi-variant product sell below zero.
	assert.True(t, Billable(p, &p.Variants[0], models.Location{ID: "loc", NegativeBilling: true}))
}

// A single-variant product never bills negative, even when the location
// enables it: the override takes precedence over the location flag.
func TestBillableSingleVariantOverridesNegativeBilling(t *testing.T) {
	stock := models.Stock{LocationID: "loc", Available: true, Tracking: true, StockCount: 0}

	p := productWith(1, stock)
	assert.False(t, Billable(p, &p.Variants[0], models.Location{ID: "loc", NegativeBilling: true}))
}

func TestBillableNoStockRecordForLocation(t *testing.T) {
	p := productWith(1, models.Stock{LocationID: "other", Available: false})
	assert.True(t, Billable(p, &p.Variants[0], models.Location{ID: "loc"}))
}
