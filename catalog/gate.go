// Package catalog adapts product/variant definitions from the catalog
// collaborator into cart line items, and owns the billable gate checked
// before every add.
package catalog

import "github.com/yeremiapane/pos-engine/models"

// Billable reports whether the variant may be sold at the location right now.
// Not billable when unavailable, or when tracked stock is at or below zero
// and the location does not permit negative billing. Single-variant products never
// bill negative regardless of the location toggle; the override applies only
// to multi-variant products.
func Billable(p *models.Product, v *models.Variant, loc models.Location) bool {
	negative := loc.NegativeBilling
	if !p.HasMultipleVariants() {
		negative = false
	}

	st := stockAt(v, loc.ID)
	if st == nil {
		return true
	}
	if !st.Available {
		return false
	}
	if st.Tracking && st.StockCount <= 0 && !negative {
		return false
	}
	return true
}

func stockAt(v *models.Variant, locationID string) *models.Stock {
	for i := range v.Stocks {
		if v.Stocks[i].LocationID == locationID {
			return &v.Stocks[i]
		}
	}
	return nil
}
