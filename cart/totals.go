package cart

import (
	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/pricing"
)

// grossBase is the discountable gross subtotal: charged lines only, free
// lines excluded.
func (s *Store) grossBase() float64 {
	var gross float64
	for _, it := range s.items {
		if it.Charged() && it.FreeKind != models.FreeItem {
			gross += it.Total
		}
	}
	return gross
}

// DiscountPercent resolves the applied discounts plus cart-scoped promotions
// into the single cart-wide percentage the distribution step uses.
func (s *Store) DiscountPercent() float64 {
	gross := s.grossBase()
	pct := pricing.CartDiscountPercent(s.discounts, gross)
	if gross <= 0 {
		return pct
	}
	for _, p := range s.promotions {
		if p.Scope == models.ScopeSpecific {
			continue // already on the lines as PromotionDiscount
		}
		switch p.ValueType {
		case models.ValuePercentage:
			pct += p.Value
		case models.ValueFixed:
			pct += p.Value / gross * 100
		}
	}
	return pct
}

// Distributed is the aggregation hook: it runs the pricing engine over the
// current state and returns the distributed lines together with the totals.
// An empty cart yields zeroed totals.
func (s *Store) Distributed(defaultTaxPct float64) ([]models.CartItem, pricing.Totals) {
	if len(s.items) == 0 {
		return nil, pricing.Totals{}
	}
	items := pricing.DistributeDiscounts(s.Items(), s.DiscountPercent())
	totals := pricing.Aggregate(items, s.charges, defaultTaxPct)
	return items, totals
}

// PromotionUsage returns the consumed amount keyed by promotion ID, for the
// usage-update callback after order completion.
func (s *Store) PromotionUsage() map[string]float64 {
	if len(s.promotions) == 0 {
		return nil
	}
	usage := make(map[string]float64, len(s.promotions))
	gross := s.grossBase()
	for _, p := range s.promotions {
		switch p.Scope {
		case models.ScopeSpecific:
			var sum float64
			for _, it := range s.items {
				if it.PromotionID == p.ID && it.Charged() {
					sum += it.PromotionDiscount
				}
			}
			usage[p.ID] = pricing.Round2(sum)
		default:
			if p.ValueType == models.ValueFixed {
				usage[p.ID] = pricing.Round2(p.Value)
			} else {
				usage[p.ID] = pricing.Round2(gross * p.Value / 100)
			}
		}
	}
	return usage
}
