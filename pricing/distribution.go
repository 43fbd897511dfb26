package pricing

import "github.com/yeremiapane/pos-engine/models"

// DistributeDiscounts spreads a cart-wide discount percentage across the
// items and folds in each item's specific promotion discount. It returns new
// items; inputs are not mutated.
//
// Per item, with base = total - promotionDiscount:
//
//	proportional = base * cartPct / 100
//	discount     = round2(proportional) + round2(promotionDiscount)
//	final        = total - round2(proportional) - round2(promotionDiscount)
//	discountPct  = round2(proportional)/total*100 + promotionDiscount/total*100
//
// so a cart discount stacks on the promotion-discounted amount, not the
// original price. Free lines are excluded entirely: their discount fields are
// forced to zero and the full total stands (the markdown is already expressed
// by the free flag). Free-quantity lines net the free units' value as the
// promotion-style share before the cart percentage applies.
//
// Summing the final totals plus discounts reproduces the pre-discount
// subtotal only up to per-item rounding: the drift can reach 0.01 per line
// and is deliberately left in place so every consumer sees the same numbers.
func DistributeDiscounts(items []models.CartItem, cartDiscountPct float64) []models.CartItem {
	out := make([]models.CartItem, len(items))
	for i, it := range items {
		out[i] = distribute(it, cartDiscountPct)
	}
	return out
}

func distribute(it models.CartItem, cartDiscountPct float64) models.CartItem {
	if it.Void || it.Comp {
		if it.AmountBeforeVoidComp == 0 {
			it.AmountBeforeVoidComp = it.Total
		}
		it.Discount = 0
		it.DiscountPercentage = 0
		it.PromotionDiscount = 0
		it.DiscountedTotal = 0
		return it
	}

	if it.FreeKind == models.FreeItem {
		it.Discount = 0
		it.DiscountPercentage = 0
		it.PromotionDiscount = 0
		it.DiscountedTotal = it.Total
		return it
	}

	specific := it.PromotionDiscount
	if it.FreeKind == models.FreeQuantity && it.Quantity > 0 {
		// Free units are netted like an item-specific discount.
		specific += Round2(it.UnitGross() * it.FreeQuantity)
	}

	base := it.Total - specific
	proportional := Round2(base * cartDiscountPct / 100)
	specific = Round2(specific)

	it.Discount = proportional + specific
	it.DiscountedTotal = it.Total - proportional - specific
	if it.Total > 0 {
		it.DiscountPercentage = proportional/it.Total*100 + specific/it.Total*100
	} else {
		it.DiscountPercentage = 0
	}
	return it
}
