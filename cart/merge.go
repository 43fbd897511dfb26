package cart

import (
	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/pricing"
)

// AddOrMergeItem applies the merge policy shared by every add entry point
// (quick grid, category browse, barcode scan, saved-ticket restore): a line
// whose SKU already exists in the cart merges into it by incrementing the
// quantity and recomputing the line total from the unit price. When either
// line is special (open item, non-per-item unit, open price, or already sent
// to the kitchen) the new line always appends instead.
//
// The returned line ID addresses whichever line the item ended up on.
func (s *Store) AddOrMergeItem(item models.CartItem) (lineID string, merged bool) {
	if !item.IsSpecial() {
		for i := range s.items {
			existing := &s.items[i]
			if existing.SKU != item.SKU || existing.IsSpecial() {
				continue
			}
			existing.Quantity += item.Quantity
			existing.Total = pricing.Round2(existing.UnitGross() * existing.Quantity)
			s.notify(EventChanged)
			s.persistItems()
			return existing.LineID, true
		}
	}
	s.AddItem(item)
	return item.LineID, false
}
