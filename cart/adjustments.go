package cart

import "github.com/yeremiapane/pos-engine/models"

// Discounts returns a copy of the applied discounts in application order.
func (s *Store) Discounts() []models.Discount {
	out := make([]models.Discount, len(s.discounts))
	copy(out, s.discounts)
	return out
}

// Promotions returns a copy of the applied promotions.
func (s *Store) Promotions() []models.Promotion {
	out := make([]models.Promotion, len(s.promotions))
	copy(out, s.promotions)
	return out
}

// Charges returns a copy of the applied custom charges.
func (s *Store) Charges() []models.CustomCharge {
	out := make([]models.CustomCharge, len(s.charges))
	copy(out, s.charges)
	return out
}

// ApplyDiscount appends a discount.
func (s *Store) ApplyDiscount(d models.Discount) {
	s.discounts = append(s.discounts, d)
	s.notify(EventChanged)
	if s.snapshots != nil {
		_ = s.snapshots.SaveDiscounts(s.discounts)
	}
}

// RemoveDiscount removes the discount with the given ID. Returns false when
// absent.
func (s *Store) RemoveDiscount(id string) bool {
	for i := range s.discounts {
		if s.discounts[i].ID == id {
			s.discounts = append(s.discounts[:i], s.discounts[i+1:]...)
			s.notify(EventChanged)
			if s.snapshots != nil {
				_ = s.snapshots.SaveDiscounts(s.discounts)
			}
			return true
		}
	}
	return false
}

// ApplyPromotion appends a promotion and distributes its item-specific share
// onto matching lines when it is SKU-scoped.
func (s *Store) ApplyPromotion(p models.Promotion) {
	s.promotions = append(s.promotions, p)
	if p.Scope == models.ScopeSpecific {
		s.applySpecificPromotion(p)
	}
	s.notify(EventChanged)
	if s.snapshots != nil {
		_ = s.snapshots.SavePromotions(s.promotions)
		_ = s.snapshots.SaveItems(s.items)
	}
}

func (s *Store) applySpecificPromotion(p models.Promotion) {
	match := make(map[string]bool, len(p.SKUs))
	for _, sku := range p.SKUs {
		match[sku] = true
	}
	for i := range s.items {
		it := &s.items[i]
		if !match[it.SKU] || !it.Charged() || it.FreeKind == models.FreeItem {
			continue
		}
		switch p.ValueType {
		case models.ValuePercentage:
			it.PromotionDiscount = it.Total * p.Value / 100
		case models.ValueFixed:
			it.PromotionDiscount = p.Value
		}
		it.PromotionID = p.ID
	}
}

// RemovePromotion removes the promotion and clears its share from lines it
// touched. Returns false when absent.
func (s *Store) RemovePromotion(id string) bool {
	for i := range s.promotions {
		if s.promotions[i].ID == id {
			s.promotions = append(s.promotions[:i], s.promotions[i+1:]...)
			for j := range s.items {
				if s.items[j].PromotionID == id {
					s.items[j].PromotionDiscount = 0
					s.items[j].PromotionID = ""
				}
			}
			s.notify(EventChanged)
			if s.snapshots != nil {
				_ = s.snapshots.SavePromotions(s.promotions)
				_ = s.snapshots.SaveItems(s.items)
			}
			return true
		}
	}
	return false
}

// ApplyCharge appends a custom charge. Charges persist separately from items
// so they survive a restart independent of cart contents.
func (s *Store) ApplyCharge(ch models.CustomCharge) {
	s.charges = append(s.charges, ch)
	s.notify(EventChanged)
	if s.snapshots != nil {
		_ = s.snapshots.SaveCharges(s.charges)
	}
}

// RemoveCharge removes the charge with the given ID. Returns false when
// absent.
func (s *Store) RemoveCharge(id string) bool {
	for i := range s.charges {
		if s.charges[i].ID == id {
			s.charges = append(s.charges[:i], s.charges[i+1:]...)
			s.notify(EventChanged)
			if s.snapshots != nil {
				_ = s.snapshots.SaveCharges(s.charges)
			}
			return true
		}
	}
	return false
}

// ReplaceAllCharges swaps the whole charge set in one mutation.
func (s *Store) ReplaceAllCharges(charges []models.CustomCharge) {
	s.charges = make([]models.CustomCharge, len(charges))
	copy(s.charges, charges)
	s.notify(EventChanged)
	if s.snapshots != nil {
		_ = s.snapshots.SaveCharges(s.charges)
	}
}

// MarkVoid voids the line with the given ID, retaining the original amount
// for audit. Returns false when absent.
func (s *Store) MarkVoid(lineID, reason string) bool {
	idx := s.indexOf(lineID)
	if idx < 0 {
		return false
	}
	it := &s.items[idx]
	it.Void = true
	it.VoidReason = reason
	it.AmountBeforeVoidComp = it.Total
	s.notify(EventChanged)
	s.persistItems()
	return true
}

// MarkComp comps the line with the given ID. Returns false when absent.
func (s *Store) MarkComp(lineID, reason string) bool {
	idx := s.indexOf(lineID)
	if idx < 0 {
		return false
	}
	it := &s.items[idx]
	it.Comp = true
	it.CompReason = reason
	it.AmountBeforeVoidComp = it.Total
	s.notify(EventChanged)
	s.persistItems()
	return true
}
