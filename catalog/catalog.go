package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/pricing"
)

var (
	ErrNotBillable     = errors.New("variant is not billable at this location")
	ErrNoPriceTier     = errors.New("variant has no price for the requested tier")
	ErrVariantNotFound = errors.New("variant not found on product")
)

// PriceForTier returns the tax-inclusive gross price for the tier, falling
// back to the variant's first price when the tier is absent.
func PriceForTier(v *models.Variant, tier string) (float64, error) {
	for _, p := range v.Prices {
		if p.Tier == tier {
			return p.Price, nil
		}
	}
	if len(v.Prices) > 0 {
		return v.Prices[0].Price, nil
	}
	return 0, ErrNoPriceTier
}

// ValidateModifiers checks the selections against the product's modifier
// groups: inactive groups/options are rejected, and each group's min/max
// selection bounds must hold. Groups with min zero may be skipped entirely.
func ValidateModifiers(p *models.Product, selected []models.AppliedModifier) error {
	counts := make(map[string]int, len(p.Modifiers))
	for _, sel := range selected {
		grp := groupByName(p, sel.GroupName)
		if grp == nil || grp.Status != models.ModifierActive {
			return fmt.Errorf("modifier group %q is not available", sel.GroupName)
		}
		if !optionActive(grp, sel.OptionName) {
			return fmt.Errorf("modifier option %q is not available", sel.OptionName)
		}
		counts[grp.Name]++
	}
	for _, grp := range p.Modifiers {
		if grp.Status != models.ModifierActive {
			continue
		}
		n := counts[grp.Name]
		if n < grp.Min {
			return fmt.Errorf("modifier group %q requires at least %d selections", grp.Name, grp.Min)
		}
		if grp.Max > 0 && n > grp.Max {
			return fmt.Errorf("modifier group %q allows at most %d selections", grp.Name, grp.Max)
		}
	}
	return nil
}

func groupByName(p *models.Product, name string) *models.ModifierGroup {
	for i := range p.Modifiers {
		if p.Modifiers[i].Name == name {
			return &p.Modifiers[i]
		}
	}
	return nil
}

func optionActive(grp *models.ModifierGroup, name string) bool {
	for _, v := range grp.Values {
		if v.Name == name {
			return v.Status == models.ModifierActive
		}
	}
	return false
}

// Selection describes one add-to-cart request resolved against the catalog.
type Selection struct {
	Product   *models.Product
	VariantID string
	Quantity  float64
	Tier      string
	Modifiers []models.AppliedModifier
	OpenPrice *float64 // overrides the tier price when set
	Location  models.Location
	Notes     string
}

// BuildCartItem turns a catalog selection into a cart line. It runs the
// billable gate and modifier validation, resolves the unit price (tier price
// plus modifier deltas, or the open price), decomposes it into exclusive
// price + VAT and snapshots the variant's stock state.
func BuildCartItem(sel Selection) (models.CartItem, error) {
	p := sel.Product
	v := variantByID(p, sel.VariantID)
	if v == nil {
		return models.CartItem{}, ErrVariantNotFound
	}
	if !Billable(p, v, sel.Location) {
		return models.CartItem{}, ErrNotBillable
	}
	if err := ValidateModifiers(p, sel.Modifiers); err != nil {
		return models.CartItem{}, err
	}

	qty := sel.Quantity
	if qty <= 0 {
		qty = 1
	}

	var gross float64
	if sel.OpenPrice != nil {
		gross = *sel.OpenPrice
	} else {
		price, err := PriceForTier(v, sel.Tier)
		if err != nil {
			return models.CartItem{}, err
		}
		gross = price
	}
	for _, m := range sel.Modifiers {
		gross += m.Price
	}

	vatPct := p.Tax.Percentage
	selling := pricing.SellingPriceExclTax(gross, vatPct)
	vat := pricing.VATAmount(gross, vatPct)

	name := p.Name
	if name == "" {
		name = models.OpenItemName
	}

	item := models.CartItem{
		LineID:              uuid.NewString(),
		ProductID:           p.ID,
		VariantID:           v.ID,
		SKU:                 v.SKU,
		Name:                name,
		NameAlt:             p.NameAlt,
		HasMultipleVariants: p.HasMultipleVariants(),
		Unit:                p.Unit,
		Quantity:            qty,
		CostPrice:           v.CostPrice,
		SellingPrice:        selling,
		VAT:                 vat,
		VATPercentage:       vatPct,
		Total:               pricing.Round2(gross * qty),
		IsOpenPrice:         sel.OpenPrice != nil || p.OpenPrice,
		Modifiers:           sel.Modifiers,
		SpecialInstructions: sel.Notes,
		KitchenRefs:         p.KitchenRefs,
	}
	if item.HasMultipleVariants {
		item.VariantName = v.Name
	}
	if st := stockAt(v, sel.Location.ID); st != nil {
		item.Stock = models.StockSnapshot{
			Available:  st.Available,
			Tracking:   st.Tracking,
			StockCount: st.StockCount,
			LowStock:   st.LowStock,
		}
	}
	return item, nil
}

func variantByID(p *models.Product, id string) *models.Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	if id == "" && len(p.Variants) == 1 {
		return &p.Variants[0]
	}
	return nil
}
