package pricing

import "github.com/yeremiapane/pos-engine/models"

// Totals is the aggregate money view derived from cart state. Every UI
// surface and document reads these fields; nothing keeps a parallel copy.
type Totals struct {
	Subtotal           float64 `json:"subtotal"` // gross, pre-discount, charged lines only
	Discount           float64 `json:"discount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Net                float64 `json:"net"` // subtotal - discount
	TaxableAmount      float64 `json:"taxable_amount"`
	VAT                float64 `json:"vat"`
	Charges            float64 `json:"charges"`
	ChargeVAT          float64 `json:"charge_vat"`
	GrandTotal         float64 `json:"grand_total"`

	ChargeLines []models.ChargeDoc `json:"charge_lines,omitempty"`
}

// CartDiscountPercent resolves the applied discounts into a single cart-wide
// percentage over the given gross subtotal. Fixed-value discounts convert to
// their percentage share of the subtotal; an empty cart yields zero rather
// than dividing by it.
func CartDiscountPercent(discounts []models.Discount, subtotal float64) float64 {
	if subtotal <= 0 {
		return 0
	}
	var pct float64
	for _, d := range discounts {
		switch d.ValueType {
		case models.ValuePercentage:
			pct += d.Value
		case models.ValueFixed:
			pct += d.Value / subtotal * 100
		}
	}
	return pct
}

// Aggregate recomputes totals from distributed items plus the applied
// charges. Items must already have gone through DistributeDiscounts. VAT is
// taken per line from the post-discount total, matching what the order
// document persists.
func Aggregate(items []models.CartItem, charges []models.CustomCharge, defaultTaxPct float64) Totals {
	var t Totals
	for _, it := range items {
		if !it.Charged() {
			continue
		}
		if it.FreeKind == models.FreeItem {
			// Zero net revenue, zero discount accounting, and excluded
			// from charge bases. The full price still prints struck
			// through on the receipt line.
			continue
		}
		t.Subtotal += it.Total
		t.Discount += it.Discount
		t.Net += it.DiscountedTotal
		t.VAT += VATAmount(it.DiscountedTotal, it.VATPercentage)
	}
	t.Subtotal = Round2(t.Subtotal)
	t.Discount = Round2(t.Discount)
	t.Net = Round2(t.Net)
	t.VAT = Round2(t.VAT)
	t.TaxableAmount = Round2(t.Net - t.VAT)
	if t.Subtotal > 0 {
		t.DiscountPercentage = Round2(t.Discount / t.Subtotal * 100)
	}

	for _, ch := range charges {
		line := ComputeCharge(ch, t.Subtotal, t.Net, defaultTaxPct)
		t.ChargeLines = append(t.ChargeLines, line)
		t.Charges += line.Amount
		t.ChargeVAT += line.VAT
	}
	t.Charges = Round2(t.Charges)
	t.ChargeVAT = Round2(t.ChargeVAT)

	t.GrandTotal = Round2(t.Net + t.Charges)
	return t
}

// ComputeCharge evaluates one custom charge. Percentage charges apply to the
// configured base (gross subtotal, or the discounted net); the charge amount
// is tax-inclusive and its VAT uses the charge's own tax percentage when set,
// else the company default.
func ComputeCharge(ch models.CustomCharge, subtotal, net, defaultTaxPct float64) models.ChargeDoc {
	var amount float64
	switch ch.ValueType {
	case models.ValuePercentage:
		base := subtotal
		if ch.Base == models.ChargeBaseAfterDiscount {
			base = net
		}
		amount = Round2(base * ch.Value / 100)
	default:
		amount = Round2(ch.Value)
	}

	taxPct := defaultTaxPct
	if ch.TaxPercentage != nil {
		taxPct = *ch.TaxPercentage
	}

	return models.ChargeDoc{
		Name:          ch.Name,
		Amount:        amount,
		VAT:           VATAmount(amount, taxPct),
		TaxPercentage: taxPct,
	}
}
