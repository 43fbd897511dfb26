// Package pricing holds the pure money math shared by every consumer of the
// cart: screen totals, receipt printing and the persisted order must all go
// through these functions so they agree on the same rounded numbers.
package pricing

import "math"

// Round2 rounds to 2 decimal places, half up. Every rounded amount in the
// engine goes through this one function.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SellingPriceExclTax decomposes a tax-inclusive gross amount into its
// VAT-exclusive selling price. Callers must always pass the tax-inclusive
// amount; catalog prices are tax-inclusive.
func SellingPriceExclTax(gross, vatPercentage float64) float64 {
	if vatPercentage == 0 {
		return Round2(gross)
	}
	return Round2(gross / (1 + vatPercentage/100))
}

// VATAmount returns the VAT portion of a tax-inclusive gross amount, defined
// as the remainder after the exclusive selling price so the two always sum
// back to the gross.
func VATAmount(gross, vatPercentage float64) float64 {
	return Round2(gross - SellingPriceExclTax(gross, vatPercentage))
}
