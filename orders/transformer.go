// Package orders reshapes cart state into the three completion documents:
// the persisted order, the kitchen tickets and the printable receipt. All
// money on the documents comes from the pricing package; nothing here rounds
// on its own.
package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/pricing"
)

var (
	ErrEmptyCart         = errors.New("cannot complete an order with no items")
	ErrPaymentIncomplete = errors.New("tendered amount is less than the grand total")
)

// Session is the register context an order completes under.
type Session struct {
	OrderNumber string
	TokenNumber int
	OrderType   string
	Channel     string

	Cashier  string
	DeviceID string

	CompanyID  string
	LocationID string
	PrinterRef string

	// TableLabel and KOTSeq identify the dine-in context; both empty/zero
	// for counter orders.
	TableLabel string
	KOTSeq     int

	Customer            models.CustomerSnapshot
	Payments            []models.PaymentEntry
	SpecialInstructions string
}

// KOTID composes the kitchen ticket ID for the session's table context, empty
// when there is none.
func (s Session) KOTID() string {
	if s.TableLabel == "" {
		return ""
	}
	return fmt.Sprintf("%s-%d", s.TableLabel, s.KOTSeq)
}

// Tendered sums the payment breakup.
func (s Session) Tendered() float64 {
	var sum float64
	for _, p := range s.Payments {
		sum += p.Tendered
	}
	return sum
}

// BuildOrderDocument turns distributed cart lines plus aggregate totals into
// the persisted order. It refuses an empty cart, and refuses to run while the
// payment breakup does not cover the grand total; the cart is untouched in
// both cases.
//
// Per-item SellingPrice and VAT are recomputed from the post-discount line
// total, not carried over from the pre-discount line: the persisted VAT must
// reconcile against what was actually charged.
func BuildOrderDocument(items []models.CartItem, totals pricing.Totals, sess Session) (*models.OrderDocument, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	tendered := pricing.Round2(sess.Tendered())
	if tendered < totals.GrandTotal {
		return nil, ErrPaymentIncomplete
	}

	doc := &models.OrderDocument{
		OrderNumber: sess.OrderNumber,
		TokenNumber: sess.TokenNumber,
		OrderType:   sess.OrderType,
		Channel:     sess.Channel,
		CreatedAt:   time.Now(),

		Customer: sess.Customer,
		Cashier:  sess.Cashier,
		DeviceID: sess.DeviceID,

		CompanyID:  sess.CompanyID,
		LocationID: sess.LocationID,
		PrinterRef: sess.PrinterRef,

		TableLabel: sess.TableLabel,
		KOTSeq:     sess.KOTSeq,

		Charges:  totals.ChargeLines,
		Payments: sess.Payments,

		SpecialInstructions: sess.SpecialInstructions,
	}

	kotID := sess.KOTID()
	for _, it := range items {
		doc.Items = append(doc.Items, buildItemDoc(it, kotID))
	}

	doc.Payment = models.PaymentSummary{
		Subtotal:           totals.Subtotal,
		Discount:           totals.Discount,
		DiscountPercentage: totals.DiscountPercentage,
		VAT:                totals.VAT,
		Charges:            totals.Charges,
		ChargeVAT:          totals.ChargeVAT,
		GrandTotal:         totals.GrandTotal,
		Tendered:           tendered,
		Change:             pricing.Round2(tendered - totals.GrandTotal),
	}
	return doc, nil
}

func buildItemDoc(it models.CartItem, kotID string) models.OrderItemDoc {
	name := it.Name
	if name == "" {
		name = models.OpenItemName
	}

	final := it.DiscountedTotal
	if it.Void || it.Comp {
		final = 0
	}

	d := models.OrderItemDoc{
		LineID:    it.LineID,
		ProductID: it.ProductID,
		VariantID: it.VariantID,
		SKU:       it.SKU,

		Name:    name,
		NameAlt: it.NameAlt,

		Unit:     it.Unit,
		Quantity: it.Quantity,

		// Recomputed from the final total so price+VAT reconcile
		// post-discount.
		SellingPrice:  pricing.SellingPriceExclTax(final, it.VATPercentage),
		VAT:           pricing.VATAmount(final, it.VATPercentage),
		VATPercentage: it.VATPercentage,

		GrossTotal:         it.Total,
		Discount:           it.Discount,
		DiscountPercentage: it.DiscountPercentage,
		PromotionDiscount:  it.PromotionDiscount,
		PromotionID:        it.PromotionID,
		Total:              final,

		FreeKind:             it.FreeKind,
		Void:                 it.Void,
		Comp:                 it.Comp,
		VoidReason:           it.VoidReason,
		CompReason:           it.CompReason,
		AmountBeforeVoidComp: it.AmountBeforeVoidComp,

		Modifiers:           it.Modifiers,
		SpecialInstructions: it.SpecialInstructions,

		KitchenRefs: it.KitchenRefs,
		KOTID:       kotID,
	}
	if it.HasMultipleVariants {
		d.VariantName = it.VariantName
	}
	return d
}
