package orders

import (
	"fmt"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/pricing"
	"github.com/yeremiapane/pos-engine/utils"
)

// BuildReceiptDocument reshapes a built order into the thermal-printer
// layout. Every amount is copied from the order document; displaying a number
// the order did not persist would let the receipt and the backend disagree.
func BuildReceiptDocument(order *models.OrderDocument, tpl models.PrintTemplate) *models.ReceiptDocument {
	rc := &models.ReceiptDocument{
		Template: tpl,

		ReceiptNumber: receiptNumber(order),
		OrderNumber:   order.OrderNumber,
		TokenNumber:   order.TokenNumber,
		OrderType:     order.OrderType,
		TableLabel:    order.TableLabel,
		Cashier:       order.Cashier,
		CustomerName:  order.Customer.Name,
		DateTime:      order.CreatedAt,

		Subtotal:       order.Payment.Subtotal,
		Discount:       order.Payment.Discount,
		TaxableAmount:  pricing.Round2(order.Payment.Subtotal - order.Payment.Discount - order.Payment.VAT),
		VAT:            order.Payment.VAT,
		Charges:        order.Charges,
		GrandTotal:     order.Payment.GrandTotal,
		GrandTotalText: utils.FormatCurrency(order.Payment.GrandTotal),
	}

	for _, it := range order.Items {
		if it.Void || it.Comp {
			continue // voided lines stay on the order for audit, not the receipt
		}
		line := models.ReceiptLine{
			Name:      displayName(it),
			Quantity:  it.Quantity,
			Discount:  it.Discount,
			Total:     it.Total,
			Modifiers: it.Modifiers,
		}
		if it.Quantity > 0 {
			line.UnitPrice = pricing.Round2(it.GrossTotal / it.Quantity)
		}
		if it.FreeKind == models.FreeItem {
			// Full price prints struck through; the line charges nothing.
			line.Total = 0
			line.Struck = true
		}
		rc.Lines = append(rc.Lines, line)
	}

	for _, p := range order.Payments {
		rc.Payments = append(rc.Payments, models.ReceiptPaymentLine{
			Method:   p.Method,
			Tendered: p.Tendered,
			Change:   p.Change,
		})
	}
	return rc
}

func displayName(it models.OrderItemDoc) string {
	if it.VariantName != "" {
		return fmt.Sprintf("%s (%s)", it.Name, it.VariantName)
	}
	return it.Name
}

func receiptNumber(order *models.OrderDocument) string {
	return fmt.Sprintf("RCP/%s/%s", order.CreatedAt.Format("20060102"), order.OrderNumber)
}
