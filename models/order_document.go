package models

import "time"

// Payment methods accepted in the breakup.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentWallet = "wallet"
	PaymentCredit = "credit"
)

// PaymentEntry is one method's share of the settlement.
type PaymentEntry struct {
	Method   string  `json:"method"`
	Tendered float64 `json:"tendered"`
	Change   float64 `json:"change"`
}

// CustomerSnapshot is the customer state frozen into the order.
type CustomerSnapshot struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// OrderItemDoc is a line item as persisted on the order. SellingPrice and VAT
// here are recomputed from the post-discount line total so the persisted VAT
// reconciles against what the customer actually paid.
type OrderItemDoc struct {
	LineID    string `json:"line_id"`
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	SKU       string `json:"sku"`

	Name        string `json:"name"`
	NameAlt     string `json:"name_alt,omitempty"`
	VariantName string `json:"variant_name,omitempty"`

	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`

	SellingPrice  float64 `json:"selling_price"`
	VAT           float64 `json:"vat"`
	VATPercentage float64 `json:"vat_percentage"`

	GrossTotal         float64 `json:"gross_total"`
	Discount           float64 `json:"discount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	PromotionDiscount  float64 `json:"promotion_discount"`
	PromotionID        string  `json:"promotion_id,omitempty"`
	Total              float64 `json:"total"` // post-discount line total

	FreeKind             FreeKind `json:"free_kind,omitempty"`
	Void                 bool     `json:"void"`
	Comp                 bool     `json:"comp"`
	VoidReason           string   `json:"void_reason,omitempty"`
	CompReason           string   `json:"comp_reason,omitempty"`
	AmountBeforeVoidComp float64  `json:"amount_before_void_comp,omitempty"`

	Modifiers           []AppliedModifier `json:"modifiers,omitempty"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`

	KitchenRefs []string `json:"kitchen_refs,omitempty"`
	KOTID       string   `json:"kot_id,omitempty"`
}

// ChargeDoc is a computed custom charge line on the order.
type ChargeDoc struct {
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	VAT           float64 `json:"vat"`
	TaxPercentage float64 `json:"tax_percentage"`
}

// PaymentSummary is the order-level money breakdown.
type PaymentSummary struct {
	Subtotal           float64 `json:"subtotal"` // gross, pre-discount
	Discount           float64 `json:"discount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	VAT                float64 `json:"vat"`
	Charges            float64 `json:"charges"`
	ChargeVAT          float64 `json:"charge_vat"`
	GrandTotal         float64 `json:"grand_total"`
	Tendered           float64 `json:"tendered"`
	Change             float64 `json:"change"`
}

// OrderDocument is the persisted record of a completed order.
type OrderDocument struct {
	OrderNumber string    `json:"order_number"`
	TokenNumber int       `json:"token_number"`
	OrderType   string    `json:"order_type"`
	Channel     string    `json:"channel"`
	CreatedAt   time.Time `json:"created_at"`

	Customer CustomerSnapshot `json:"customer"`
	Cashier  string           `json:"cashier"`
	DeviceID string           `json:"device_id"`

	CompanyID  string `json:"company_id"`
	LocationID string `json:"location_id"`
	PrinterRef string `json:"printer_ref,omitempty"`

	TableLabel string `json:"table_label,omitempty"`
	KOTSeq     int    `json:"kot_seq,omitempty"`

	Items   []OrderItemDoc `json:"items"`
	Charges []ChargeDoc    `json:"charges,omitempty"`

	Payment  PaymentSummary `json:"payment"`
	Payments []PaymentEntry `json:"payments"`

	SpecialInstructions string `json:"special_instructions,omitempty"`
}
