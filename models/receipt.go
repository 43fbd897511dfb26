package models

import "time"

// PrintTemplate carries the company/header/footer text rendered around the
// receipt body. It comes from the print-template collaborator (env-configured
// company profile here).
type PrintTemplate struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`
	TaxNumber      string `json:"tax_number,omitempty"`
	HeaderNote     string `json:"header_note,omitempty"`
	FooterNote     string `json:"footer_note,omitempty"`
	LegalText      string `json:"legal_text,omitempty"`
}

// ReceiptLine is one printable item row.
type ReceiptLine struct {
	Name      string            `json:"name"`
	Quantity  float64           `json:"quantity"`
	UnitPrice float64           `json:"unit_price"` // tax-inclusive
	Discount  float64           `json:"discount,omitempty"`
	Total     float64           `json:"total"`            // post-discount
	Struck    bool              `json:"struck,omitempty"` // free lines print struck through
	Modifiers []AppliedModifier `json:"modifiers,omitempty"`
}

// ReceiptPaymentLine is one payment-method row in the footer.
type ReceiptPaymentLine struct {
	Method   string  `json:"method"`
	Tendered float64 `json:"tendered"`
	Change   float64 `json:"change"`
}

// ReceiptDocument is the structured layout handed to thermal printers. Every
// amount on it must equal the amount persisted on the order document.
type ReceiptDocument struct {
	Template PrintTemplate `json:"template"`

	ReceiptNumber string    `json:"receipt_number"`
	OrderNumber   string    `json:"order_number"`
	TokenNumber   int       `json:"token_number"`
	OrderType     string    `json:"order_type"`
	TableLabel    string    `json:"table_label,omitempty"`
	Cashier       string    `json:"cashier"`
	CustomerName  string    `json:"customer_name,omitempty"`
	DateTime      time.Time `json:"date_time"`

	Lines []ReceiptLine `json:"lines"`

	Subtotal       float64     `json:"subtotal"`
	Discount       float64     `json:"discount"`
	TaxableAmount  float64     `json:"taxable_amount"` // VAT-exclusive
	VAT            float64     `json:"vat"`
	Charges        []ChargeDoc `json:"charges,omitempty"`
	GrandTotal     float64     `json:"grand_total"`
	GrandTotalText string      `json:"grand_total_text"` // pre-formatted for the printer

	Payments []ReceiptPaymentLine `json:"payments"`
}
