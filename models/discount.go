package models

// Discount value interpretation.
const (
	ValuePercentage = "percentage"
	ValueFixed      = "fixed"
)

// Discount scope.
const (
	ScopeCart     = "cart"
	ScopeSpecific = "specific"
)

// Discount is a manual reduction applied to the cart subtotal or to matching
// items.
type Discount struct {
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Value     float64  `json:"value"`
	ValueType string   `json:"value_type"`     // percentage or fixed
	Scope     string   `json:"scope"`          // cart or specific
	SKUs      []string `json:"skus,omitempty"` // matched items when Scope == specific
}

// Promotion is a discount sourced from the remote promotion catalog. Consumed
// amounts must be reported back keyed by promotion ID after order completion.
type Promotion struct {
	ID         string   `json:"id"`
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Value      float64  `json:"value"`
	ValueType  string   `json:"value_type"`
	Scope      string   `json:"scope"`
	SKUs       []string `json:"skus,omitempty"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	LocationID string   `json:"location_id"`
}

// Charge base configuration.
const (
	ChargeBaseSubtotal      = "subtotal"          // before cart discount
	ChargeBaseAfterDiscount = "subtotal_discount" // after cart discount
)

// CustomCharge is an additive line such as a service charge or delivery fee.
// Its VAT is computed against its own tax percentage when set, else the
// company default.
type CustomCharge struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Value         float64  `json:"value"`
	ValueType     string   `json:"value_type"` // percentage or fixed
	Base          string   `json:"base"`       // percentage charges only
	TaxPercentage *float64 `json:"tax_percentage,omitempty"`
}
