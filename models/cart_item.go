package models

// Unit of sale for a cart line.
const (
	UnitPerItem   = "item"
	UnitPerWeight = "weight"
	UnitPerVolume = "volume"
)

// OpenItemName is the placeholder name used for open-price entries.
const OpenItemName = "Open Item"

// FreeKind tags the reason a line contributes no (or reduced) revenue.
type FreeKind string

const (
	FreeNone     FreeKind = ""
	FreeItem     FreeKind = "free_item"     // whole line given away, full price shown struck through
	FreeQuantity FreeKind = "free_quantity" // some units free, netted as a line discount
)

// AppliedModifier is one selected modifier option on a cart line.
type AppliedModifier struct {
	GroupName  string  `json:"group_name"`
	OptionName string  `json:"option_name"`
	Price      float64 `json:"price"` // tax-inclusive delta added to the unit price
}

// StockSnapshot captures the variant's stock state at the moment it was added.
type StockSnapshot struct {
	Available  bool    `json:"available"`
	Tracking   bool    `json:"tracking"`
	StockCount float64 `json:"stock_count"`
	LowStock   float64 `json:"low_stock"`
}

// CartItem is one unit-of-sale entry in the cart.
//
// SellingPrice and VAT decompose the tax-inclusive unit price, so
// SellingPrice+VAT equals the gross unit price and Total equals
// (SellingPrice+VAT)*Quantity before any discount.
type CartItem struct {
	LineID    string `json:"line_id"`
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	SKU       string `json:"sku"`

	Name                string `json:"name"`
	NameAlt             string `json:"name_alt,omitempty"` // secondary-language name
	HasMultipleVariants bool   `json:"has_multiple_variants"`
	VariantName         string `json:"variant_name,omitempty"`

	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`

	CostPrice     float64 `json:"cost_price"`
	SellingPrice  float64 `json:"selling_price"` // VAT-exclusive unit price
	VAT           float64 `json:"vat"`           // VAT portion of the unit price
	VATPercentage float64 `json:"vat_percentage"`
	Total         float64 `json:"total"` // gross line total before discount

	Discount           float64 `json:"discount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountedTotal    float64 `json:"discounted_total"`
	PromotionDiscount  float64 `json:"promotion_discount"` // item-specific promotion share
	PromotionID        string  `json:"promotion_id,omitempty"`

	FreeKind     FreeKind `json:"free_kind,omitempty"`
	FreeQuantity float64  `json:"free_quantity,omitempty"`

	Void                 bool    `json:"void"`
	Comp                 bool    `json:"comp"`
	VoidReason           string  `json:"void_reason,omitempty"`
	CompReason           string  `json:"comp_reason,omitempty"`
	AmountBeforeVoidComp float64 `json:"amount_before_void_comp,omitempty"`

	IsOpenPrice bool `json:"is_open_price"`

	Modifiers           []AppliedModifier `json:"modifiers,omitempty"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`

	Stock StockSnapshot `json:"stock"`

	KitchenRefs []string `json:"kitchen_refs,omitempty"`
	SentToKOT   bool     `json:"sent_to_kot"`
}

// IsSpecial reports whether the line must always append as a new cart line
// instead of merging quantities with an existing line of the same SKU.
func (ci *CartItem) IsSpecial() bool {
	return ci.Name == OpenItemName ||
		ci.Unit != UnitPerItem ||
		ci.IsOpenPrice ||
		ci.SentToKOT
}

// UnitGross returns the tax-inclusive unit price.
func (ci *CartItem) UnitGross() float64 {
	return ci.SellingPrice + ci.VAT
}

// DiscountBase returns the amount a cart-wide discount percentage applies to:
// the promotion-discounted total when an item promotion is present, else the
// raw line total. Cart discounts stack after item promotions, not on top of
// the original price.
func (ci *CartItem) DiscountBase() float64 {
	return ci.Total - ci.PromotionDiscount
}

// Charged reports whether the line participates in charge/discount bases.
// Void and comp lines keep their audit amount but contribute nothing.
func (ci *CartItem) Charged() bool {
	return !ci.Void && !ci.Comp
}
