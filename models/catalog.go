package models

// PriceTier is one tax-inclusive gross price for a variant (e.g. dine-in vs
// takeaway tiers).
type PriceTier struct {
	Tier  string  `json:"tier"`
	Price float64 `json:"price"` // tax-inclusive
}

// Stock is the availability state of a variant at a location.
type Stock struct {
	LocationID string  `json:"location_id"`
	Available  bool    `json:"available"`
	Tracking   bool    `json:"tracking"`
	StockCount float64 `json:"stock_count"`
	LowStock   float64 `json:"low_stock"`
}

// ModifierValue is one selectable option in a modifier group.
type ModifierValue struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"` // tax-inclusive delta
	Status string  `json:"status"`
}

// ModifierGroup bounds how many options may be picked.
type ModifierGroup struct {
	Name   string          `json:"name"`
	Min    int             `json:"min"`
	Max    int             `json:"max"`
	Status string          `json:"status"`
	Values []ModifierValue `json:"values"`
}

const ModifierActive = "active"

// Variant is a sellable SKU of a product.
type Variant struct {
	ID        string      `json:"id"`
	SKU       string      `json:"sku"`
	Name      string      `json:"name"`
	Prices    []PriceTier `json:"prices"`
	CostPrice float64     `json:"cost_price"`
	Stocks    []Stock     `json:"stocks"`
}

// Tax carried by a product.
type Tax struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Product is a catalog entry with one or more variants.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	NameAlt     string          `json:"name_alt,omitempty"`
	Unit        string          `json:"unit"`
	Tax         Tax             `json:"tax"`
	Variants    []Variant       `json:"variants"`
	Modifiers   []ModifierGroup `json:"modifiers,omitempty"`
	KitchenRefs []string        `json:"kitchen_refs,omitempty"`
	OpenPrice   bool            `json:"open_price"`
}

// HasMultipleVariants reports whether the product carries more than one SKU.
func (p *Product) HasMultipleVariants() bool {
	return len(p.Variants) > 1
}

// Location holds the location-level settings the engine reads.
type Location struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	NegativeBilling bool   `json:"negative_billing"`
	DefaultTier     string `json:"default_tier"`
}
