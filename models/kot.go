package models

import "time"

// KOTItem is what kitchen staff need for one line: no money fields.
type KOTItem struct {
	Name                string            `json:"name"`
	NameAlt             string            `json:"name_alt,omitempty"`
	VariantName         string            `json:"variant_name,omitempty"`
	Quantity            float64           `json:"quantity"`
	Modifiers           []AppliedModifier `json:"modifiers,omitempty"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
	Void                bool              `json:"void"`
}

// KOTDocument is one kitchen station's ticket for an order. An item carrying
// several kitchen refs appears on every matching ticket.
type KOTDocument struct {
	KitchenRef  string    `json:"kitchen_ref"`
	OrderNumber string    `json:"order_number"`
	KOTID       string    `json:"kot_id,omitempty"`
	TokenNumber int       `json:"token_number"`
	OrderType   string    `json:"order_type"`
	Channel     string    `json:"channel"`
	TableLabel  string    `json:"table_label,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Items []KOTItem `json:"items"`

	SpecialInstructions string `json:"special_instructions,omitempty"`
}
