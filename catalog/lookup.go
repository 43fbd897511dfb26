package catalog

import "github.com/yeremiapane/pos-engine/models"

// Lookup is the catalog collaborator: products resolved by ID or by scanned
// SKU. Implementations live outside the engine (backend catalog cache).
type Lookup interface {
	ProductByID(id string) (*models.Product, error)
	VariantBySKU(sku string) (*models.Product, *models.Variant, error)
}
