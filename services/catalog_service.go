package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/yeremiapane/pos-engine/models"
)

// CatalogService resolves products against the backend catalog. It satisfies
// catalog.Lookup.
type CatalogService struct {
	BaseURL string
	Client  *http.Client
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		BaseURL: os.Getenv("CATALOG_API_URL"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (cs *CatalogService) fetchProduct(path string) (*models.Product, error) {
	resp, err := cs.Client.Get(cs.BaseURL + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("product not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var body struct {
		Data models.Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// ProductByID fetches one product with variants, prices, stocks, modifiers.
func (cs *CatalogService) ProductByID(id string) (*models.Product, error) {
	return cs.fetchProduct("/products/" + url.PathEscape(id))
}

// VariantBySKU resolves a scanned barcode to its product and variant.
func (cs *CatalogService) VariantBySKU(sku string) (*models.Product, *models.Variant, error) {
	p, err := cs.fetchProduct("/products/sku/" + url.PathEscape(sku))
	if err != nil {
		return nil, nil, err
	}
	for i := range p.Variants {
		if p.Variants[i].SKU == sku {
			return p, &p.Variants[i], nil
		}
	}
	return nil, nil, fmt.Errorf("variant with sku %s not found", sku)
}
