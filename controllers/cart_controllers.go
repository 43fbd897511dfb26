package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeremiapane/pos-engine/cart"
	"github.com/yeremiapane/pos-engine/catalog"
	"github.com/yeremiapane/pos-engine/config"
	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/pricing"
	"github.com/yeremiapane/pos-engine/utils"
)

type CartController struct {
	Store   *cart.Store
	Catalog catalog.Lookup
}

func NewCartController(store *cart.Store, lookup catalog.Lookup) *CartController {
	return &CartController{Store: store, Catalog: lookup}
}

type cartView struct {
	Items  []models.CartItem `json:"items"`
	Totals pricing.Totals    `json:"totals"`
}

func (cc *CartController) view() cartView {
	items, totals := cc.Store.Distributed(config.DefaultTaxPercentage())
	return cartView{Items: items, Totals: totals}
}

// GetCart -> current lines with distributed discounts plus totals
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart state", cc.view())
}

// AddItem -> resolve a catalog selection and add it through the merge policy
func (cc *CartController) AddItem(c *gin.Context) {
	type ReqBody struct {
		ProductID string                   `json:"product_id"`
		SKU       string                   `json:"sku"`
		VariantID string                   `json:"variant_id"`
		Quantity  float64                  `json:"quantity"`
		Tier      string                   `json:"tier"`
		Modifiers []models.AppliedModifier `json:"modifiers"`
		OpenPrice *float64                 `json:"open_price"`
		Notes     string                   `json:"notes"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	loc := config.CurrentLocation()

	var product *models.Product
	var variantID string
	var err error
	if body.SKU != "" {
		var variant *models.Variant
		product, variant, err = cc.Catalog.VariantBySKU(body.SKU)
		if err == nil {
			variantID = variant.ID
		}
	} else {
		product, err = cc.Catalog.ProductByID(body.ProductID)
		variantID = body.VariantID
	}
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	tier := body.Tier
	if tier == "" {
		tier = loc.DefaultTier
	}

	item, err := catalog.BuildCartItem(catalog.Selection{
		Product:   product,
		VariantID: variantID,
		Quantity:  body.Quantity,
		Tier:      tier,
		Modifiers: body.Modifiers,
		OpenPrice: body.OpenPrice,
		Location:  loc,
		Notes:     body.Notes,
	})
	if err != nil {
		status := http.StatusBadRequest
		if err == catalog.ErrNotBillable {
			status = http.StatusConflict
		}
		utils.RespondError(c, status, err)
		return
	}

	lineID, merged := cc.Store.AddOrMergeItem(item)
	msg := "Item added"
	if merged {
		msg = "Item merged"
	}
	utils.RespondJSON(c, http.StatusCreated, msg, gin.H{
		"line_id": lineID,
		"merged":  merged,
		"cart":    cc.view(),
	})
}

// AddOpenItem -> custom price entry, always a new line
func (cc *CartController) AddOpenItem(c *gin.Context) {
	type ReqBody struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price" binding:"required"`
		Quantity float64 `json:"quantity"`
		TaxPct   float64 `json:"tax_percentage"`
		Notes    string  `json:"notes"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	name := body.Name
	if name == "" {
		name = models.OpenItemName
	}
	qty := body.Quantity
	if qty <= 0 {
		qty = 1
	}

	item := models.CartItem{
		LineID:              uuid.NewString(),
		Name:                name,
		Unit:                models.UnitPerItem,
		Quantity:            qty,
		SellingPrice:        pricing.SellingPriceExclTax(body.Price, body.TaxPct),
		VAT:                 pricing.VATAmount(body.Price, body.TaxPct),
		VATPercentage:       body.TaxPct,
		Total:               pricing.Round2(body.Price * qty),
		IsOpenPrice:         true,
		SpecialInstructions: body.Notes,
	}
	cc.Store.AddItem(item)

	utils.RespondJSON(c, http.StatusCreated, "Open item added", gin.H{
		"line_id": item.LineID,
		"cart":    cc.view(),
	})
}

// UpdateItem -> wholesale replace of one line
func (cc *CartController) UpdateItem(c *gin.Context) {
	lineID := c.Param("line_id")

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !cc.Store.UpdateItem(lineID, item) {
		utils.RespondError(c, http.StatusNotFound, ErrLineNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item updated", cc.view())
}

// RemoveItem -> remove one line by ID
func (cc *CartController) RemoveItem(c *gin.Context) {
	lineID := c.Param("line_id")
	if !cc.Store.RemoveItem(lineID) {
		utils.RespondError(c, http.StatusNotFound, ErrLineNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed", cc.view())
}

// BulkRemoveItems -> remove several lines by index in one mutation
func (cc *CartController) BulkRemoveItems(c *gin.Context) {
	type ReqBody struct {
		Indexes []int `json:"indexes" binding:"required"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	removed := cc.Store.BulkRemoveItems(body.Indexes)
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("%d items removed", removed), cc.view())
}

// VoidItem -> supervisor marks a line void, original amount kept for audit
func (cc *CartController) VoidItem(c *gin.Context) {
	cc.markLine(c, true)
}

// CompItem -> supervisor comps a line
func (cc *CartController) CompItem(c *gin.Context) {
	cc.markLine(c, false)
}

func (cc *CartController) markLine(c *gin.Context, void bool) {
	lineID := c.Param("line_id")

	type ReqBody struct {
		Reason string `json:"reason"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var ok bool
	if void {
		ok = cc.Store.MarkVoid(lineID, body.Reason)
	} else {
		ok = cc.Store.MarkComp(lineID, body.Reason)
	}
	if !ok {
		utils.RespondError(c, http.StatusNotFound, ErrLineNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item marked", cc.view())
}

// ClearCart -> empty all collections; safe on an already-empty cart
func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Store.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.view())
}
