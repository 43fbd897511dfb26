package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeremiapane/pos-engine/cart"
	"github.com/yeremiapane/pos-engine/config"
	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/utils"
)

// AdjustmentController manages the cart's discounts, promotions and custom
// charges.
type AdjustmentController struct {
	Store *cart.Store
}

func NewAdjustmentController(store *cart.Store) *AdjustmentController {
	return &AdjustmentController{Store: store}
}

func (ac *AdjustmentController) view() gin.H {
	items, totals := ac.Store.Distributed(config.DefaultTaxPercentage())
	return gin.H{"items": items, "totals": totals}
}

// ApplyDiscount -> supervisor applies a cart or item discount
func (ac *AdjustmentController) ApplyDiscount(c *gin.Context) {
	var d models.Discount
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if d.Value <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("discount value must be positive"))
		return
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.ValueType == "" {
		d.ValueType = models.ValuePercentage
	}
	ac.Store.ApplyDiscount(d)
	utils.RespondJSON(c, http.StatusCreated, "Discount applied", ac.view())
}

// RemoveDiscount -> drop a discount by ID
func (ac *AdjustmentController) RemoveDiscount(c *gin.Context) {
	if !ac.Store.RemoveDiscount(c.Param("discount_id")) {
		utils.RespondError(c, http.StatusNotFound, errors.New("discount not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Discount removed", ac.view())
}

// ApplyPromotion -> attach a validated promotion from the remote catalog
func (ac *AdjustmentController) ApplyPromotion(c *gin.Context) {
	var p models.Promotion
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if p.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("promotion id is required"))
		return
	}
	ac.Store.ApplyPromotion(p)
	utils.RespondJSON(c, http.StatusCreated, "Promotion applied", ac.view())
}

// RemovePromotion -> drop a promotion and its per-line shares
func (ac *AdjustmentController) RemovePromotion(c *gin.Context) {
	if !ac.Store.RemovePromotion(c.Param("promotion_id")) {
		utils.RespondError(c, http.StatusNotFound, errors.New("promotion not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Promotion removed", ac.view())
}

// ApplyCharge -> add a custom charge (service charge, delivery fee)
func (ac *AdjustmentController) ApplyCharge(c *gin.Context) {
	var ch models.CustomCharge
	if err := c.ShouldBindJSON(&ch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if ch.ID == "" {
		ch.ID = uuid.NewString()
	}
	if ch.ValueType == "" {
		ch.ValueType = models.ValueFixed
	}
	ac.Store.ApplyCharge(ch)
	utils.RespondJSON(c, http.StatusCreated, "Charge applied", ac.view())
}

// RemoveCharge -> drop one charge
func (ac *AdjustmentController) RemoveCharge(c *gin.Context) {
	if !ac.Store.RemoveCharge(c.Param("charge_id")) {
		utils.RespondError(c, http.StatusNotFound, ErrChargeNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Charge removed", ac.view())
}

// ReplaceAllCharges -> swap the whole charge set
func (ac *AdjustmentController) ReplaceAllCharges(c *gin.Context) {
	var charges []models.CustomCharge
	if err := c.ShouldBindJSON(&charges); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	for i := range charges {
		if charges[i].ID == "" {
			charges[i].ID = uuid.NewString()
		}
	}
	ac.Store.ReplaceAllCharges(charges)
	utils.RespondJSON(c, http.StatusOK, "Charges replaced", ac.view())
}

// GetTotals -> aggregate view only, for summary widgets
func (ac *AdjustmentController) GetTotals(c *gin.Context) {
	_, totals := ac.Store.Distributed(config.DefaultTaxPercentage())
	utils.RespondJSON(c, http.StatusOK, "Cart totals", totals)
}
