package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/pos-engine/cart"
	"github.com/yeremiapane/pos-engine/config"
	"github.com/yeremiapane/pos-engine/hub"
	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/orders"
	"github.com/yeremiapane/pos-engine/services"
	"github.com/yeremiapane/pos-engine/storage"
	"github.com/yeremiapane/pos-engine/utils"
)

// CheckoutController drives order completion: guard, transform, persist,
// sync, report promotion usage, broadcast, clear.
type CheckoutController struct {
	Store      *cart.Store
	OrderLog   *storage.OrderLog
	Sync       *services.OrderSyncService
	Promotions *services.PromotionService
}

func NewCheckoutController(store *cart.Store, log *storage.OrderLog, sync *services.OrderSyncService, promos *services.PromotionService) *CheckoutController {
	return &CheckoutController{Store: store, OrderLog: log, Sync: sync, Promotions: promos}
}

// Complete -> settle the current cart into order/KOT/receipt documents.
//
// The cart is cleared only after the documents are built and logged locally.
// Backend sync and promotion usage failures are reported in the response but
// never roll the completed order back; the order log's sync worker reconciles
// later.
func (cc *CheckoutController) Complete(c *gin.Context) {
	type ReqBody struct {
		OrderNumber         string                  `json:"order_number" binding:"required"`
		TokenNumber         int                     `json:"token_number"`
		OrderType           string                  `json:"order_type"`
		Channel             string                  `json:"channel"`
		TableLabel          string                  `json:"table_label"`
		KOTSeq              int                     `json:"kot_seq"`
		Customer            models.CustomerSnapshot `json:"customer"`
		Payments            []models.PaymentEntry   `json:"payments" binding:"required"`
		SpecialInstructions string                  `json:"special_instructions"`
		DeviceID            string                  `json:"device_id"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cashier, _ := c.Get("cashier_code")
	cashierCode, _ := cashier.(string)

	items, totals := cc.Store.Distributed(config.DefaultTaxPercentage())
	usage := cc.Store.PromotionUsage()

	sess := orders.Session{
		OrderNumber:         body.OrderNumber,
		TokenNumber:         body.TokenNumber,
		OrderType:           body.OrderType,
		Channel:             body.Channel,
		Cashier:             cashierCode,
		DeviceID:            body.DeviceID,
		CompanyID:           config.CompanyID(),
		LocationID:          config.CurrentLocation().ID,
		TableLabel:          body.TableLabel,
		KOTSeq:              body.KOTSeq,
		Customer:            body.Customer,
		Payments:            body.Payments,
		SpecialInstructions: body.SpecialInstructions,
	}

	order, err := orders.BuildOrderDocument(items, totals, sess)
	if err != nil {
		status := http.StatusBadRequest
		if err == orders.ErrPaymentIncomplete {
			status = http.StatusPaymentRequired
		}
		utils.RespondError(c, status, err)
		return
	}

	kots := orders.BuildKOTDocuments(order)
	receipt := orders.BuildReceiptDocument(order, config.PrintTemplate())

	if cc.OrderLog != nil {
		if _, err := cc.OrderLog.Append(order); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	// Local commit point: printing and cart clear happen regardless of how
	// the backend calls below fare.
	synced := false
	if cc.Sync != nil {
		if err := cc.Sync.Submit(order); err != nil {
			utils.ErrorLogger.Printf("order %s not acknowledged by backend: %v", order.OrderNumber, err)
		} else {
			synced = true
		}
	}
	if cc.Promotions != nil {
		if err := cc.Promotions.ReportUsage(usage); err != nil {
			utils.ErrorLogger.Printf("promotion usage for order %s not reported: %v", order.OrderNumber, err)
		}
	}

	hub.BroadcastOrderCompleted(order)
	for _, kot := range kots {
		hub.BroadcastKOT(kot)
	}

	cc.Store.Clear()

	utils.RespondJSON(c, http.StatusCreated, "Order completed", gin.H{
		"order":   order,
		"kots":    kots,
		"receipt": receipt,
		"synced":  synced,
	})
}
