package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/pos-engine/config"
	"github.com/yeremiapane/pos-engine/services"
	"github.com/yeremiapane/pos-engine/utils"
)

type PromotionController struct {
	Promotions *services.PromotionService
}

func NewPromotionController(promos *services.PromotionService) *PromotionController {
	return &PromotionController{Promotions: promos}
}

// GetActivePromotions -> promotions valid today at this location
func (pc *PromotionController) GetActivePromotions(c *gin.Context) {
	promos, err := pc.Promotions.ActivePromotions(config.CurrentLocation().ID, time.Now())
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active promotions", promos)
}
