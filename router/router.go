package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-engine/cart"
	"github.com/yeremiapane/pos-engine/catalog"
	"github.com/yeremiapane/pos-engine/controllers"
	"github.com/yeremiapane/pos-engine/middlewares"
	"github.com/yeremiapane/pos-engine/services"
	"github.com/yeremiapane/pos-engine/storage"
)

// SetupRouter wires the engine's HTTP surface. The cart store and catalog
// lookup are injected so tests can run isolated instances.
func SetupRouter(db *gorm.DB, store *cart.Store, lookup catalog.Lookup) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())

	orderLog := storage.NewOrderLog(db)
	promoSvc := services.NewPromotionService()
	syncSvc := services.NewOrderSyncService(orderLog)

	authCtrl := controllers.NewAuthController(db)
	cartCtrl := controllers.NewCartController(store, lookup)
	adjCtrl := controllers.NewAdjustmentController(store)
	checkoutCtrl := controllers.NewCheckoutController(store, orderLog, syncSvc, promoSvc)
	promoCtrl := controllers.NewPromotionController(promoSvc)

	r.POST("/auth/login", authCtrl.Login)
	r.GET("/ws", controllers.WSHandler)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/auth/register", middlewares.RequireSupervisor(), authCtrl.Register)

		api.GET("/cart", cartCtrl.GetCart)
		api.GET("/cart/totals", adjCtrl.GetTotals)
		api.POST("/cart/items", cartCtrl.AddItem)
		api.POST("/cart/items/open", cartCtrl.AddOpenItem)
		api.PUT("/cart/items/:line_id", cartCtrl.UpdateItem)
		api.DELETE("/cart/items/:line_id", cartCtrl.RemoveItem)
		api.POST("/cart/items/bulk-remove", cartCtrl.BulkRemoveItems)
		api.DELETE("/cart", cartCtrl.ClearCart)

		api.POST("/cart/items/:line_id/void", middlewares.RequireSupervisor(), cartCtrl.VoidItem)
		api.POST("/cart/items/:line_id/comp", middlewares.RequireSupervisor(), cartCtrl.CompItem)

		api.POST("/cart/discounts", middlewares.RequireSupervisor(), adjCtrl.ApplyDiscount)
		api.DELETE("/cart/discounts/:discount_id", middlewares.RequireSupervisor(), adjCtrl.RemoveDiscount)

		api.POST("/cart/promotions", adjCtrl.ApplyPromotion)
		api.DELETE("/cart/promotions/:promotion_id", adjCtrl.RemovePromotion)

		api.POST("/cart/charges", adjCtrl.ApplyCharge)
		api.DELETE("/cart/charges/:charge_id", adjCtrl.RemoveCharge)
		api.PUT("/cart/charges", adjCtrl.ReplaceAllCharges)

		api.GET("/promotions/active", promoCtrl.GetActivePromotions)

		api.POST("/checkout", checkoutCtrl.Complete)
	}

	return r
}
