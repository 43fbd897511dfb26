package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/pos-engine/cart"
	"github.com/yeremiapane/pos-engine/config"
	"github.com/yeremiapane/pos-engine/hub"
	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/router"
	"github.com/yeremiapane/pos-engine/services"
	"github.com/yeremiapane/pos-engine/storage"
	"github.com/yeremiapane/pos-engine/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.AutoMigrate(&models.Snapshot{}, &models.OrderRecord{}, &models.Cashier{}); err != nil {
		utils.ErrorLogger.Fatalf("Auto-migration failed: %v", err)
	}

	snapshots := storage.NewSnapshotStore(db)
	store := cart.NewStore(snapshots)

	// Rehydrate the in-progress cart from the local cache, best effort.
	if err := store.Restore(); err != nil {
		utils.ErrorLogger.Printf("Cart restore failed, starting empty: %v", err)
	}

	// Cart mutations fan out to the websocket clients.
	store.Subscribe(func(ev cart.Event) {
		items, totals := store.Distributed(config.DefaultTaxPercentage())
		hub.BroadcastCartEvent(string(ev), map[string]interface{}{
			"items":  items,
			"totals": totals,
		})
	})

	// Retry locally-logged orders the backend has not acknowledged yet.
	orderLog := storage.NewOrderLog(db)
	syncSvc := services.NewOrderSyncService(orderLog)
	go func() {
		for {
			syncSvc.RetryUnsynced()
			time.Sleep(1 * time.Minute)
		}
	}()

	r := router.SetupRouter(db, store, services.NewCatalogService())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("POS engine listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}
