package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-engine/cart"
	"github.com/yeremiapane/pos-engine/controllers"
	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/storage"
	"github.com/yeremiapane/pos-engine/utils"
)

func setupCheckoutDB(t *testing.T, name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.OrderRecord{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func setupCheckoutRouter(store *cart.Store, log *storage.OrderLog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Set("cashier_code", "C-01")
		c.Next()
	})
	checkoutCtrl := controllers.NewCheckoutController(store, log, nil, nil)
	router.POST("/checkout", checkoutCtrl.Complete)
	return router
}

func TestCheckoutEmptyCart(t *testing.T) {
	utils.InitLogger()
	t.Setenv("DEFAULT_TAX_PERCENTAGE", "15")
	router := setupCheckoutRouter(cart.NewStore(nil), nil)

	w := doJSON(router, "POST", "/checkout", map[string]interface{}{
		"order_number": "ORD-1",
		"payments":     []map[string]interface{}{{"method": "cash", "tendered": 100}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutPaymentIncomplete(t *testing.T) {
	utils.InitLogger()
	t.Setenv("DEFAULT_TAX_PERCENTAGE", "15")
	store := seededStore() // one line, gross 115
	router := setupCheckoutRouter(store, nil)

	w := doJSON(router, "POST", "/checkout", map[string]interface{}{
		"order_number": "ORD-2",
		"payments":     []map[string]interface{}{{"method": "cash", "tendered": 100}},
	})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	// Guard failures leave the cart intact.
	assert.Equal(t, 1, store.Len())
}

func TestCheckoutCompletesAndClears(t *testing.T) {
	utils.InitLogger()
	t.Setenv("DEFAULT_TAX_PERCENTAGE", "15")
	store := seededStore()
	store.ApplyDiscount(models.Discount{ID: "d1", Value: 10, ValueType: models.ValuePercentage})
	log := storage.NewOrderLog(setupCheckoutDB(t, "checkout_ok"))
	router := setupCheckoutRouter(store, log)

	w := doJSON(router, "POST", "/checkout", map[string]interface{}{
		"order_number": "ORD-3",
		"token_number": 9,
		"order_type":   "dine-in",
		"table_label":  "T2",
		"kot_seq":      4,
		"payments":     []map[string]interface{}{{"method": "cash", "tendered": 110}},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})

	order := data["order"].(map[string]interface{})
	payment := order["payment"].(map[string]interface{})
	assert.Equal(t, 103.50, payment["grand_total"])
	assert.Equal(t, 6.50, payment["change"])
	assert.Equal(t, "C-01", order["cashier"])

	items := order["items"].([]interface{})
	first := items[0].(map[string]interface{})
	assert.Equal(t, "T2-4", first["kot_id"])

	// Sync is nil here, so the order stays queued for the retry worker.
	assert.Equal(t, false, data["synced"])
	pending, err := log.Unsynced()
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "ORD-3", pending[0].OrderNumber)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Discounts())
}

func TestCheckoutRequiresOrderNumberAndPayments(t *testing.T) {
	utils.InitLogger()
	router := setupCheckoutRouter(seededStore(), nil)

	w := doJSON(router, "POST", "/checkout", map[string]interface{}{
		"payments": []map[string]interface{}{{"method": "cash", "tendered": 200}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, "POST", "/checkout", map[string]interface{}{
		"order_number": "ORD-4",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
