package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/storage"
	"github.com/yeremiapane/pos-engine/utils"
)

// OrderSyncService submits completed orders to the backend order API. An
// order is only marked settled locally after the backend acknowledges it;
// unacknowledged orders stay in the order log and are retried.
type OrderSyncService struct {
	BaseURL string
	Client  *http.Client
	Log     *storage.OrderLog
}

func NewOrderSyncService(log *storage.OrderLog) *OrderSyncService {
	return &OrderSyncService{
		BaseURL: os.Getenv("ORDER_API_URL"),
		Client:  &http.Client{Timeout: 15 * time.Second},
		Log:     log,
	}
}

// Submit posts the order document and marks it synced on acknowledgement.
func (osvc *OrderSyncService) Submit(doc *models.OrderDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := osvc.Client.Post(osvc.BaseURL+"/orders", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("order API returned status %d", resp.StatusCode)
	}

	if osvc.Log != nil {
		if err := osvc.Log.MarkSynced(doc.OrderNumber); err != nil {
			utils.ErrorLogger.Printf("order %s acknowledged but not marked synced: %v", doc.OrderNumber, err)
		}
	}
	return nil
}

// RetryUnsynced re-submits orders still waiting for acknowledgement.
func (osvc *OrderSyncService) RetryUnsynced() {
	if osvc.Log == nil {
		return
	}
	recs, err := osvc.Log.Unsynced()
	if err != nil {
		utils.ErrorLogger.Printf("order sync: listing unsynced orders failed: %v", err)
		return
	}
	for _, rec := range recs {
		var doc models.OrderDocument
		if err := json.Unmarshal([]byte(rec.Payload), &doc); err != nil {
			utils.ErrorLogger.Printf("order sync: order %s payload unreadable: %v", rec.OrderNumber, err)
			continue
		}
		if err := osvc.Submit(&doc); err != nil {
			utils.ErrorLogger.Printf("order sync: order %s still unsynced: %v", rec.OrderNumber, err)
		}
	}
}
