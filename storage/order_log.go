package storage

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/pos-engine/models"
)

// OrderLog keeps completed orders locally until the backend order API has
// acknowledged them. A sync worker out of this package's scope retries
// unsynced rows.
type OrderLog struct {
	DB *gorm.DB
}

func NewOrderLog(db *gorm.DB) *OrderLog {
	return &OrderLog{DB: db}
}

// Append stores the order document, unsynced.
func (l *OrderLog) Append(doc *models.OrderDocument) (*models.OrderRecord, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	rec := models.OrderRecord{
		OrderNumber: doc.OrderNumber,
		Payload:     string(payload),
		GrandTotal:  doc.Payment.GrandTotal,
		Synced:      false,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := l.DB.Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// MarkSynced flags the order as acknowledged by the backend.
func (l *OrderLog) MarkSynced(orderNumber string) error {
	return l.DB.Model(&models.OrderRecord{}).
		Where("order_number = ?", orderNumber).
		Updates(map[string]interface{}{"synced": true, "updated_at": time.Now()}).Error
}

// Unsynced lists orders still waiting for acknowledgement, oldest first.
func (l *OrderLog) Unsynced() ([]models.OrderRecord, error) {
	var recs []models.OrderRecord
	err := l.DB.Where("synced = ?", false).Order("id asc").Find(&recs).Error
	return recs, err
}
