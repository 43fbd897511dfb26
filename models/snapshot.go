package models

import "time"

// Snapshot keys written by the cart store after every mutation.
const (
	SnapshotCartItems     = "cartItems"
	SnapshotDiscounts     = "discountsApplied"
	SnapshotPromotions    = "promotionsApplied"
	SnapshotCharges       = "chargesApplied"
	SnapshotTotalDiscount = "totalDiscount"
)

// Snapshot is one key-value row of the local best-effort cache. Values are
// JSON-encoded; the table is a cache, not a transaction log.
type Snapshot struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// OrderRecord is a completed order kept locally until the backend order API
// acknowledges it. Payload holds the full OrderDocument as JSON.
type OrderRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	Payload     string    `gorm:"type:text;not null" json:"payload"`
	GrandTotal  float64   `gorm:"type:decimal(12,2);not null" json:"grand_total"`
	Synced      bool      `gorm:"not null;default:false" json:"synced"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
