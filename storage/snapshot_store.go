// Package storage is the local best-effort persistence: a key-value snapshot
// cache the cart writes after every mutation, and the order log completed
// orders wait in until the backend acknowledges them.
package storage

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/utils"
)

// SnapshotStore persists cart snapshots in a gorm key-value table. Write
// errors are logged and swallowed: the cache is not a transaction log and a
// failed write must never fail the mutation that triggered it.
type SnapshotStore struct {
	DB *gorm.DB
}

func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{DB: db}
}

func (st *SnapshotStore) set(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		utils.ErrorLogger.Printf("snapshot %s: marshal failed: %v", key, err)
		return err
	}
	snap := models.Snapshot{Key: key, Value: string(data), UpdatedAt: time.Now()}
	if err := st.DB.Save(&snap).Error; err != nil {
		utils.ErrorLogger.Printf("snapshot %s: write failed: %v", key, err)
		return err
	}
	return nil
}

func (st *SnapshotStore) get(key string, out interface{}) error {
	var snap models.Snapshot
	if err := st.DB.First(&snap, "`key` = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // missing key loads as the zero collection
		}
		return err
	}
	if snap.Value == "" || snap.Value == "null" {
		return nil
	}
	return json.Unmarshal([]byte(snap.Value), out)
}

func (st *SnapshotStore) SaveItems(items []models.CartItem) error {
	return st.set(models.SnapshotCartItems, items)
}

func (st *SnapshotStore) SaveDiscounts(discounts []models.Discount) error {
	return st.set(models.SnapshotDiscounts, discounts)
}

func (st *SnapshotStore) SavePromotions(promotions []models.Promotion) error {
	return st.set(models.SnapshotPromotions, promotions)
}

func (st *SnapshotStore) SaveCharges(charges []models.CustomCharge) error {
	return st.set(models.SnapshotCharges, charges)
}

// SaveTotalDiscount mirrors the aggregate discount for quick rehydration of
// summary widgets.
func (st *SnapshotStore) SaveTotalDiscount(total float64) error {
	return st.set(models.SnapshotTotalDiscount, total)
}

func (st *SnapshotStore) LoadItems() ([]models.CartItem, error) {
	var items []models.CartItem
	err := st.get(models.SnapshotCartItems, &items)
	return items, err
}

func (st *SnapshotStore) LoadDiscounts() ([]models.Discount, error) {
	var discounts []models.Discount
	err := st.get(models.SnapshotDiscounts, &discounts)
	return discounts, err
}

func (st *SnapshotStore) LoadPromotions() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := st.get(models.SnapshotPromotions, &promotions)
	return promotions, err
}

func (st *SnapshotStore) LoadCharges() ([]models.CustomCharge, error) {
	var charges []models.CustomCharge
	err := st.get(models.SnapshotCharges, &charges)
	return charges, err
}
