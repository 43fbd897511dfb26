package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/utils"
)

// PromotionService talks to the remote promotion catalog: it fetches active
// promotions for a location and reports consumed amounts back after order
// completion.
type PromotionService struct {
	BaseURL string
	Client  *http.Client
}

func NewPromotionService() *PromotionService {
	return &PromotionService{
		BaseURL: os.Getenv("PROMOTION_API_URL"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ActivePromotions lists promotions active at the location for the given day.
func (ps *PromotionService) ActivePromotions(locationID string, date time.Time) ([]models.Promotion, error) {
	url := fmt.Sprintf("%s/promotions?location_id=%s&date=%s",
		ps.BaseURL, locationID, date.Format("2006-01-02"))

	resp, err := ps.Client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("promotion service returned status %d", resp.StatusCode)
	}

	var body struct {
		Data []models.Promotion `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

// ReportUsage posts consumed amounts keyed by promotion ID. Called after the
// order settles; a failure here is logged and surfaced but never rolls back
// the completed order.
func (ps *PromotionService) ReportUsage(usage map[string]float64) error {
	if len(usage) == 0 {
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{"usage": usage})
	if err != nil {
		return err
	}

	resp, err := ps.Client.Post(ps.BaseURL+"/promotions/usage", "application/json", bytes.NewReader(payload))
	if err != nil {
		utils.ErrorLogger.Printf("promotion usage report failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err := fmt.Errorf("promotion usage report returned status %d", resp.StatusCode)
		utils.ErrorLogger.Printf("%v", err)
		return err
	}
	return nil
}
