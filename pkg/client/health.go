package client

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// MoistureLevels are the accepted soil moisture values
var MoistureLevels = []string{"Low", "Medium", "High"}

// NutrientDeficiencies are the accepted nutrient deficiency values
var NutrientDeficiencies = []string{
	"None",
	"Nitrogen Deficiency",
	"Phosphorus Deficiency",
	"Potassium Deficiency",
	"Multiple Deficiencies",
}

// HealthRecord is a recorded health observation
type HealthRecord struct {
	ID                 uint64    `json:"id"`
	TrackingID         string    `json:"tracking_id"`
	MoistureLevel      string    `json:"moisture_level"`
	PestPresence       bool      `json:"pest_presence"`
	NutrientDeficiency string    `json:"nutrient_deficiency"`
	RecordedAt         time.Time `json:"recorded_at"`
}

// HealthRecordRequest contains the fields for a new health observation.
// An empty NutrientDeficiency defaults to "None" on the server.
type HealthRecordRequest struct {
	TrackingID         string
	MoistureLevel      string
	PestPresence       bool
	NutrientDeficiency string
}

// Validate checks the request without touching the network
func (r *HealthRecordRequest) Validate() error {
	if r.TrackingID == "" {
		return &Error{Kind: KindValidation, Message: "tracking id is required"}
	}
	if r.MoistureLevel == "" {
		return &Error{Kind: KindValidation, Message: "moisture level is required"}
	}
	if !contains(MoistureLevels, r.MoistureLevel) {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("invalid moisture level: %s", r.MoistureLevel)}
	}
	if r.NutrientDeficiency != "" && !contains(NutrientDeficiencies, r.NutrientDeficiency) {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("invalid nutrient deficiency: %s", r.NutrientDeficiency)}
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// AddHealthRecord records a health observation for a tracked plant
func (c *Client) AddHealthRecord(req HealthRecordRequest) (*HealthRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"tracking_id":    req.TrackingID,
		"moisture_level": req.MoistureLevel,
		"pest_presence":  req.PestPresence,
	}
	if req.NutrientDeficiency != "" {
		body["nutrient_deficiency"] = req.NutrientDeficiency
	}

	resp, err := c.doRequest("POST", "/api/health-monitoring/add", body)
	if err != nil {
		return nil, err
	}

	var record HealthRecord
	if err := decodeJSON(resp, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// ListHealthRecords retrieves health observations for a tracked plant,
// newest first
func (c *Client) ListHealthRecords(trackingID string) ([]HealthRecord, error) {
	if err := validateTrackingID(trackingID); err != nil {
		return nil, err
	}

	resp, err := c.doRequest("GET", "/api/health-monitoring/"+url.PathEscape(trackingID), nil)
	if err != nil {
		return nil, err
	}

	var records []HealthRecord
	if err := decodeJSON(resp, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// RemoveHealthRecord deletes a single health observation
func (c *Client) RemoveHealthRecord(id uint64) error {
	resp, err := c.doRequest("DELETE", "/api/health-monitoring/remove/"+strconv.FormatUint(id, 10), nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
