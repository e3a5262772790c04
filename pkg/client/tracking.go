package client

import (
	"net/url"
	"time"
)

// TrackedPlant is a tracking instance as returned on creation
type TrackedPlant struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlantID   uint64    `json:"plant_id"`
	Nickname  string    `json:"nickname,omitempty"`
	DateAdded time.Time `json:"date_added"`
}

// TrackedPlantInfo is a tracking instance joined with its catalog name
type TrackedPlantInfo struct {
	ID        string    `json:"id"`
	PlantID   uint64    `json:"plant_id"`
	PlantName string    `json:"plant_name"`
	Nickname  string    `json:"nickname,omitempty"`
	DateAdded time.Time `json:"date_added"`
}

// TrackedOption is an id/display-name pair for log entry forms
type TrackedOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TrackPlant starts tracking a catalog plant. A duplicate returns a
// conflict-kind error and leaves the existing instance untouched.
func (c *Client) TrackPlant(plantID uint64, nickname string) (*TrackedPlant, error) {
	body := map[string]interface{}{
		"plant_id": plantID,
	}
	if nickname != "" {
		body["nickname"] = nickname
	}

	resp, err := c.doRequest("POST", "/api/plant-tracking/add", body)
	if err != nil {
		return nil, err
	}

	var instance TrackedPlant
	if err := decodeJSON(resp, &instance); err != nil {
		return nil, err
	}

	return &instance, nil
}

// UntrackPlant removes a tracking instance together with its growth logs
// and health records.
func (c *Client) UntrackPlant(trackingID string) error {
	resp, err := c.doRequest("DELETE", "/api/plant-tracking/remove/"+url.PathEscape(trackingID), nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// ListTracked retrieves the caller's tracking instances
func (c *Client) ListTracked() ([]TrackedPlantInfo, error) {
	resp, err := c.doRequest("GET", "/api/plant-tracking", nil)
	if err != nil {
		return nil, err
	}

	var rows []TrackedPlantInfo
	if err := decodeJSON(resp, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// ListTrackedOptions retrieves tracked plants as id/name pairs for forms
func (c *Client) ListTrackedOptions() ([]TrackedOption, error) {
	resp, err := c.doRequest("GET", "/api/growth-logs/tracked", nil)
	if err != nil {
		return nil, err
	}

	var options []TrackedOption
	if err := decodeJSON(resp, &options); err != nil {
		return nil, err
	}

	return options, nil
}

// validateTrackingID rejects an empty id before any request is made
func validateTrackingID(trackingID string) error {
	if trackingID == "" {
		return &Error{Kind: KindValidation, Message: "tracking id is required"}
	}
	return nil
}
