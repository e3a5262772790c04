package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GrowthStages are the accepted growth stage values
var GrowthStages = []string{"Seedling", "Vegetative", "Budding", "Flowering", "Fruiting", "Mature"}

// GrowthLog is a recorded growth observation
type GrowthLog struct {
	ID              uint64    `json:"id"`
	TrackingID      string    `json:"tracking_id"`
	HeightCm        float64   `json:"height_cm"`
	GrowthStage     string    `json:"growth_stage"`
	ObservationDate time.Time `json:"observation_date"`
	ImageURL        string    `json:"image_url,omitempty"`
	LoggedAt        time.Time `json:"logged_at"`
}

// GrowthLogRequest contains the fields for a new growth observation.
// ImagePath optionally names a local file to attach.
type GrowthLogRequest struct {
	TrackingID      string
	HeightCm        float64
	GrowthStage     string
	ObservationDate string // YYYY-MM-DD
	ImagePath       string
}

// Validate checks the request without touching the network, so a rejected
// form never produces a partial submission.
func (r *GrowthLogRequest) Validate() error {
	if r.TrackingID == "" {
		return &Error{Kind: KindValidation, Message: "tracking id is required"}
	}
	if r.HeightCm < 0 {
		return &Error{Kind: KindValidation, Message: "height must be zero or greater"}
	}
	if r.GrowthStage == "" {
		return &Error{Kind: KindValidation, Message: "growth stage is required"}
	}
	valid := false
	for _, stage := range GrowthStages {
		if r.GrowthStage == stage {
			valid = true
			break
		}
	}
	if !valid {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("invalid growth stage: %s", r.GrowthStage)}
	}
	if r.ObservationDate == "" {
		return &Error{Kind: KindValidation, Message: "observation date is required"}
	}
	if _, err := time.Parse("2006-01-02", r.ObservationDate); err != nil {
		return &Error{Kind: KindValidation, Message: "observation date must be YYYY-MM-DD"}
	}
	return nil
}

// AddGrowthLog records a growth observation for a tracked plant
func (c *Client) AddGrowthLog(req GrowthLogRequest) (*GrowthLog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	_ = writer.WriteField("tracking_id", req.TrackingID)
	_ = writer.WriteField("height_cm", strconv.FormatFloat(req.HeightCm, 'f', -1, 64))
	_ = writer.WriteField("growth_stage", req.GrowthStage)
	_ = writer.WriteField("observation_date", req.ObservationDate)

	if req.ImagePath != "" {
		file, err := os.Open(req.ImagePath)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("cannot open image: %v", err)}
		}
		part, err := writer.CreateFormFile("image", filepath.Base(req.ImagePath))
		if err == nil {
			_, err = io.Copy(part, file)
		}
		file.Close()
		if err != nil {
			return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("cannot attach image: %v", err)}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/api/growth-logs/add", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.send(httpReq)
	if err != nil {
		return nil, err
	}

	var entry GrowthLog
	if err := decodeJSON(resp, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListGrowthLogs retrieves growth observations for a tracked plant,
// newest first
func (c *Client) ListGrowthLogs(trackingID string) ([]GrowthLog, error) {
	if err := validateTrackingID(trackingID); err != nil {
		return nil, err
	}

	resp, err := c.doRequest("GET", "/api/growth-logs/"+url.PathEscape(trackingID), nil)
	if err != nil {
		return nil, err
	}

	var logs []GrowthLog
	if err := decodeJSON(resp, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}

// RemoveGrowthLog deletes a single growth observation
func (c *Client) RemoveGrowthLog(id uint64) error {
	resp, err := c.doRequest("DELETE", "/api/growth-logs/remove/"+strconv.FormatUint(id, 10), nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
