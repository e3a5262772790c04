package client

import "net/url"

// Plant is a catalog entry
type Plant struct {
	ID                uint64 `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	SoilType          string `json:"soil_type"`
	Climate           string `json:"climate"`
	WateringSchedule  string `json:"watering_schedule"`
	FertilizationPlan string `json:"fertilization_plan"`
	PestControl       string `json:"pest_control"`
	CareInstructions  string `json:"care_instructions"`
	ImageURL          string `json:"image_url,omitempty"`
}

// SearchQuery contains catalog search constraints. Empty fields are not sent.
type SearchQuery struct {
	Name     string
	Location string
	Climate  string
	SoilType string
}

// ListPlants retrieves the full plant catalog
func (c *Client) ListPlants() ([]Plant, error) {
	resp, err := c.doRequest("GET", "/api/plants", nil)
	if err != nil {
		return nil, err
	}

	var plants []Plant
	if err := decodeJSON(resp, &plants); err != nil {
		return nil, err
	}

	return plants, nil
}

// SearchPlants searches the catalog. An empty result is a successful
// response, not an error.
func (c *Client) SearchPlants(query SearchQuery) ([]Plant, error) {
	params := url.Values{}
	if query.Name != "" {
		params.Set("name", query.Name)
	}
	if query.Location != "" {
		params.Set("location", query.Location)
	}
	if query.Climate != "" {
		params.Set("climate", query.Climate)
	}
	if query.SoilType != "" {
		params.Set("soil_type", query.SoilType)
	}

	path := "/api/plants/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest("GET", path, nil)
	if err != nil {
		return nil, err
	}

	var plants []Plant
	if err := decodeJSON(resp, &plants); err != nil {
		return nil, err
	}

	return plants, nil
}
