package client

import "net/url"

// Taxonomy lists the known locations, climates, and soil types
type Taxonomy struct {
	Locations []string `json:"locations"`
	Climates  []string `json:"climates"`
	SoilTypes []string `json:"soilTypes"`
}

// Recommendation is a care recommendation for one plant
type Recommendation struct {
	PlantName         string `json:"plant_name"`
	WateringSchedule  string `json:"watering_schedule"`
	FertilizationPlan string `json:"fertilization_plan"`
	PestControl       string `json:"pest_control"`
}

// ConditionsQuery names a growing environment, optionally narrowed to one
// plant. Empty fields are not sent.
type ConditionsQuery struct {
	Plant    string
	Location string
	Climate  string
	SoilType string
}

func (q ConditionsQuery) encode() string {
	params := url.Values{}
	if q.Plant != "" {
		params.Set("plant", q.Plant)
	}
	if q.Location != "" {
		params.Set("location", q.Location)
	}
	if q.Climate != "" {
		params.Set("climate", q.Climate)
	}
	if q.SoilType != "" {
		params.Set("soil_type", q.SoilType)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// GetTaxonomy retrieves the dropdown values for locations, climates, and
// soil types
func (c *Client) GetTaxonomy() (*Taxonomy, error) {
	resp, err := c.doRequest("GET", "/api/plant-care/locations", nil)
	if err != nil {
		return nil, err
	}

	var taxonomy Taxonomy
	if err := decodeJSON(resp, &taxonomy); err != nil {
		return nil, err
	}

	return &taxonomy, nil
}

// AutoSuggest retrieves plant names suited to the given conditions. The
// server returns an empty list unless all three fields are provided.
func (c *Client) AutoSuggest(query ConditionsQuery) ([]string, error) {
	resp, err := c.doRequest("GET", "/api/plant-care/auto-suggest"+query.encode(), nil)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := decodeJSON(resp, &names); err != nil {
		return nil, err
	}

	return names, nil
}

// GetRecommendations retrieves care recommendations for the given conditions
func (c *Client) GetRecommendations(query ConditionsQuery) ([]Recommendation, error) {
	resp, err := c.doRequest("GET", "/api/plant-care/recommendations"+query.encode(), nil)
	if err != nil {
		return nil, err
	}

	var recs []Recommendation
	if err := decodeJSON(resp, &recs); err != nil {
		return nil, err
	}

	return recs, nil
}
