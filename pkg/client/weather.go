package client

import "net/url"

// Weather is the current conditions snapshot for a location
type Weather struct {
	Temp      float64 `json:"temp"`
	Humidity  float64 `json:"humidity"`
	Condition string  `json:"condition"`
	WindSpeed float64 `json:"wind_speed,omitempty"`
}

// GetWeather retrieves current conditions for a location. An unknown
// location is a not-found error; provider outages surface as transport.
func (c *Client) GetWeather(location string) (*Weather, error) {
	if location == "" {
		return nil, &Error{Kind: KindValidation, Message: "location is required"}
	}

	params := url.Values{}
	params.Set("location", location)

	resp, err := c.doRequest("GET", "/api/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var weather Weather
	if err := decodeJSON(resp, &weather); err != nil {
		return nil, err
	}

	return &weather, nil
}
