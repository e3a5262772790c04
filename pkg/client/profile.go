package client

// Profile is the caller's stored gardening environment
type Profile struct {
	UserID   string `json:"user_id"`
	Location string `json:"location"`
	Climate  string `json:"climate"`
	SoilType string `json:"soil_type"`
}

// GetProfile retrieves the caller's profile. A user who has never saved one
// gets an empty profile, not an error.
func (c *Client) GetProfile() (*Profile, error) {
	resp, err := c.doRequest("GET", "/api/users/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile stores the caller's gardening environment
func (c *Client) UpdateProfile(location, climate, soilType string) (*Profile, error) {
	body := map[string]string{
		"location":  location,
		"climate":   climate,
		"soil_type": soilType,
	}

	resp, err := c.doRequest("PUT", "/api/users/profile", body)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
