// Package weather wraps the upstream current-weather provider consumed by
// the /api/weather proxy. The provider is a degradable dependency: a missing
// location or an outage must never block recommendation display.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/greenloop/plantcare/internal/types"
)

// Snapshot is the current weather for one location. It is transient: fetched
// per location change and never cached across locations.
type Snapshot struct {
	Temp      float64 `json:"temp"`
	Humidity  float64 `json:"humidity"`
	Condition string  `json:"condition"`
	WindSpeed float64 `json:"wind_speed,omitempty"`
}

// Provider fetches weather from an OpenWeather-compatible endpoint.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ProviderOption is a function that configures a Provider
type ProviderOption func(*Provider)

// NewProvider creates a weather provider for the given endpoint.
func NewProvider(baseURL, apiKey string, opts ...ProviderOption) *Provider {
	p := &Provider{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithTimeout sets a custom timeout for the HTTP client
func WithTimeout(timeout time.Duration) ProviderOption {
	return func(p *Provider) {
		p.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ProviderOption {
	return func(p *Provider) {
		p.httpClient = httpClient
	}
}

// upstreamResponse matches the OpenWeather current-weather payload shape.
type upstreamResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Fetch returns the current weather for location. A location unknown to the
// provider maps to the not_found kind; any other failure is transport.
func (p *Provider) Fetch(ctx context.Context, location string) (*Snapshot, error) {
	if location == "" {
		return nil, types.NewValidation("location is required")
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("units", "metric")
	if p.apiKey != "" {
		q.Set("appid", p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &types.AppError{
			Code:    http.StatusBadGateway,
			Message: fmt.Sprintf("weather provider unreachable: %v", err),
			Kind:    types.KindTransport,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, types.NewNotFound(fmt.Sprintf("No weather data for location %q", location))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &types.AppError{
			Code:    http.StatusBadGateway,
			Message: fmt.Sprintf("weather provider returned status %d", resp.StatusCode),
			Kind:    types.KindTransport,
		}
	}

	var upstream upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, &types.AppError{
			Code:    http.StatusBadGateway,
			Message: fmt.Sprintf("weather provider returned invalid payload: %v", err),
			Kind:    types.KindTransport,
		}
	}

	snapshot := &Snapshot{
		Temp:      upstream.Main.Temp,
		Humidity:  upstream.Main.Humidity,
		WindSpeed: upstream.Wind.Speed,
	}
	if len(upstream.Weather) > 0 {
		snapshot.Condition = upstream.Weather[0].Description
		if snapshot.Condition == "" {
			snapshot.Condition = upstream.Weather[0].Main
		}
	}

	return snapshot, nil
}
