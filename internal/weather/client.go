// internal/weather/client.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Conditions is the optional enrichment attached to a match when the lookup
// succeeds.
type Conditions struct {
	Temperature        float64
	WeatherDescription string
}

// Client calls the OpenWeather current-conditions API. Lookups are strictly
// best-effort: every failure mode collapses to a nil result so a weather
// outage can never block match creation.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type openWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Lookup fetches current conditions for the coordinates. Returns nil when
// the API key is missing, the request fails, the response is non-200, or
// the body cannot be decoded.
func (c *Client) Lookup(ctx context.Context, latitude, longitude float64) *Conditions {
	if c == nil || c.APIKey == "" {
		return nil
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", latitude))
	params.Set("lon", fmt.Sprintf("%f", longitude))
	params.Set("appid", c.APIKey)
	params.Set("units", "metric") // Celsius

	reqURL := fmt.Sprintf("%s?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Printf("⚠️ [WEATHER] failed to build request: %v", err)
		return nil
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("⚠️ [WEATHER] lookup failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ [WEATHER] lookup returned %d", resp.StatusCode)
		return nil
	}

	var decoded openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("⚠️ [WEATHER] failed to decode response: %v", err)
		return nil
	}
	if len(decoded.Weather) == 0 {
		return &Conditions{Temperature: decoded.Main.Temp}
	}

	return &Conditions{
		Temperature:        decoded.Main.Temp,
		WeatherDescription: decoded.Weather[0].Description,
	}
}
