package traffic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client fetches events from the QLD Traffic API. The API returns a GeoJSON
// FeatureCollection; we only care about each feature's properties.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL string, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{},
	}
}

type eventsResponse struct {
	Features []struct {
		Properties Event `json:"properties"`
	} `json:"features"`
}

func (c *Client) FetchEvents(ctx context.Context) ([]Event, error) {
	requestURL := fmt.Sprintf("%s/events?apikey=%s", c.BaseURL, url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch events: feed returned status %d", resp.StatusCode)
	}

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	var response eventsResponse
	if err := json.Unmarshal(jsonBytes, &response); err != nil {
		return nil, fmt.Errorf("parse events feed: %w", err)
	}

	events := make([]Event, 0, len(response.Features))
	for _, feature := range response.Features {
		if err := feature.Properties.Validate(); err != nil {
			return nil, fmt.Errorf("parse events feed: %w", err)
		}

		events = append(events, feature.Properties)
	}

	return events, nil
}
