// Package homeassistant delivers traffic event notifications to a Home
// Assistant instance by firing a custom event on its event bus.
package homeassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/roadwatch/roadwatch/pkg/traffic"
)

type Client struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
}

func NewClient(baseURL string, accessToken string) *Client {
	return &Client{
		BaseURL:     baseURL,
		AccessToken: accessToken,
		HTTPClient:  &http.Client{},
	}
}

type trafficEventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NotifyTrafficEvent fires a traffic_event on the Home Assistant event bus.
// Only a 2xx response counts as delivered.
func (c *Client) NotifyTrafficEvent(ctx context.Context, event traffic.Event) error {
	payload := trafficEventPayload{
		Title: fmt.Sprintf("%s - %s", event.EventType, stringOr(event.RoadSummary.Locality, "-")),
		Description: fmt.Sprintf(
			"%s on %s - %s",
			event.Impact.ImpactType,
			stringOr(event.RoadSummary.RoadName, "-"),
			stringOr(event.Impact.Delay, "No delay reported"),
		),
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	requestURL := fmt.Sprintf("%s/api/events/traffic_event", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", requestURL, bytes.NewReader(jsonBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.AccessToken))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send notification: home assistant returned status %d", resp.StatusCode)
	}

	return nil
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}

	return *s
}
