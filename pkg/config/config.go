// Package config resolves the process environment into one immutable Config
// handed to the rest of the system - core logic never reads the environment
// itself.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/roadwatch/roadwatch/pkg/relevancy"
	"github.com/roadwatch/roadwatch/pkg/util"
)

const envPrefix = "ROADWATCH_"

type Config struct {
	TrafficBaseURL string
	TrafficAPIKey  string

	HomeAssistantBaseURL     string
	HomeAssistantAccessToken string

	NotifiedEventsPath string

	// NotifyDelay is the pause after each notification send. The Home
	// Assistant push pipeline drops bursts, so keep this at 3s or above.
	NotifyDelay time.Duration

	Criteria relevancy.Criteria
}

func Load() (Config, error) {
	env := util.GetEnvironmentVariables(envPrefix)

	cfg := Config{
		TrafficBaseURL:     "https://api.qldtraffic.qld.gov.au/v2",
		NotifiedEventsPath: "notified.json",
		NotifyDelay:        3 * time.Second,
	}

	var ok bool

	if cfg.TrafficAPIKey, ok = env["ROADWATCH_TRAFFIC_API_KEY"]; !ok {
		return Config{}, errors.New("ROADWATCH_TRAFFIC_API_KEY is not set")
	}
	if cfg.HomeAssistantBaseURL, ok = env["ROADWATCH_HOME_ASSISTANT_BASE_URL"]; !ok {
		return Config{}, errors.New("ROADWATCH_HOME_ASSISTANT_BASE_URL is not set")
	}
	if cfg.HomeAssistantAccessToken, ok = env["ROADWATCH_HOME_ASSISTANT_ACCESS_TOKEN"]; !ok {
		return Config{}, errors.New("ROADWATCH_HOME_ASSISTANT_ACCESS_TOKEN is not set")
	}

	if baseURL, ok := env["ROADWATCH_TRAFFIC_BASE_URL"]; ok {
		cfg.TrafficBaseURL = baseURL
	}
	if path, ok := env["ROADWATCH_NOTIFIED_EVENTS_PATH"]; ok {
		cfg.NotifiedEventsPath = path
	}

	if rawDelay, ok := env["ROADWATCH_NOTIFY_DELAY"]; ok {
		delay, err := time.ParseDuration(rawDelay)
		if err != nil {
			return Config{}, fmt.Errorf("parse ROADWATCH_NOTIFY_DELAY: %w", err)
		}
		if delay < 0 {
			return Config{}, errors.New("ROADWATCH_NOTIFY_DELAY cannot be negative")
		}

		cfg.NotifyDelay = delay
	}

	criteria, err := loadCriteria(env)
	if err != nil {
		return Config{}, err
	}
	cfg.Criteria = criteria

	return cfg, nil
}
