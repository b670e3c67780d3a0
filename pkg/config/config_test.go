package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/roadwatch/roadwatch/pkg/traffic"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("ROADWATCH_TRAFFIC_API_KEY", "test-key")
	t.Setenv("ROADWATCH_HOME_ASSISTANT_BASE_URL", "http://ha.local:8123")
	t.Setenv("ROADWATCH_HOME_ASSISTANT_ACCESS_TOKEN", "test-token")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.TrafficBaseURL != "https://api.qldtraffic.qld.gov.au/v2" {
		t.Fatalf("unexpected base url %q", cfg.TrafficBaseURL)
	}
	if cfg.NotifiedEventsPath != "notified.json" {
		t.Fatalf("unexpected ledger path %q", cfg.NotifiedEventsPath)
	}
	if cfg.NotifyDelay != 3*time.Second {
		t.Fatalf("unexpected notify delay %s", cfg.NotifyDelay)
	}

	expectedTypes := []traffic.EventType{
		traffic.EventTypeCongestion,
		traffic.EventTypeCrash,
		traffic.EventTypeFlooding,
		traffic.EventTypeHazard,
		traffic.EventTypeRoadworks,
	}
	if !reflect.DeepEqual(cfg.Criteria.Types, expectedTypes) {
		t.Fatalf("unexpected default types %v", cfg.Criteria.Types)
	}
	if len(cfg.Criteria.Postcodes) != 0 {
		t.Fatalf("expected no default postcodes, got %v", cfg.Criteria.Postcodes)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("ROADWATCH_HOME_ASSISTANT_BASE_URL", "http://ha.local:8123")
	t.Setenv("ROADWATCH_HOME_ASSISTANT_ACCESS_TOKEN", "test-token")
	t.Setenv("ROADWATCH_TRAFFIC_API_KEY", "")
	os.Unsetenv("ROADWATCH_TRAFFIC_API_KEY")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when the traffic api key is not set")
	}
}

func TestLoadCriteriaFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ROADWATCH_RELEVANT_EVENT_TYPES", "Crash,Hazard")
	t.Setenv("ROADWATCH_RELEVANT_POSTCODES", "4000, 4031")
	t.Setenv("ROADWATCH_RELEVANT_SUBURBS", "Kedron, Fortitude Valley")
	t.Setenv("ROADWATCH_RELEVANT_TOWARDS_SUBURBS", "Chermside")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !reflect.DeepEqual(cfg.Criteria.Types, []traffic.EventType{"Crash", "Hazard"}) {
		t.Fatalf("unexpected types %v", cfg.Criteria.Types)
	}
	if !reflect.DeepEqual(cfg.Criteria.Postcodes, []int{4000, 4031}) {
		t.Fatalf("unexpected postcodes %v", cfg.Criteria.Postcodes)
	}
	if !reflect.DeepEqual(cfg.Criteria.Suburbs, []string{"Kedron", "Fortitude Valley"}) {
		t.Fatalf("unexpected suburbs %v", cfg.Criteria.Suburbs)
	}
	if !reflect.DeepEqual(cfg.Criteria.TowardsSuburbs, []string{"Chermside"}) {
		t.Fatalf("unexpected towards suburbs %v", cfg.Criteria.TowardsSuburbs)
	}
}

func TestLoadCriteriaFromFile(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "criteria.yaml")
	criteriaYaml := `types:
  - Crash
postcodes:
  - 4000
suburbs:
  - Kedron
towards_suburbs:
  - Chermside
`
	if err := os.WriteFile(path, []byte(criteriaYaml), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("ROADWATCH_CRITERIA_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !reflect.DeepEqual(cfg.Criteria.Types, []traffic.EventType{"Crash"}) {
		t.Fatalf("unexpected types %v", cfg.Criteria.Types)
	}
	if !reflect.DeepEqual(cfg.Criteria.Postcodes, []int{4000}) {
		t.Fatalf("unexpected postcodes %v", cfg.Criteria.Postcodes)
	}
}

func TestLoadBadPostcode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ROADWATCH_RELEVANT_POSTCODES", "4000,oops")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable postcode")
	}
}

func TestLoadBadNotifyDelay(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ROADWATCH_NOTIFY_DELAY", "three seconds")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable delay")
	}
}
