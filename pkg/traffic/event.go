package traffic

import (
	"fmt"
	"time"
)

type EventType string

const (
	EventTypeCongestion   EventType = "Congestion"
	EventTypeCrash        EventType = "Crash"
	EventTypeFlooding     EventType = "Flooding"
	EventTypeHazard       EventType = "Hazard"
	EventTypeRoadworks    EventType = "Roadworks"
	EventTypeSpecialEvent EventType = "Special Event"
)

type EventPriority string

const (
	EventPriorityLow    EventPriority = "Low"
	EventPriorityMedium EventPriority = "Medium"
	EventPriorityHigh   EventPriority = "High"
)

type Impact struct {
	ImpactType    string  `json:"impact_type"`
	ImpactSubtype *string `json:"impact_subtype"`
	Towards       *string `json:"towards"`
	Delay         *string `json:"delay"`
}

type Duration struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

type RoadSummary struct {
	RoadName            *string `json:"road_name"`
	Locality            *string `json:"locality"`
	Postcode            string  `json:"postcode"`
	LocalGovernmentArea string  `json:"local_government_area"`
	District            string  `json:"district"`
}

// Event is a single record from the traffic events feed. Event types and
// subtypes outside the known constants are carried through as-is - the feed
// grows new categories without notice.
type Event struct {
	ID            int           `json:"id"`
	AreaAlert     bool          `json:"area_alert"`
	Status        string        `json:"status"`
	Published     *time.Time    `json:"published"`
	EventType     EventType     `json:"event_type"`
	EventSubtype  string        `json:"event_subtype"`
	EventPriority EventPriority `json:"event_priority"`
	Impact        Impact        `json:"impact"`
	Duration      Duration      `json:"duration"`
	RoadSummary   RoadSummary   `json:"road_summary"`
}

func (e *Event) Validate() error {
	if e.ID == 0 {
		return fmt.Errorf("event is missing an id")
	}

	switch e.EventPriority {
	case EventPriorityLow, EventPriorityMedium, EventPriorityHigh:
	default:
		return fmt.Errorf("event %d has unrecognised priority %q", e.ID, e.EventPriority)
	}

	return nil
}
