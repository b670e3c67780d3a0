// Package relevancy decides whether a traffic event is worth notifying about.
package relevancy

import (
	"golang.org/x/exp/slices"

	"github.com/roadwatch/roadwatch/pkg/traffic"
)

type Verdict string

const (
	VerdictIrrelevant         Verdict = "irrelevant"
	VerdictRelevantByPostcode Verdict = "relevant-postcode"
	VerdictRelevantBySuburb   Verdict = "relevant-suburb"
	VerdictRelevantByTowards  Verdict = "relevant-towards"
)

// Criteria is an immutable snapshot of what the operator cares about,
// resolved once per run.
type Criteria struct {
	Types          []traffic.EventType
	Postcodes      []int
	Suburbs        []string
	TowardsSuburbs []string
}

// DefaultTypes is used when no event types are configured.
func DefaultTypes() []traffic.EventType {
	return []traffic.EventType{
		traffic.EventTypeCongestion,
		traffic.EventTypeCrash,
		traffic.EventTypeFlooding,
		traffic.EventTypeHazard,
		traffic.EventTypeRoadworks,
	}
}

// Classify returns why an event matters, or VerdictIrrelevant. Rules run in a
// fixed order and the first hit wins: type gate, then postcode, then suburb,
// then the impact's towards destination. The type gate is mandatory - an
// event outside the configured types is irrelevant no matter where it is.
func Classify(criteria Criteria, event traffic.Event) Verdict {
	if !slices.Contains(criteria.Types, event.EventType) {
		return VerdictIrrelevant
	}

	for _, postcode := range traffic.ParsePostcodes(event.RoadSummary.Postcode) {
		if slices.Contains(criteria.Postcodes, postcode) {
			return VerdictRelevantByPostcode
		}
	}

	for _, locality := range traffic.ParseLocalities(event.RoadSummary.Locality) {
		if slices.Contains(criteria.Suburbs, locality) {
			return VerdictRelevantBySuburb
		}
	}

	if event.Impact.Towards != nil && slices.Contains(criteria.TowardsSuburbs, *event.Impact.Towards) {
		return VerdictRelevantByTowards
	}

	return VerdictIrrelevant
}
