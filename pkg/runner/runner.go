// Package runner drives one end-to-end poll cycle: fetch, classify, dedup,
// notify, record. Each invocation runs to completion and exits; scheduling is
// the operator's cron job.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/roadwatch/roadwatch/pkg/ledger"
	"github.com/roadwatch/roadwatch/pkg/relevancy"
	"github.com/roadwatch/roadwatch/pkg/traffic"
)

type EventSource interface {
	FetchEvents(ctx context.Context) ([]traffic.Event, error)
}

type NotificationSink interface {
	NotifyTrafficEvent(ctx context.Context, event traffic.Event) error
}

type Runner struct {
	Criteria relevancy.Criteria
	Source   EventSource
	Sink     NotificationSink
	Ledger   *ledger.Ledger

	// NotifyDelay is applied after every successful send so the downstream
	// push pipeline never sees a burst.
	NotifyDelay time.Duration
}

type relevantEvent struct {
	event   traffic.Event
	verdict relevancy.Verdict
}

// Run processes the feed strictly sequentially: one event's full
// classify-check-notify-persist cycle finishes before the next begins. A
// failed send or a failed ledger rewrite aborts the run; everything already
// appended stays recorded, so the next run picks up where this one stopped.
func (r *Runner) Run(ctx context.Context) error {
	executedAt := runTimestamp()

	events, err := r.Source.FetchEvents(ctx)
	if err != nil {
		return err
	}

	var relevantEvents []relevantEvent
	for _, event := range events {
		verdict := relevancy.Classify(r.Criteria, event)
		if verdict == relevancy.VerdictIrrelevant {
			continue
		}

		log.Debug().
			Int("event_id", event.ID).
			Str("event_type", string(event.EventType)).
			Str("verdict", string(verdict)).
			Msg("classified event")

		relevantEvents = append(relevantEvents, relevantEvent{event: event, verdict: verdict})
	}

	if len(relevantEvents) == 0 {
		log.Info().
			Str("executed_at", executedAt).
			Int("events_fetched", len(events)).
			Msg("no relevant events found")

		return nil
	}

	for _, relevant := range relevantEvents {
		event := relevant.event

		if r.Ledger.Contains(event.ID) {
			log.Info().
				Int("event_id", event.ID).
				Str("event_type", string(event.EventType)).
				Str("locality", locality(event)).
				Msg("event already notified")

			continue
		}

		if err := r.Sink.NotifyTrafficEvent(ctx, event); err != nil {
			log.Error().Err(err).Int("event_id", event.ID).Msg("failed to send notification")

			return err
		}

		// The append must be the very next action after the send - anything
		// in between widens the window where a crash causes a duplicate
		// notification on the next run.
		if err := r.Ledger.Append(event.ID, string(relevant.verdict)); err != nil {
			log.Error().
				Err(err).
				Int("event_id", event.ID).
				Msg("notification sent but ledger append failed - verify this event manually")

			return fmt.Errorf("record event %d: %w", event.ID, err)
		}

		log.Info().
			Int("event_id", event.ID).
			Str("reason", string(relevant.verdict)).
			Str("locality", locality(event)).
			Msg("sent notification")

		time.Sleep(r.NotifyDelay)
	}

	return nil
}

func locality(event traffic.Event) string {
	if event.RoadSummary.Locality == nil {
		return "-"
	}

	return *event.RoadSummary.Locality
}

func runTimestamp() string {
	location, err := time.LoadLocation("Australia/Brisbane")
	if err != nil {
		return time.Now().UTC().Format("2006-01-02T15:04:05")
	}

	return time.Now().In(location).Format("2006-01-02T15:04:05")
}
