// Package ledger persists the set of already-notified event ids between runs.
//
// The ledger is a single JSON file rewritten in full on every append. There is
// no file locking - two runs against the same path can interleave writes and
// lose records, so the binary must be scheduled with mutual exclusion (one
// cron job, never overlapping instances).
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const currentVersion = 1

// ErrCorrupt means the ledger file exists but cannot be trusted. There is no
// auto-repair: a run must not proceed over unreadable state, since it would
// re-notify everything.
var ErrCorrupt = errors.New("corrupt ledger file")

type Record struct {
	EventID int    `json:"event_id"`
	Reason  string `json:"reason"`
}

type ledgerFile struct {
	Events  []Record `json:"events"`
	Version int      `json:"version"`
}

type Ledger struct {
	path string
	file ledgerFile
}

// Load reads the ledger at path, creating and persisting an empty one if the
// file does not exist yet.
func Load(path string) (*Ledger, error) {
	jsonBytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		ledger := &Ledger{
			path: path,
			file: ledgerFile{Events: []Record{}, Version: currentVersion},
		}

		if err := ledger.persist(); err != nil {
			return nil, err
		}

		return ledger, nil
	}
	if err != nil {
		return nil, err
	}

	var file ledgerFile
	if err := json.Unmarshal(jsonBytes, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrCorrupt, path, err)
	}

	if file.Version != currentVersion {
		return nil, fmt.Errorf("%w: %s: unsupported version %d", ErrCorrupt, path, file.Version)
	}

	return &Ledger{path: path, file: file}, nil
}

func (l *Ledger) Contains(eventID int) bool {
	for _, record := range l.file.Events {
		if record.EventID == eventID {
			return true
		}
	}

	return false
}

// Append records an event id and rewrites the whole file. Callers must check
// Contains first - the storage layer does not deduplicate. If the rewrite
// fails the in-memory state is ahead of disk and the run must abort.
func (l *Ledger) Append(eventID int, reason string) error {
	l.file.Events = append(l.file.Events, Record{EventID: eventID, Reason: reason})

	return l.persist()
}

func (l *Ledger) Records() []Record {
	return l.file.Events
}

func (l *Ledger) persist() error {
	jsonBytes, err := json.MarshalIndent(l.file, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(l.path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}

	return nil
}
