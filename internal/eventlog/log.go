// Package eventlog keeps the append-only history of a game. Entries are sequenced from 1
// and never mutated or removed once appended.
package eventlog

import (
	"sync"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

type Log struct {
	mu     sync.RWMutex
	gameID string
	events []entity.Event
	now    func() time.Time
}

func New(gameID string) *Log {
	return &Log{gameID: gameID, events: make([]entity.Event, 0), now: time.Now}
}

// Restore - rebuilds a log from events that were already sequenced, e.g. read back from storage.
func Restore(gameID string, events []entity.Event) *Log {
	log := New(gameID)
	log.events = append(log.events, entity.CloneEvents(events)...)

	return log
}

// Append - stamps the drafts with the game id, the next sequence numbers and the append time,
// stores them and returns the stamped copies.
func (that *Log) Append(drafts []entity.Event) []entity.Event {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now().UTC()
	var next int64
	if len(that.events) > 0 {
		next = that.events[len(that.events)-1].Sequence
	}

	stamped := make([]entity.Event, 0, len(drafts))
	for _, event := range drafts {
		next++
		event.GameID = that.gameID
		event.Sequence = next
		event.CreatedAt = now
		stamped = append(stamped, event.Clone())
	}

	that.events = append(that.events, stamped...)

	return entity.CloneEvents(stamped)
}

// Events - returns the history in chronological order. A positive limit keeps only the newest entries.
func (that *Log) Events(limit int) []entity.Event {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return Newest(that.events, limit)
}

// Since - returns the events with a sequence greater than after.
func (that *Log) Since(after int64) []entity.Event {
	that.mu.RLock()
	defer that.mu.RUnlock()

	out := make([]entity.Event, 0)
	for _, event := range that.events {
		if event.Sequence > after {
			out = append(out, event.Clone())
		}
	}

	return out
}

func (that *Log) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.events)
}

// Missing - how many sequence numbers below the last one have no entry, e.g. after a lost write.
func (that *Log) Missing() int64 {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if len(that.events) == 0 {
		return 0
	}

	return that.events[len(that.events)-1].Sequence - int64(len(that.events))
}

// Newest - copies the trailing limit events of a chronological slice; a limit of zero or less keeps all.
func Newest(events []entity.Event, limit int) []entity.Event {
	start := 0
	if limit > 0 && limit < len(events) {
		start = len(events) - limit
	}

	return entity.CloneEvents(events[start:])
}
