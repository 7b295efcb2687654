package journal

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/example/floraison/internal/infrastructure/kafka"
	"github.com/google/uuid"
)

// Event is one entry in the change feed.
type Event struct {
	ID            string          `json:"id"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	EventType     string          `json:"event_type"`
	Data          json.RawMessage `json:"data"`
	Timestamp     time.Time       `json:"timestamp"`
	Version       int             `json:"version"`
}

// Journal is an append-only record of everything the shop did. The ledger and
// registry stay authoritative; the journal is a change feed, not the source of
// truth.
type Journal interface {
	Append(ctx context.Context, aggregateID, aggregateType, eventType string, data any) (*Event, error)
	Events(aggregateID string) []Event
	AllEvents() []Event
}

// MemoryJournal keeps events in memory and optionally forwards each one to
// Kafka so external consumers can tail the shop's activity.
type MemoryJournal struct {
	mu       sync.RWMutex
	events   map[string][]Event // aggregateID -> events
	order    []string           // aggregateIDs in first-seen order
	producer *kafka.Producer
}

// NewMemoryJournal creates a journal. producer may be nil, in which case
// events are only retained in memory.
func NewMemoryJournal(producer *kafka.Producer) *MemoryJournal {
	return &MemoryJournal{
		events:   make(map[string][]Event),
		producer: producer,
	}
}

// Append records an event and publishes it when a producer is configured.
func (j *MemoryJournal) Append(ctx context.Context, aggregateID, aggregateType, eventType string, data any) (*Event, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	if _, seen := j.events[aggregateID]; !seen {
		j.order = append(j.order, aggregateID)
	}
	version := len(j.events[aggregateID]) + 1
	event := Event{
		ID:            uuid.New().String(),
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Data:          jsonData,
		Timestamp:     time.Now(),
		Version:       version,
	}
	j.events[aggregateID] = append(j.events[aggregateID], event)
	j.mu.Unlock()

	if j.producer != nil {
		if err := j.producer.Publish(ctx, aggregateID, event); err != nil {
			return nil, err
		}
	}

	return &event, nil
}

// Events returns all events for one aggregate in append order.
func (j *MemoryJournal) Events(aggregateID string) []Event {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Event, len(j.events[aggregateID]))
	copy(out, j.events[aggregateID])
	return out
}

// AllEvents returns every recorded event grouped by aggregate in first-seen order.
func (j *MemoryJournal) AllEvents() []Event {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var all []Event
	for _, id := range j.order {
		all = append(all, j.events[id]...)
	}
	return all
}
