package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/example/floraison/internal/infrastructure/journal"
	"github.com/google/uuid"
)

// MockJournal is an in-memory journal.Journal for tests that records Append calls.
type MockJournal struct {
	mu     sync.RWMutex
	events map[string][]journal.Event
	order  []string

	AppendCalls []AppendCall
	AppendErr   error
}

// AppendCall records parameters passed to Append.
type AppendCall struct {
	AggregateID   string
	AggregateType string
	EventType     string
	Data          any
}

func NewMockJournal() *MockJournal {
	return &MockJournal{
		events:      make(map[string][]journal.Event),
		AppendCalls: make([]AppendCall, 0),
	}
}

func (m *MockJournal) Append(ctx context.Context, aggregateID, aggregateType, eventType string, data any) (*journal.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AppendCalls = append(m.AppendCalls, AppendCall{
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Data:          data,
	})

	if m.AppendErr != nil {
		return nil, m.AppendErr
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	if _, seen := m.events[aggregateID]; !seen {
		m.order = append(m.order, aggregateID)
	}
	version := len(m.events[aggregateID]) + 1
	event := journal.Event{
		ID:            uuid.New().String(),
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Data:          jsonData,
		Timestamp:     time.Now(),
		Version:       version,
	}

	m.events[aggregateID] = append(m.events[aggregateID], event)
	return &event, nil
}

func (m *MockJournal) Events(aggregateID string) []journal.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.events[aggregateID]
}

func (m *MockJournal) AllEvents() []journal.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var all []journal.Event
	for _, id := range m.order {
		all = append(all, m.events[id]...)
	}
	return all
}

// Reset clears all events and recorded calls.
func (m *MockJournal) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = make(map[string][]journal.Event)
	m.order = nil
	m.AppendCalls = make([]AppendCall, 0)
	m.AppendErr = nil
}
