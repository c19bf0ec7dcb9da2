package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
)

// Ensure MetricsStore implements the interface.
var _ driven.MetricsStore = (*MetricsStore)(nil)

// MetricsStore is an in-memory implementation of driven.MetricsStore.
type MetricsStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	order    []string
	events   []domain.Event
	nextID   int64
}

// NewMetricsStore creates a new in-memory metrics store.
func NewMetricsStore() *MetricsStore {
	return &MetricsStore{
		sessions: make(map[string]domain.Session),
	}
}

// SaveSession inserts or updates a session.
func (s *MetricsStore) SaveSession(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		s.order = append(s.order, session.ID)
	}
	s.sessions[session.ID] = session
	return nil
}

// GetSession retrieves a session by ID.
func (s *MetricsStore) GetSession(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &session, nil
}

// Sessions returns all sessions ordered by start time.
func (s *MetricsStore) Sessions(_ context.Context) ([]domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Session, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.sessions[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartedAt.Before(result[j].StartedAt)
	})
	return result, nil
}

// LogEvent appends an event. The session must exist.
func (s *MetricsStore) LogEvent(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[event.SessionID]; !ok {
		return fmt.Errorf("logging event: session %q: %w", event.SessionID, domain.ErrNotFound)
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	s.nextID++
	event.ID = s.nextID
	s.events = append(s.events, event)
	return nil
}

// Events returns events for one session, or all events when sessionID is empty.
func (s *MetricsStore) Events(_ context.Context, sessionID string) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.Event{}
	for _, e := range s.events {
		if sessionID == "" || e.SessionID == sessionID {
			result = append(result, e)
		}
	}
	return result, nil
}
