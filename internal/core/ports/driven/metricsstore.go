package driven

import (
	"context"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// MetricsStore persists metrics sessions and their events.
type MetricsStore interface {
	// SaveSession inserts or updates a session.
	SaveSession(ctx context.Context, session domain.Session) error

	// GetSession retrieves a session by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetSession(ctx context.Context, id string) (*domain.Session, error)

	// Sessions returns all sessions ordered by start time.
	Sessions(ctx context.Context) ([]domain.Session, error)

	// LogEvent appends an event to a session.
	LogEvent(ctx context.Context, event domain.Event) error

	// Events returns events for a session, or all events when sessionID is empty.
	Events(ctx context.Context, sessionID string) ([]domain.Event, error)
}
