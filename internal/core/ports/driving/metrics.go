package driving

import (
	"context"
	"io"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

// MetricsService records timed operations into sessions and reports on them.
type MetricsService interface {
	// StartSession opens a session and makes it the active one.
	StartSession(ctx context.Context, label string, stressBefore *int) (*domain.Session, error)

	// EndSession closes the session with the given ID, recording stressAfter.
	EndSession(ctx context.Context, id string, stressAfter *int) error

	// ActiveSession returns the most recent open session, or nil.
	ActiveSession(ctx context.Context) (*domain.Session, error)

	// Track times fn and records it as an event in the active session.
	// The error from fn is returned unchanged.
	Track(ctx context.Context, phase domain.Phase, name string, fn func() error) error

	// Summary computes KPIs across all sessions.
	Summary(ctx context.Context) (*domain.KPI, error)

	// PhaseThroughput returns the summed duration per phase for a session.
	// An empty sessionID selects the most recent session.
	PhaseThroughput(ctx context.Context, sessionID string) ([]domain.PhaseTotal, error)

	// Export writes sessions, events and assets as one JSON document.
	Export(ctx context.Context, w io.Writer) error
}
