package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
)

// metricsStore implements driven.MetricsStore.
// Timestamps are stored as epoch milliseconds.
type metricsStore struct {
	store *Store
}

var _ driven.MetricsStore = (*metricsStore)(nil)

// SaveSession inserts or updates a session.
func (s *metricsStore) SaveSession(ctx context.Context, session domain.Session) error {
	var endedAt sql.NullInt64
	if session.EndedAt != nil {
		endedAt = sql.NullInt64{Int64: session.EndedAt.UnixMilli(), Valid: true}
	}

	s.store.writeMu.Lock()
	defer s.store.writeMu.Unlock()

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO metrics_sessions (id, started_at, ended_at, label, stress_before, stress_after)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			ended_at = excluded.ended_at,
			label = excluded.label,
			stress_before = excluded.stress_before,
			stress_after = excluded.stress_after
	`, session.ID, session.StartedAt.UnixMilli(), endedAt, session.Label,
		nullInt(session.StressBefore), nullInt(session.StressAfter))
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID.
func (s *metricsStore) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, started_at, ended_at, label, stress_before, stress_after
		FROM metrics_sessions WHERE id = ?
	`, id)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return session, nil
}

// Sessions returns all sessions ordered by start time.
func (s *metricsStore) Sessions(ctx context.Context) ([]domain.Session, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, started_at, ended_at, label, stress_before, stress_after
		FROM metrics_sessions ORDER BY started_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// LogEvent appends an event to its session.
func (s *metricsStore) LogEvent(ctx context.Context, event domain.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	s.store.writeMu.Lock()
	defer s.store.writeMu.Unlock()

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO metrics_events (session_id, ts, phase, name, ms, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, event.SessionID, event.Timestamp.UnixMilli(), string(event.Phase), event.Name, event.Ms, event.Notes)
	if err != nil {
		return fmt.Errorf("logging event: %w", err)
	}
	return nil
}

// Events returns the events of one session, or of all sessions when
// sessionID is empty, in insertion order.
func (s *metricsStore) Events(ctx context.Context, sessionID string) ([]domain.Event, error) {
	query := `SELECT id, session_id, ts, phase, name, ms, notes FROM metrics_events`
	var args []any
	if sessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, sessionID)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var e domain.Event
		var ts int64
		var phase string
		if err := rows.Scan(&e.ID, &e.SessionID, &ts, &phase, &e.Name, &e.Ms, &e.Notes); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts).UTC()
		e.Phase = domain.Phase(phase)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var session domain.Session
	var startedAt int64
	var endedAt, before, after sql.NullInt64
	if err := row.Scan(&session.ID, &startedAt, &endedAt, &session.Label, &before, &after); err != nil {
		return nil, err
	}

	session.StartedAt = time.UnixMilli(startedAt).UTC()
	if endedAt.Valid {
		t := time.UnixMilli(endedAt.Int64).UTC()
		session.EndedAt = &t
	}
	session.StressBefore = intPtr(before)
	session.StressAfter = intPtr(after)
	return &session, nil
}
