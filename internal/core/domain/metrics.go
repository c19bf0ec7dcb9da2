package domain

import "time"

// Phase labels a tracked operation.
type Phase string

const (
	PhaseSearch   Phase = "Search"
	PhaseIngest   Phase = "Ingest"
	PhaseValidate Phase = "Validate"
	PhaseFix      Phase = "Fix"
)

// Phases returns the tracked phases in display order.
func Phases() []Phase {
	return []Phase{PhaseSearch, PhaseIngest, PhaseValidate, PhaseFix}
}

// Session is a metrics session bracketing a period of use, with optional
// self-reported stress levels (0-10) at start and end.
type Session struct {
	ID           string     `json:"id"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	Label        string     `json:"label"`
	StressBefore *int       `json:"stress_before,omitempty"`
	StressAfter  *int       `json:"stress_after,omitempty"`
}

// Ended reports whether the session has been closed.
func (s *Session) Ended() bool {
	return s.EndedAt != nil
}

// Event is one timed operation within a session.
type Event struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"ts"`
	Phase     Phase     `json:"phase"`
	Name      string    `json:"name"`
	Ms        int64     `json:"ms"`
	Notes     string    `json:"notes,omitempty"`
}

// KPI summarises metrics across all sessions.
type KPI struct {
	TotalSessions      int     `json:"total_sessions"`
	ItemsStored        int     `json:"items_stored"`
	AvgMs              int64   `json:"avg_ms"`
	AvgStressReduction float64 `json:"avg_stress_reduction"`
}

// PhaseTotal is the summed duration of one phase within a session.
type PhaseTotal struct {
	Phase   Phase   `json:"phase"`
	Seconds float64 `json:"seconds"`
	Events  int     `json:"events"`
}
