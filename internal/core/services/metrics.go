package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
	"github.com/darnYOURsocks/Ripplewin/internal/logger"
	"github.com/darnYOURsocks/Ripplewin/internal/metrics"
)

// Ensure MetricsService implements the interface.
var _ driving.MetricsService = (*MetricsService)(nil)

// MaxStress is the upper bound of the self-reported stress scale.
const MaxStress = 10

// MetricsService records timed operations into sessions.
// The active session is the most recently started one that has not ended,
// so separate CLI invocations share it through the store.
type MetricsService struct {
	store   driven.MetricsStore
	assets  driven.AssetStore
	enabled bool
	now     func() time.Time
}

// NewMetricsService creates a new metrics service. When enabled is false,
// Track still updates Prometheus instruments but writes no events.
func NewMetricsService(store driven.MetricsStore, assets driven.AssetStore, enabled bool) *MetricsService {
	return &MetricsService{
		store:   store,
		assets:  assets,
		enabled: enabled,
		now:     time.Now,
	}
}

// StartSession opens a new session.
func (s *MetricsService) StartSession(ctx context.Context, label string, stressBefore *int) (*domain.Session, error) {
	if err := validateStress(stressBefore); err != nil {
		return nil, err
	}

	session := domain.Session{
		ID:           uuid.NewString(),
		StartedAt:    s.now().UTC(),
		Label:        label,
		StressBefore: stressBefore,
	}
	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}

	logger.L().Info("metrics session started", zap.String("session", session.ID), zap.String("label", label))
	return &session, nil
}

// EndSession closes a session. An empty id selects the active session.
func (s *MetricsService) EndSession(ctx context.Context, id string, stressAfter *int) error {
	if err := validateStress(stressAfter); err != nil {
		return err
	}

	var session *domain.Session
	var err error
	if id == "" {
		session, err = s.ActiveSession(ctx)
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrNoActiveSession
		}
	} else {
		session, err = s.store.GetSession(ctx, id)
		if err != nil {
			return err
		}
	}

	if session.Ended() {
		return fmt.Errorf("session %s already ended: %w", session.ID, domain.ErrInvalidInput)
	}

	ended := s.now().UTC()
	session.EndedAt = &ended
	session.StressAfter = stressAfter
	if err := s.store.SaveSession(ctx, *session); err != nil {
		return fmt.Errorf("ending session: %w", err)
	}

	logger.L().Info("metrics session ended", zap.String("session", session.ID))
	return nil
}

// ActiveSession returns the most recently started open session, or nil.
func (s *MetricsService) ActiveSession(ctx context.Context) (*domain.Session, error) {
	sessions, err := s.store.Sessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	for i := len(sessions) - 1; i >= 0; i-- {
		if !sessions[i].Ended() {
			session := sessions[i]
			return &session, nil
		}
	}
	return nil, nil
}

// Track times fn, updates Prometheus and, when a session is active,
// appends an event. Recording failures are logged and never mask fn's error.
func (s *MetricsService) Track(ctx context.Context, phase domain.Phase, name string, fn func() error) error {
	start := s.now()
	err := fn()
	elapsed := s.now().Sub(start)

	metrics.ObserveOperation(string(phase), name, elapsed, err)

	if !s.enabled {
		return err
	}

	session, aerr := s.ActiveSession(ctx)
	if aerr != nil {
		logger.Warn("metrics: %v", aerr)
		return err
	}
	if session == nil {
		return err
	}

	event := domain.Event{
		SessionID: session.ID,
		Timestamp: start.UTC(),
		Phase:     phase,
		Name:      name,
		Ms:        elapsed.Milliseconds(),
	}
	if err != nil {
		event.Notes = err.Error()
	}
	if lerr := s.store.LogEvent(ctx, event); lerr != nil {
		logger.Warn("metrics: %v", lerr)
	}
	return err
}

// Summary computes KPIs across all sessions.
func (s *MetricsService) Summary(ctx context.Context) (*domain.KPI, error) {
	sessions, err := s.store.Sessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	events, err := s.store.Events(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	kpi := &domain.KPI{TotalSessions: len(sessions)}

	if s.assets != nil {
		n, err := s.assets.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting assets: %w", err)
		}
		kpi.ItemsStored = n
		metrics.AssetsStored.Set(float64(n))
	}

	if len(events) > 0 {
		var total int64
		for _, e := range events {
			total += e.Ms
		}
		kpi.AvgMs = total / int64(len(events))
	}

	var reduction, completed int
	for _, session := range sessions {
		if session.Ended() && session.StressBefore != nil && session.StressAfter != nil {
			reduction += *session.StressBefore - *session.StressAfter
			completed++
		}
	}
	if completed > 0 {
		kpi.AvgStressReduction = float64(reduction) / float64(completed)
	}

	return kpi, nil
}

// PhaseThroughput sums event durations per phase for a session.
// An empty sessionID selects the most recently started session.
func (s *MetricsService) PhaseThroughput(ctx context.Context, sessionID string) ([]domain.PhaseTotal, error) {
	if sessionID == "" {
		sessions, err := s.store.Sessions(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing sessions: %w", err)
		}
		if len(sessions) == 0 {
			return nil, domain.ErrNoActiveSession
		}
		sessionID = sessions[len(sessions)-1].ID
	} else if _, err := s.store.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	events, err := s.store.Events(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	index := make(map[domain.Phase]int)
	totals := make([]domain.PhaseTotal, 0, len(domain.Phases()))
	for i, p := range domain.Phases() {
		index[p] = i
		totals = append(totals, domain.PhaseTotal{Phase: p})
	}

	for _, e := range events {
		i, ok := index[e.Phase]
		if !ok {
			index[e.Phase] = len(totals)
			i = len(totals)
			totals = append(totals, domain.PhaseTotal{Phase: e.Phase})
		}
		totals[i].Seconds += float64(e.Ms) / 1000
		totals[i].Events++
	}
	return totals, nil
}

// exportDocument is the JSON shape written by Export.
type exportDocument struct {
	Sessions   []domain.Session `json:"sessions"`
	Events     []domain.Event   `json:"events"`
	Assets     []exportAsset    `json:"assets"`
	ExportedAt time.Time        `json:"exported_at"`
}

type exportAsset struct {
	ID        int64           `json:"id"`
	RawText   string          `json:"raw_text"`
	Summary   string          `json:"summary"`
	Keywords  json.RawMessage `json:"keywords"`
	Metaphors json.RawMessage `json:"metaphors"`
	Structure json.RawMessage `json:"structure"`
	Strategy  json.RawMessage `json:"strategy"`
}

// Export writes sessions, events and assets as one indented JSON document.
// Malformed facet blobs are exported as JSON strings.
func (s *MetricsService) Export(ctx context.Context, w io.Writer) error {
	sessions, err := s.store.Sessions(ctx)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}
	events, err := s.store.Events(ctx, "")
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}

	doc := exportDocument{
		Sessions:   sessions,
		Events:     events,
		Assets:     []exportAsset{},
		ExportedAt: s.now().UTC(),
	}

	if s.assets != nil {
		summaries, err := s.assets.Find(ctx, nil)
		if err != nil {
			return fmt.Errorf("listing assets: %w", err)
		}
		for _, a := range summaries {
			doc.Assets = append(doc.Assets, exportAsset{
				ID:        a.ID,
				RawText:   a.RawText,
				Summary:   a.Summary,
				Keywords:  rawOrString(a.Keywords),
				Metaphors: rawOrString(a.Metaphors),
				Structure: rawOrString(a.Structure),
				Strategy:  rawOrString(a.Strategy),
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

func rawOrString(b domain.FacetBlob) json.RawMessage {
	if b.Raw != "" && b.Valid() {
		return json.RawMessage(b.Raw)
	}
	out, _ := json.Marshal(b.Raw) //nolint:errcheck // marshalling a string cannot fail
	return out
}

func validateStress(v *int) error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > MaxStress {
		return fmt.Errorf("stress %d outside 0-%d: %w", *v, MaxStress, domain.ErrInvalidInput)
	}
	return nil
}

// track runs fn through m when metrics are configured.
func track(ctx context.Context, m driving.MetricsService, phase domain.Phase, name string, fn func() error) error {
	if m == nil {
		return fn()
	}
	return m.Track(ctx, phase, name, fn)
}

// isNotFound reports whether err is a not-found error.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
