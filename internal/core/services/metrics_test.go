package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driven/storage/memory"
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

func TestMetricsService_SessionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	active, err := env.metrics.ActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	session, err := env.metrics.StartSession(ctx, "evening", intPtr(8))
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)

	active, err = env.metrics.ActiveSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, session.ID, active.ID)

	require.NoError(t, env.metrics.EndSession(ctx, "", intPtr(5)))

	active, err = env.metrics.ActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	err = env.metrics.EndSession(ctx, "", nil)
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	err = env.metrics.EndSession(ctx, session.ID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = env.metrics.EndSession(ctx, "missing", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMetricsService_StressBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.metrics.StartSession(ctx, "", intPtr(11))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.metrics.StartSession(ctx, "", intPtr(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.metrics.StartSession(ctx, "", intPtr(0))
	assert.NoError(t, err)

	assert.ErrorIs(t, env.metrics.EndSession(ctx, "", intPtr(42)), domain.ErrInvalidInput)
}

func TestMetricsService_Track(t *testing.T) {
	env := newTestEnv(t)
	env.metrics.now = stepClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 25*time.Millisecond)
	ctx := context.Background()

	// Without a session nothing is recorded but fn still runs.
	ran := false
	require.NoError(t, env.metrics.Track(ctx, domain.PhaseFix, "noop", func() error { ran = true; return nil }))
	assert.True(t, ran)

	session, err := env.metrics.StartSession(ctx, "", nil)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = env.metrics.Track(ctx, domain.PhaseFix, "repair", func() error { return boom })
	assert.Equal(t, boom, err)

	events, err := env.metricsDB.Events(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(25), events[0].Ms)
	assert.Equal(t, "boom", events[0].Notes)
	assert.Equal(t, domain.PhaseFix, events[0].Phase)
}

func TestMetricsService_Track_Disabled(t *testing.T) {
	store := memory.NewMetricsStore()
	svc := NewMetricsService(store, nil, false)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Track(ctx, domain.PhaseSearch, "search", func() error { return nil }))

	events, err := store.Events(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMetricsService_Summary(t *testing.T) {
	env := newTestEnv(t)
	env.metrics.now = stepClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 10*time.Millisecond)
	ctx := context.Background()

	kpi, err := env.metrics.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.KPI{}, *kpi)

	_, err = env.metrics.StartSession(ctx, "a", intPtr(8))
	require.NoError(t, err)
	_, err = env.assetSvc.Ingest(ctx, "I feel dirty", domain.IngestOptions{})
	require.NoError(t, err)
	require.NoError(t, env.metrics.EndSession(ctx, "", intPtr(4)))

	_, err = env.metrics.StartSession(ctx, "b", intPtr(6))
	require.NoError(t, err)
	_, err = env.assetSvc.Ingest(ctx, "clean start", domain.IngestOptions{})
	require.NoError(t, err)
	require.NoError(t, env.metrics.EndSession(ctx, "", intPtr(5)))

	// Open session without an after score is excluded from stress reduction.
	_, err = env.metrics.StartSession(ctx, "c", intPtr(9))
	require.NoError(t, err)

	kpi, err = env.metrics.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, kpi.TotalSessions)
	assert.Equal(t, 2, kpi.ItemsStored)
	assert.Equal(t, int64(10), kpi.AvgMs)
	assert.InDelta(t, 2.5, kpi.AvgStressReduction, 0.0001)
}

func TestMetricsService_PhaseThroughput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.metrics.PhaseThroughput(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	_, err = env.metrics.PhaseThroughput(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	session, err := env.metrics.StartSession(ctx, "", nil)
	require.NoError(t, err)

	for _, e := range []domain.Event{
		{Phase: domain.PhaseSearch, Ms: 1500},
		{Phase: domain.PhaseSearch, Ms: 500},
		{Phase: domain.PhaseIngest, Ms: 250},
	} {
		e.SessionID = session.ID
		require.NoError(t, env.metricsDB.LogEvent(ctx, e))
	}

	totals, err := env.metrics.PhaseThroughput(ctx, "")
	require.NoError(t, err)
	require.Len(t, totals, 4)

	assert.Equal(t, domain.PhaseSearch, totals[0].Phase)
	assert.InDelta(t, 2.0, totals[0].Seconds, 0.0001)
	assert.Equal(t, 2, totals[0].Events)
	assert.InDelta(t, 0.25, totals[1].Seconds, 0.0001)
	assert.Zero(t, totals[2].Events)
	assert.Equal(t, domain.PhaseFix, totals[3].Phase)
}

func TestMetricsService_Export(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.metrics.StartSession(ctx, "export", intPtr(3))
	require.NoError(t, err)
	_, err = env.assetSvc.Ingest(ctx, "Stuck in a loop", domain.IngestOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.metrics.Export(ctx, &buf))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, doc, "sessions")
	assert.Contains(t, doc, "events")
	assert.Contains(t, doc, "assets")
	assert.Contains(t, doc, "exported_at")

	var assets []map[string]any
	require.NoError(t, json.Unmarshal(doc["assets"], &assets))
	require.Len(t, assets, 1)
	assert.Equal(t, "Stuck in a loop", assets[0]["raw_text"])
	metaphors, ok := assets[0]["metaphors"].(map[string]any)
	require.True(t, ok, "valid facets are embedded as JSON")
	assert.Len(t, metaphors["pairs"], 1)
}

func TestRawOrString(t *testing.T) {
	assert.JSONEq(t, `[1,2]`, string(rawOrString(domain.FacetBlob{Raw: "[1,2]"})))
	assert.Equal(t, `"not json"`, string(rawOrString(domain.FacetBlob{Raw: "not json"})))
	assert.Equal(t, `""`, string(rawOrString(domain.FacetBlob{})))
}
