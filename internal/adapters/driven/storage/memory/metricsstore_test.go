package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

func TestMetricsStore(t *testing.T) {
	store := NewMetricsStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.SaveSession(ctx, domain.Session{ID: "late", StartedAt: now.Add(time.Minute)}))
	require.NoError(t, store.SaveSession(ctx, domain.Session{ID: "early", StartedAt: now}))

	sessions, err := store.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "early", sessions[0].ID)

	require.NoError(t, store.LogEvent(ctx, domain.Event{SessionID: "early", Phase: domain.PhaseSearch, Ms: 5}))
	require.NoError(t, store.LogEvent(ctx, domain.Event{SessionID: "late", Phase: domain.PhaseIngest, Ms: 9}))
	assert.ErrorIs(t, store.LogEvent(ctx, domain.Event{SessionID: "ghost"}), domain.ErrNotFound)

	events, err := store.Events(ctx, "late")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(2), events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())

	all, err := store.Events(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = store.GetSession(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
