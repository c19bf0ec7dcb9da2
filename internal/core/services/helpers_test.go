package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driven/storage/memory"
	"github.com/darnYOURsocks/Ripplewin/internal/annotator"
	"github.com/darnYOURsocks/Ripplewin/internal/annotator/vocabulary"
)

// testEnv wires services over in-memory stores.
type testEnv struct {
	assets     *memory.AssetStore
	metricsDB  *memory.MetricsStore
	metrics    *MetricsService
	assetSvc   *AssetService
	searchSvc  *SearchService
	dictionary *DictionaryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	vocab, err := vocabulary.Default()
	require.NoError(t, err)

	env := &testEnv{
		assets:    memory.NewAssetStore(),
		metricsDB: memory.NewMetricsStore(),
	}
	env.metrics = NewMetricsService(env.metricsDB, env.assets, true)
	env.assetSvc = NewAssetService(env.assets, annotator.New(vocab), env.metrics)
	env.searchSvc = NewSearchService(env.assets, env.metrics)
	env.dictionary = NewDictionaryService(memory.NewDictionaryStore(), vocab)
	return env
}

// stepClock returns a clock that advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func intPtr(v int) *int { return &v }
