package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driven/storage/memory"
	"github.com/darnYOURsocks/Ripplewin/internal/annotator"
	"github.com/darnYOURsocks/Ripplewin/internal/annotator/vocabulary"
	"github.com/darnYOURsocks/Ripplewin/internal/core/services"
)

type testServices struct {
	assets     *services.AssetService
	metrics    *services.MetricsService
	dictionary *services.DictionaryService
	config     *memory.ConfigStore
}

// setupTestServices wires real services over in-memory stores and
// resets the package-level services when the test ends.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	vocab, err := vocabulary.Default()
	require.NoError(t, err)

	assetStore := memory.NewAssetStore()
	metricsSvc := services.NewMetricsService(memory.NewMetricsStore(), assetStore, true)
	assetSvc := services.NewAssetService(assetStore, annotator.New(vocab), metricsSvc)
	dictSvc := services.NewDictionaryService(memory.NewDictionaryStore(), vocab)
	cfg := memory.NewConfigStore(map[string]any{"import.workers": 2})

	SetServices(Services{
		Asset:      assetSvc,
		Search:     services.NewSearchService(assetStore, metricsSvc),
		Dictionary: dictSvc,
		Metrics:    metricsSvc,
		Config:     cfg,
	})
	t.Cleanup(func() { SetServices(Services{}) })

	return &testServices{assets: assetSvc, metrics: metricsSvc, dictionary: dictSvc, config: cfg}
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// ingestText stores text and fails the test on error.
func ingestText(t *testing.T, text string) {
	t.Helper()
	_, err := execute(t, "", "ingest", text)
	require.NoError(t, err)
}
