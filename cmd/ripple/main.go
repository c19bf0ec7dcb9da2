// Command ripple annotates free-form text and answers faceted queries over it.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driven/config/file"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driven/storage/sqlite"
	"github.com/darnYOURsocks/Ripplewin/internal/adapters/driving/cli"
	"github.com/darnYOURsocks/Ripplewin/internal/annotator"
	"github.com/darnYOURsocks/Ripplewin/internal/annotator/vocabulary"
	"github.com/darnYOURsocks/Ripplewin/internal/core/services"
	"github.com/darnYOURsocks/Ripplewin/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

// run wires the services and executes the command tree, returning the exit
// code. Command errors are printed by cobra.
func run() int {
	if err := setup(); err != nil {
		fmt.Fprintln(os.Stderr, "ripple:", err)
		return 1
	}
	defer teardown()

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}

// closers run in reverse order on teardown.
var closers []func()

func teardown() {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

func setup() (err error) {
	defer func() {
		if err != nil {
			teardown()
		}
	}()

	// A missing .env is normal.
	_ = godotenv.Load()

	home := os.Getenv("RIPPLE_HOME")

	cfg, err := file.NewConfigStore(home)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	env := os.Getenv("RIPPLE_ENV")
	if env == "" {
		env = cfg.GetString("log.env")
	}
	zl, err := logger.NewLogger(env, cfg.GetString("log.level"))
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	logger.SetLogger(zl)
	closers = append(closers, logger.Sync)

	dataDir := cfg.GetString("data.dir")
	if dataDir == "" && home != "" {
		dataDir = filepath.Join(home, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	closers = append(closers, func() { _ = store.Close() })

	vocab, err := vocabulary.LoadOrDefault(cfg.GetString("annotator.vocabulary"))
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}

	registry := annotator.NewRegistry()
	annotator.RegisterDefaults(registry)
	ann, err := annotator.NewFromConfig(vocab, registry, cfg.GetStringSlice("annotator.stages"),
		map[string]map[string]any{
			"keywords": {"max_keywords": cfg.GetInt("annotator.max_keywords")},
		})
	if err != nil {
		return fmt.Errorf("building annotator: %w", err)
	}

	metricsSvc := services.NewMetricsService(store.MetricsStore(), store.AssetStore(), cfg.GetBool("metrics.enabled"))
	dictionarySvc := services.NewDictionaryService(store.DictionaryStore(), vocab)
	if _, err := dictionarySvc.EnsureSeeded(context.Background()); err != nil {
		return err
	}

	zl.Debug("ripple starting",
		zap.String("version", version),
		zap.String("db", store.Path()),
		zap.Strings("stages", ann.Stages()),
	)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Asset:      services.NewAssetService(store.AssetStore(), ann, metricsSvc),
		Search:     services.NewSearchService(store.AssetStore(), metricsSvc),
		Dictionary: dictionarySvc,
		Metrics:    metricsSvc,
		Config:     cfg,
	})

	return nil
}
