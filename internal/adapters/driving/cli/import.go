package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/normalisers"
)

// defaultImportWorkers bounds concurrent ingests when no config is set.
const defaultImportWorkers = 4

var importType string

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Ingest several files",
	Long: `Ingests each file as one asset. Markdown and HTML are reduced to plain
text first. Files are annotated concurrently, bounded by the import.workers
setting. Empty files are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importType, "type", "t", domain.DefaultAssetType, "asset type")
	rootCmd.AddCommand(importCmd)
}

type importResult struct {
	path string
	id   int64
	err  error
}

func runImport(cmd *cobra.Command, args []string) error {
	if assetService == nil {
		return fmt.Errorf("asset %w", errNotConfigured)
	}

	workers := defaultImportWorkers
	if configStore != nil {
		if n := configStore.GetInt("import.workers"); n > 0 {
			workers = n
		}
	}

	results := make([]importResult, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for i, path := range args {
		g.Go(func() error {
			results[i].path = path
			data, err := os.ReadFile(path)
			if err != nil {
				results[i].err = err
				return nil
			}
			id, err := assetService.Ingest(ctx, normalisers.Default().Normalise(path, data), domain.IngestOptions{
				Type:   importType,
				Source: path,
			})
			if errors.Is(err, domain.ErrStoreUnavailable) {
				return err
			}
			results[i].id, results[i].err = id, err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("import aborted: %w", err)
	}

	failed := 0
	for _, r := range results {
		switch {
		case errors.Is(r.err, domain.ErrEmptyInput):
			cmd.Printf("  skipped  %s (empty)\n", r.path)
		case r.err != nil:
			failed++
			cmd.Printf("  failed   %s: %v\n", r.path, r.err)
		default:
			cmd.Printf("  stored   %s -> %d\n", r.path, r.id)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
