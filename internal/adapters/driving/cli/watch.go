package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/normalisers"
	"github.com/darnYOURsocks/Ripplewin/internal/watcher"
)

var watchType string

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Ingest files as they appear in a directory",
	Long: `Watches a directory (not its subdirectories) and ingests every file that
is created or written. Rapid repeated writes to one file are coalesced, and
ingests are throttled by the watch.rate setting (per second, 0 = unlimited).
Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchType, "type", "t", domain.DefaultAssetType, "asset type")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if assetService == nil {
		return fmt.Errorf("asset %w", errNotConfigured)
	}

	perSecond := 0
	if configStore != nil {
		perSecond = configStore.GetInt("watch.rate")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watcher.New(args[0], float64(perSecond))
	defer w.Close() //nolint:errcheck

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	return w.Run(ctx, ingestChange(cmd))
}

// ingestChange returns a handler that stores each changed file as an asset.
func ingestChange(cmd *cobra.Command) watcher.HandlerFunc {
	return func(ctx context.Context, change watcher.Change) error {
		data, err := os.ReadFile(change.Path)
		if err != nil {
			return err
		}
		id, err := assetService.Ingest(ctx, normalisers.Default().Normalise(change.Path, data), domain.IngestOptions{
			Type:   watchType,
			Source: change.Path,
		})
		if errors.Is(err, domain.ErrEmptyInput) {
			return nil
		}
		if err != nil {
			return err
		}
		cmd.Printf("  %s %s -> %d\n", change.Type, change.Path, id)
		return nil
	}
}
