package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an asset with its facets",
	Long: `Prints the raw text, each facet, the summary and the humanized text of
the most recent expansion. A facet that cannot be parsed is printed as stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if assetService == nil {
		return fmt.Errorf("asset %w", errNotConfigured)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid asset id %q", args[0])
	}

	detail, found, err := assetService.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get asset: %w", err)
	}
	if !found {
		cmd.Printf("Asset %d not found.\n", id)
		return nil
	}

	w := cmd.OutOrStdout()
	heading(w, fmt.Sprintf("Asset %d", detail.ID))
	fmt.Fprintf(w, "  Type:     %s\n", detail.Type)
	if detail.Source != "" {
		fmt.Fprintf(w, "  Source:   %s\n", detail.Source)
	}
	fmt.Fprintf(w, "  Created:  %s\n", time.Unix(detail.CreatedAt, 0).Format("2006-01-02 15:04:05"))

	heading(w, "Raw")
	fmt.Fprintln(w, detail.RawText)

	for _, blob := range detail.Blobs() {
		heading(w, blob.Name)
		if !blob.Valid() {
			warnColor.Fprintln(w, "(malformed, shown as stored)") //nolint:errcheck
		}
		fmt.Fprintln(w, blob.Display())
	}

	heading(w, "Summary")
	fmt.Fprintln(w, detail.Summary)

	heading(w, "Humanized")
	fmt.Fprintln(w, detail.Humanized)
	return nil
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w)
	headingColor.Fprintf(w, "== %s ==\n", title) //nolint:errcheck
}
