package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

var (
	ingestType   string
	ingestSource string
)

// stdinIsTerminal reports whether stdin is attached to a terminal.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [text]",
	Short: "Annotate and store text",
	Long: `Annotates text and stores it as a new asset, printing its id.

With no argument the text is read from stdin, which must be piped:
  cat notes.txt | ripple ingest --source notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestType, "type", "t", domain.DefaultAssetType, "asset type")
	ingestCmd.Flags().StringVarP(&ingestSource, "source", "s", "", "provenance of the text")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if assetService == nil {
		return fmt.Errorf("asset %w", errNotConfigured)
	}

	text, source, err := ingestInput(cmd, args)
	if err != nil {
		return err
	}

	id, err := assetService.Ingest(cmd.Context(), text, domain.IngestOptions{
		Type:   ingestType,
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Stored asset %d\n", id)
	return nil
}

func ingestInput(cmd *cobra.Command, args []string) (text, source string, err error) {
	if len(args) == 1 {
		return args[0], ingestSource, nil
	}
	if stdinIsTerminal() {
		return "", "", fmt.Errorf("no text given: pass it as an argument or pipe it on stdin: %w", domain.ErrEmptyInput)
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	source = ingestSource
	if source == "" {
		source = "stdin"
	}
	return strings.TrimRight(string(data), "\n"), source, nil
}
