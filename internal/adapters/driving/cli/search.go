package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
	"github.com/darnYOURsocks/Ripplewin/internal/query"
)

// snippetLength caps the raw text shown per result.
const snippetLength = 72

var (
	searchJSON    bool
	searchExplain bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stored assets",
	Long: `Runs a faceted query over stored assets. Results are returned in
ascending id order; an empty query lists every asset.

  ripple search topic:impurity metaphor:wash hasStrategy:true
  ripple search "washed again"`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchExplain, "explain", false, "print the parsed query instead of running it")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return fmt.Errorf("search %w", errNotConfigured)
	}

	q := strings.Join(args, " ")

	if searchExplain {
		return outputExplain(cmd, searchService.Explain(q))
	}

	results, err := searchService.Search(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputExplain(cmd *cobra.Command, sq domain.StructuredQuery) error {
	if searchJSON {
		data, err := json.MarshalIndent(sq, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal query: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Canonical: %s\n", query.Format(sq))
	cmd.Printf("  free text:    %q\n", sq.FreeText)
	cmd.Printf("  topic:        %q\n", sq.Topic)
	cmd.Printf("  metaphor:     %q\n", sq.Metaphor)
	cmd.Printf("  hasStrategy:  %v\n", sq.HasStrategy)

	preds := query.Compile(sq)
	if len(preds) == 0 {
		cmd.Println("Matches every asset.")
		return nil
	}
	cmd.Println("Predicates:")
	for _, p := range preds {
		cmd.Printf("  %s\n", p.Kind())
	}
	return nil
}

type searchResultJSON struct {
	ID      int64          `json:"id"`
	RawText string         `json:"raw_text"`
	Summary string         `json:"summary"`
	Facets  map[string]any `json:"facets"`
}

func outputSearchJSON(cmd *cobra.Command, results []domain.AssetSummary) error {
	out := make([]searchResultJSON, len(results))
	for i := range results {
		r := &results[i]
		out[i] = searchResultJSON{
			ID:      r.ID,
			RawText: r.RawText,
			Summary: r.Summary,
			Facets:  facetValues(r.Keywords, r.Metaphors, r.Structure, r.Strategy),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.AssetSummary) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("[%d] %s\n", results[i].ID, snippet(results[i].RawText, snippetLength))
		if results[i].Summary != "" {
			cmd.Printf("    %s\n", results[i].Summary)
		}
	}
	cmd.Println()
	cmd.Printf("Total: %d assets\n", len(results))
	return nil
}

// facetValues keeps well-formed blobs as JSON and malformed ones as strings.
func facetValues(blobs ...domain.FacetBlob) map[string]any {
	m := make(map[string]any, len(blobs))
	for _, b := range blobs {
		if b.Valid() {
			m[b.Name] = json.RawMessage(b.Raw)
		} else {
			m[b.Name] = b.Raw
		}
	}
	return m
}

// snippet collapses whitespace and truncates to n runes.
func snippet(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
