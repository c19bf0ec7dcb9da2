package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var dictionaryJSON bool

var dictionaryCmd = &cobra.Command{
	Use:   "dictionary",
	Short: "Browse the domain dictionary",
}

var dictionaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dictionary terms",
	Args:  cobra.NoArgs,
	RunE:  runDictionaryList,
}

func init() {
	dictionaryListCmd.Flags().BoolVar(&dictionaryJSON, "json", false, "output terms as JSON")
	dictionaryCmd.AddCommand(dictionaryListCmd)
	rootCmd.AddCommand(dictionaryCmd)
}

func runDictionaryList(cmd *cobra.Command, _ []string) error {
	if dictionaryService == nil {
		return fmt.Errorf("dictionary %w", errNotConfigured)
	}

	terms, err := dictionaryService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list dictionary: %w", err)
	}

	if dictionaryJSON {
		data, err := json.MarshalIndent(terms, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal terms: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(terms) == 0 {
		cmd.Println("Dictionary is empty.")
		return nil
	}

	for i := range terms {
		t := &terms[i]
		cmd.Printf("%s (%s, %s)\n", t.Term, t.Domain, t.Version)
		cmd.Printf("    science:  %s\n", t.ScienceDefinition)
		cmd.Printf("    analogy:  %s\n", t.HumanAnalogy)
		cmd.Printf("    strategy: %s\n", t.HumanContextStrategy)
	}
	cmd.Println()
	cmd.Printf("Total: %d terms\n", len(terms))
	return nil
}
