// Package cli provides the cobra command tree for the ripple binary.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driven"
	"github.com/darnYOURsocks/Ripplewin/internal/core/ports/driving"
	"github.com/darnYOURsocks/Ripplewin/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services holds the driving ports the commands call into.
type Services struct {
	Asset      driving.AssetService
	Search     driving.SearchService
	Dictionary driving.DictionaryService
	Metrics    driving.MetricsService
	Config     driven.ConfigStore
}

var (
	assetService      driving.AssetService
	searchService     driving.SearchService
	dictionaryService driving.DictionaryService
	metricsService    driving.MetricsService
	configStore       driven.ConfigStore
)

var errNotConfigured = errors.New("service not configured")

var rootCmd = &cobra.Command{
	Use:   "ripple",
	Short: "Annotate text and query it by facet",
	Long: `Ripple captures free-form text, annotates it with keywords, metaphor
mappings, topical sections and strategies, and answers faceted queries.

Query language:
  topic:VALUE        a structure section contains VALUE
  metaphor:VALUE     either side of a metaphor pair contains VALUE
  hasStrategy:true   at least one strategy was derived
  anything else      substring of the raw text`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
}

// SetServices injects the services used by all commands.
func SetServices(s Services) {
	assetService = s.Asset
	searchService = s.Search
	dictionaryService = s.Dictionary
	metricsService = s.Metrics
	configStore = s.Config
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
