package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write configuration",
	Long: `Reads and writes keys in config.toml. Environment variables prefixed
with RIPPLE_ override the file, e.g. RIPPLE_METRICS_ENABLED=false.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a key and saves the file. Integers and booleans are stored typed;
comma-separated values are stored as lists for annotator.stages.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configStore == nil {
			return fmt.Errorf("config %w", errNotConfigured)
		}
		cmd.Println(configStore.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return fmt.Errorf("config %w", errNotConfigured)
	}

	v, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown config key %q", args[0])
	}

	switch val := v.(type) {
	case []string:
		cmd.Println(strings.Join(val, ","))
	case []any:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = fmt.Sprint(p)
		}
		cmd.Println(strings.Join(parts, ","))
	default:
		cmd.Println(fmt.Sprint(val))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return fmt.Errorf("config %w", errNotConfigured)
	}

	key, raw := args[0], args[1]
	if err := configStore.Set(key, parseConfigValue(key, raw)); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("%s = %s\n", key, raw)
	return nil
}

// parseConfigValue types a command-line value the way TOML would.
func parseConfigValue(key, raw string) any {
	if key == "annotator.stages" {
		parts := strings.Split(raw, ",")
		stages := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				stages = append(stages, p)
			}
		}
		return stages
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
