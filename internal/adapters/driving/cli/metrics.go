package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// defaultExportFile is written by metrics export when no path is given.
const defaultExportFile = "ripple-metrics.json"

var (
	sessionLabel  string
	sessionStress int
	sessionID     string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Track sessions and report on operation timings",
	Long: `Metrics sessions bracket a period of use. While a session is open every
search and ingest is timed and recorded against it.`,
}

var metricsSessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start or end a metrics session",
}

var metricsSessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a metrics session",
	Args:  cobra.NoArgs,
	RunE:  runMetricsSessionStart,
}

var metricsSessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active metrics session",
	Args:  cobra.NoArgs,
	RunE:  runMetricsSessionEnd,
}

var metricsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show KPIs across all sessions",
	Args:  cobra.NoArgs,
	RunE:  runMetricsSummary,
}

var metricsPhasesCmd = &cobra.Command{
	Use:   "phases [session-id]",
	Short: "Show time spent per phase",
	Long:  `Sums event durations per phase. Defaults to the most recent session.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMetricsPhases,
}

var metricsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export sessions, events and assets as JSON",
	Long:  `Writes one JSON document. Use "-" to write to stdout.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMetricsExport,
}

func init() {
	metricsSessionStartCmd.Flags().StringVarP(&sessionLabel, "label", "l", "", "session label")
	metricsSessionStartCmd.Flags().IntVar(&sessionStress, "stress", 0, "self-reported stress before (0-10)")
	metricsSessionEndCmd.Flags().IntVar(&sessionStress, "stress", 0, "self-reported stress after (0-10)")
	metricsSessionEndCmd.Flags().StringVar(&sessionID, "id", "", "session to end (default: active session)")

	metricsSessionCmd.AddCommand(metricsSessionStartCmd)
	metricsSessionCmd.AddCommand(metricsSessionEndCmd)
	metricsCmd.AddCommand(metricsSessionCmd)
	metricsCmd.AddCommand(metricsSummaryCmd)
	metricsCmd.AddCommand(metricsPhasesCmd)
	metricsCmd.AddCommand(metricsExportCmd)
	rootCmd.AddCommand(metricsCmd)
}

// stressFlag returns the --stress value only when it was set.
func stressFlag(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("stress") {
		return nil
	}
	v := sessionStress
	return &v
}

func runMetricsSessionStart(cmd *cobra.Command, _ []string) error {
	if metricsService == nil {
		return fmt.Errorf("metrics %w", errNotConfigured)
	}

	session, err := metricsService.StartSession(cmd.Context(), sessionLabel, stressFlag(cmd))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	cmd.Printf("Started session %s\n", session.ID)
	return nil
}

func runMetricsSessionEnd(cmd *cobra.Command, _ []string) error {
	if metricsService == nil {
		return fmt.Errorf("metrics %w", errNotConfigured)
	}

	if err := metricsService.EndSession(cmd.Context(), sessionID, stressFlag(cmd)); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	cmd.Println("Session ended.")
	return nil
}

func runMetricsSummary(cmd *cobra.Command, _ []string) error {
	if metricsService == nil {
		return fmt.Errorf("metrics %w", errNotConfigured)
	}

	kpi, err := metricsService.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to compute summary: %w", err)
	}

	cmd.Println("Metrics Summary")
	cmd.Println("===============")
	cmd.Printf("  Sessions:              %d\n", kpi.TotalSessions)
	cmd.Printf("  Items stored:          %d\n", kpi.ItemsStored)
	cmd.Printf("  Avg operation:         %d ms\n", kpi.AvgMs)
	cmd.Printf("  Avg stress reduction:  %.2f\n", kpi.AvgStressReduction)

	active, err := metricsService.ActiveSession(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read active session: %w", err)
	}
	if active != nil {
		cmd.Printf("  Active session:        %s (since %s)\n",
			active.ID, active.StartedAt.Local().Format(time.Kitchen))
	}
	return nil
}

func runMetricsPhases(cmd *cobra.Command, args []string) error {
	if metricsService == nil {
		return fmt.Errorf("metrics %w", errNotConfigured)
	}

	id := ""
	if len(args) == 1 {
		id = args[0]
	}

	totals, err := metricsService.PhaseThroughput(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to compute phases: %w", err)
	}

	for _, t := range totals {
		cmd.Printf("  %-10s %8.3fs  (%d events)\n", t.Phase, t.Seconds, t.Events)
	}
	return nil
}

func runMetricsExport(cmd *cobra.Command, args []string) error {
	if metricsService == nil {
		return fmt.Errorf("metrics %w", errNotConfigured)
	}

	path := defaultExportFile
	if len(args) == 1 {
		path = args[0]
	}

	if path == "-" {
		return metricsService.Export(cmd.Context(), cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := metricsService.Export(cmd.Context(), f); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("export failed: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}

	cmd.Printf("Exported metrics to %s\n", path)
	return nil
}
