package cmd

import (
	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd aggregates one week across every known user.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate one week across all users, ranked by mood.",
	Long: `Build the weekly aggregate for every user with emotion entries and rank
the results by happiness.

Aggregation runs concurrently with --workers goroutines, one per user, and
reuses memoized aggregates where they are still fresh. Users without entries
in the target week appear with an empty aggregate so the cohort stays
complete.

Useful for research cohorts: export the ranked table as CSV and track
week-over-week movement across the whole panel.

Examples:
  # Current week across all users
  tonelab report

  # Previous week, 8 workers, CSV export
  tonelab report --week last --workers 8 --output csv --output-file week.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeeklyReport(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run weekly report", err)
		}
	},
}
