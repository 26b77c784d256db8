package cmd

import (
	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/spf13/cobra"
)

// weeklyCmd aggregates one user's week of emotion entries.
var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show the weekly emotion insight for one user.",
	Long: `Aggregate a user's emotion entries for one week into a single insight.

Weeks run Monday 00:00 UTC to the following Monday. The aggregate averages
every axis, counts active days, compares mood and stress against the previous
week and picks a Korean insight and advice sentence for the week's shape.

Computed aggregates are memoized in the cache backend; repeat views are
served from the memo until --aggregate-ttl marks them stale. Weeks without
entries produce an explicit empty aggregate rather than an error.

Examples:
  # Current week for the default user
  tonelab weekly

  # Previous week for a specific user
  tonelab weekly --user juno --week last

  # The week containing a date, recomputed if older than 3 days
  tonelab weekly --user juno --week 2025-06-04 --aggregate-ttl 72h`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeeklyInsight(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run weekly insight", err)
		}
	},
}
