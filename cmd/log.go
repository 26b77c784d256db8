package cmd

import (
	"fmt"

	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/internal/researchlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logSetup loads minimal configuration needed for research log operations.
func logSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	cfg.ResearchLogPath = viper.GetString("research-log-path")
	if cfg.ResearchLogPath == "" {
		cfg.ResearchLogPath = contract.GetResearchLogPath()
	}

	retentionDays := viper.GetInt("retention-days")
	if retentionDays <= 0 {
		return fmt.Errorf("retention-days must be greater than 0 (received %d)", retentionDays)
	}
	cfg.RetentionDays = retentionDays

	return nil
}

// logSetupWrapper wraps logSetup to provide PreRunE for log commands.
func logSetupWrapper(_ *cobra.Command, _ []string) error {
	return logSetup()
}

// logCmd focused on research log management.
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the research action log",
	Long: `Manage the JSONL research log that records user actions.

When --research-log is enabled, every analysis run appends timestamped
events (color analyses, emotion entries, weekly views, feedback) to a
line-delimited JSON file for offline research.

Subcommands:
  prune - Drop events older than the retention window

Examples:
  # Prune with the default retention window
  tonelab log prune`,
}

// logPruneCmd drops research log events older than the retention window.
var logPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop research log events older than the retention window",
	Long: `Rewrite the research log keeping only events newer than the retention
window.

The log grows without bound while research logging is enabled; prune it
periodically to honor the dataset's retention policy. Events older than
--retention-days are dropped, newer events are kept byte-for-byte.

Examples:
  # Prune with the default retention window (365 days)
  tonelab log prune

  # Keep only the last 90 days
  tonelab log prune --retention-days 90

  # Prune an explicit log file
  tonelab log prune --research-log-path ./research_logs.jsonl`,
	PreRunE: logSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		removed, err := researchlog.Prune(cfg.ResearchLogPath, cfg.RetentionDays)
		if err != nil {
			contract.LogFatal("Failed to prune research log", err)
		}
		fmt.Printf("Pruned %d events older than %d days from %s.\n", removed, cfg.RetentionDays, cfg.ResearchLogPath)
	},
}
