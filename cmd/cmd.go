// Package cmd defines the command-line interface for tonelab.
package cmd

import (
	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(emotionCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(healingCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(logCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Add the log subcommands to the parent log command
	logCmd.AddCommand(logPruneCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("user", "u", "default", "User the operation applies to")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of history entries to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("week", "current", "Week to target: 'current', 'last' or a 2006-01-02 date")
	rootCmd.PersistentFlags().String("aggregate-ttl", "", "Staleness bound for memoized weekly aggregates (e.g. 72h; empty = never stale)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Memo cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Observation store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for the observation store (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("research-log", "no", "Record analysis events to the research log (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("research-log-path", "", "Path of the research log file")
	rootCmd.PersistentFlags().Int("retention-days", contract.DefaultRetentionDays, "Days of research log history to keep when pruning")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of colorCmd to Viper
	colorCmd.Flags().String("season", "", "Record a season directly instead of analyzing an image")
	colorCmd.Flags().String("subtype", "", "Subtype for --season: warm, cool, clear, soft, deep, light")
	colorCmd.Flags().String("lab", "", "Classify from measured Lab values as 'L,b' on the 0-255 scale (e.g. '182,150')")
	if err := viper.BindPFlags(colorCmd.Flags()); err != nil {
		contract.LogFatal("Error binding color flags", err)
	}

	// Bind all flags of recommendCmd to Viper
	recommendCmd.Flags().String("hex", "", "Recommend for an explicit hex color instead of the stored profile")
	if err := viper.BindPFlags(recommendCmd.Flags()); err != nil {
		contract.LogFatal("Error binding recommend flags", err)
	}

	// Bind all flags of feedbackCmd to Viper
	feedbackCmd.Flags().Int("rating", 0, "Rating from 1 (poor) to 5 (excellent)")
	feedbackCmd.Flags().String("target-type", "", "What the feedback is about: color_result, emotion_map, healing_color, recommendation")
	feedbackCmd.Flags().String("target-id", "", "Identifier of the result being rated")
	feedbackCmd.Flags().String("comment", "", "Optional free-form comment")
	if err := viper.BindPFlags(feedbackCmd.Flags()); err != nil {
		contract.LogFatal("Error binding feedback flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
