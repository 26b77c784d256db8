package cmd

import (
	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// feedbackCmd records a satisfaction rating for an earlier result.
var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Rate a color, emotion or recommendation result.",
	Long: `Record how well an earlier result matched the user's experience.

Feedback is appended to the observation store and exported alongside the
research dataset, closing the loop between what tonelab predicted and how it
landed. Ratings run 1 (poor) to 5 (excellent) and attach to one of the
result types: color_result, emotion_map, healing_color or recommendation.

Examples:
  # Rate a color classification
  tonelab feedback --user juno --rating 4 --target-type color_result --target-id result-1

  # Rate today's healing color with a comment
  tonelab feedback --user juno --rating 5 --target-type healing_color \
    --target-id 2025-06-02 --comment "톤이 정확해요"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		rating := viper.GetInt("rating")
		targetType := viper.GetString("target-type")
		targetID := viper.GetString("target-id")
		comment := viper.GetString("comment")
		if err := core.ExecuteFeedback(rootCtx, cfg, storeManager, rating, targetType, targetID, comment); err != nil {
			contract.LogFatal("Cannot record feedback", err)
		}
	},
}
