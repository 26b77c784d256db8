package cmd

import (
	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// recommendCmd suggests fashion, food and activity items for a color.
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend fashion, food and activities for a color.",
	Long: `Suggest fashion items, foods and activities matched to a color.

By default the color comes from the user's stored profile: the season picks
the recommendation pool and the palette's first color anchors the set. Pass
--hex to get recommendations for an arbitrary color instead; the hex value
is mapped to its nearest seasonal palette first.

Examples:
  # Recommendations for the stored profile
  tonelab recommend --user juno

  # Recommendations for an explicit color
  tonelab recommend --hex "#E6E6FA"

  # CSV export of the full set
  tonelab recommend --user juno --output csv --output-file recs.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if hex := viper.GetString("hex"); hex != "" {
			if err := core.ExecuteRecommendationsByColor(rootCtx, cfg, storeManager, hex); err != nil {
				contract.LogFatal("Cannot build recommendations", err)
			}
			return
		}
		if err := core.ExecuteRecommendations(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build recommendations", err)
		}
	},
}
