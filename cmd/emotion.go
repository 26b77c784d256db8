package cmd

import (
	"strings"

	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/spf13/cobra"
)

// emotionCmd scores a diary entry along the tracked emotion axes.
var emotionCmd = &cobra.Command{
	Use:   "emotion <text>",
	Short: "Score diary text along the five emotion axes.",
	Long: `Analyze free text and score it 0-100 on anxiety, stress, satisfaction,
happiness and depression.

The scorer is keyword-driven with negation handling ("not happy" flips the
axis) and an emphasis boost for repeated punctuation. Provider-style scorers
returning malformed output degrade to the keyword baseline instead of
failing. The entry is appended to the user's history and the dominant axis
selects matching healing colors.

Quote multi-word text or let the shell pass the words through; all positional
arguments are joined into one entry.

Examples:
  # Score a diary entry for the default user
  tonelab emotion "발표를 망쳐서 너무 불안하고 속상해"

  # Score for a specific user with CSV output
  tonelab emotion "오늘은 정말 행복한 하루였다" --user juno --output csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		if err := core.ExecuteEmotionAnalysis(rootCtx, cfg, storeManager, text); err != nil {
			contract.LogFatal("Cannot run emotion analysis", err)
		}
	},
}
