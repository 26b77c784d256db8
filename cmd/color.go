package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// colorCmd classifies a user's personal color from an image or direct input.
var colorCmd = &cobra.Command{
	Use:   "color [image-path]",
	Short: "Classify a facial image into a seasonal personal color.",
	Long: `Classify skin tone into one of the four seasons with a tonal subtype.

The image pipeline decodes the photo, segments skin pixels, converts them to
the CIELAB color space and maps warmth (b*) and lightness (L*) onto a seasonal
classification. Degraded inputs never fail the run: undecodable files, empty
masks and failed segmentation all produce a neutral fallback profile with a
recorded reason.

The resulting profile is stored per user (latest wins) and drives the palette,
healing and recommendation commands.

Skip the image entirely with --season (plus optional --subtype) to record a
known result, or with --lab to classify from measured Lab values on the
8-bit scale.

Examples:
  # Classify a photo for the default user
  tonelab color selfie.jpg

  # Classify for a specific user and print JSON
  tonelab color selfie.jpg --user juno --output json

  # Record a known season without an image
  tonelab color --season summer --subtype cool --user juno

  # Classify from measured L*/b* values (0-255 scale)
  tonelab color --lab "182,150" --user juno`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		season := viper.GetString("season")
		lab := viper.GetString("lab")

		switch {
		case lab != "":
			l, b, err := parseLabPair(lab)
			if err != nil {
				contract.LogFatal("Cannot run color analysis", err)
			}
			if err := core.ExecuteLabEntry(rootCtx, cfg, storeManager, l, b); err != nil {
				contract.LogFatal("Cannot run color analysis", err)
			}
		case season != "":
			if err := core.ExecuteColorEntry(rootCtx, cfg, storeManager, season, viper.GetString("subtype")); err != nil {
				contract.LogFatal("Cannot run color analysis", err)
			}
		case len(args) == 1:
			if err := core.ExecuteColorAnalysis(rootCtx, cfg, storeManager, args[0]); err != nil {
				contract.LogFatal("Cannot run color analysis", err)
			}
		default:
			contract.LogFatal("Cannot run color analysis", errors.New("an image path, --season or --lab is required"))
		}
	},
}

// parseLabPair splits an "L,b" pair into its numeric components.
func parseLabPair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected --lab in 'L,b' form (e.g. '182,150'), got %q", s)
	}
	l, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid L value %q: %w", parts[0], err)
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid b value %q: %w", parts[1], err)
	}
	return l, b, nil
}
