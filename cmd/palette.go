package cmd

import (
	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/spf13/cobra"
)

// paletteCmd resolves and displays a seasonal palette.
var paletteCmd = &cobra.Command{
	Use:   "palette [season] [subtype]",
	Short: "Show the color palette for a season or the stored profile.",
	Long: `Resolve a five-color palette with names, hex codes and descriptions.

Without arguments the palette comes from the user's stored color profile
(or the neutral default when no analysis has been run yet). Passing a season
selects that season's palette directly; the subtype defaults to the season's
canonical one when omitted.

Palettes fall back along subtype -> tone -> neutral, so every season and
subtype combination resolves to something wearable.

Examples:
  # Palette for the stored profile
  tonelab palette --user juno

  # Summer with its default (cool) subtype
  tonelab palette summer

  # Autumn deep, JSON output
  tonelab palette autumn deep --output json`,
	Args:    cobra.MaximumNArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		var season, subtype string
		if len(args) > 0 {
			season = args[0]
		}
		if len(args) > 1 {
			subtype = args[1]
		}
		if err := core.ExecutePalette(rootCtx, cfg, storeManager, season, subtype); err != nil {
			contract.LogFatal("Cannot resolve palette", err)
		}
	},
}
