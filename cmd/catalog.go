package cmd

import (
	"github.com/huangsam/weightexile/core"
	"github.com/spf13/cobra"
)

// typesCmd groups item bases by type.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List item bases from the items catalog grouped by type.",
	Long: `Read the items catalog and bucket every non-unique base type by item type
(Helmet, Ring, Body Armour, ...). Bases and types are sorted by name.

Examples:
  # All bases by type
  weightexile types

  # Only bases whose name contains "ring"
  weightexile types --query ring

  # Only the helmet bucket, as CSV
  weightexile types --type helmet --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("types", func() error {
			return core.ExecuteTypes(rootCtx, cfg, cacheManager)
		})
	},
}

// classifyCmd classifies base names given on the command line.
var classifyCmd = &cobra.Command{
	Use:   "classify <base>...",
	Short: "Classify item base names into item types.",
	Long: `Map each base name to its item type using ordered matching rules.
Names no rule recognises fall back to their last word.

Examples:
  weightexile classify "Hubris Circlet" "Two-Stone Ring"`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		runExecutor("classify", func() error {
			return core.ExecuteClassify(rootCtx, cfg, args)
		})
	},
}

// statsCmd searches the stat catalog.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Search the stat catalog by text or id.",
	Long: `Find stat ids to use in selections. The query matches stat text or id,
case-insensitively.

Examples:
  # Stats mentioning maximum life
  weightexile stats --query "maximum life"

  # First 100 pseudo stats as JSON
  weightexile stats --query pseudo --limit 100 --output json`,
	Args:    cobra.NoArgs,
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("stats", func() error {
			return core.ExecuteStats(rootCtx, cfg, cacheManager)
		})
	},
}

// scalesCmd shows the scale table.
var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Show the active scale table used to normalize weights.",
	Long: `Display the scale rules in resolution order: custom overrides from the config
file or --scales-override, built-in pseudo stat overrides, keyword rules matched
against stat text, and the default.

Examples:
  weightexile scales
  weightexile scales --scales-override explicit.stat_3299347043:80`,
	Args:    cobra.NoArgs,
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("scales", func() error {
			return core.ExecuteScales(rootCtx, cfg, cacheManager)
		})
	},
}
