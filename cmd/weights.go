package cmd

import (
	"github.com/huangsam/weightexile/core"
	"github.com/spf13/cobra"
)

// weightsCmd computes normalized weights and the suggested minimum.
var weightsCmd = &cobra.Command{
	Use:   "weights [selection-file]",
	Short: "Show normalized weights and the suggested minimum for a stat selection.",
	Long: `Normalize the priorities of the selected stats into integer weights and
suggest the minimum total weight a matching item must reach.

Each stat scores priority / scale, where the scale reflects how large typical
rolls of that stat are. Scores are normalized to roughly 100 in total, with every
stat getting at least 1. The minimum is the weighted sum of desired rolls when any
at-least stat has one, and half of the total weight otherwise.

Stats come from a YAML or JSON selection file and/or repeated --stat flags.

Examples:
  # Weights for a selection file
  weightexile weights build.yaml

  # Weights from flags (id:priority[:direction[:desiredMin]])
  weightexile weights --stat pseudo.pseudo_total_life:5:at-least:90 \
    --stat pseudo.pseudo_total_fire_resistance:3

  # Override the scale of a stat
  weightexile weights build.yaml --scales-override pseudo.pseudo_total_life:80

  # Export to Parquet for analysis
  weightexile weights build.yaml --output parquet --output-file weights.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: selectionSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("weights", func() error {
			return core.ExecuteWeights(rootCtx, cfg, cacheManager)
		})
	},
}

// groupCmd prints the filter group document.
var groupCmd = &cobra.Command{
	Use:   "group [selection-file]",
	Short: "Print the weight2 filter group document for a stat selection.",
	Long: `Build the weighted-sum stat group accepted by the trade site.

The output is always JSON, regardless of --output:

  {"type": "weight2", "min": 51, "filters": [
    {"id": "pseudo.pseudo_total_life", "disabled": false, "value": {"weight": 68}}
  ]}

Examples:
  # Print the group for a selection file
  weightexile group build.yaml

  # Write it to a file
  weightexile group build.yaml --output-file group.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: selectionSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("group", func() error {
			return core.ExecuteGroup(rootCtx, cfg, cacheManager)
		})
	},
}
