// Package cmd defines the command-line interface for weightexile.
package cmd

import (
	"github.com/huangsam/weightexile/internal/contract"
	"github.com/huangsam/weightexile/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scalesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("stats-file", contract.DefaultStatsFile, "Path to the trade stat catalog (JSON)")
	rootCmd.PersistentFlags().String("items-file", contract.DefaultItemsFile, "Path to the trade items catalog (JSON)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("scales-override", "", "Per-stat scale overrides (format: 'id:scale,id:scale')")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Command flags are bound to Viper in sharedSetup, for the running command only
	weightsCmd.Flags().StringArray("stat", nil, "Selected stat as 'id:priority[:direction[:desiredMin]]' (repeatable)")
	groupCmd.Flags().StringArray("stat", nil, "Selected stat as 'id:priority[:direction[:desiredMin]]' (repeatable)")

	typesCmd.Flags().StringP("query", "q", "", "Only include bases whose name contains this text")
	typesCmd.Flags().StringP("type", "t", "", "Only include types whose name contains this text")

	statsCmd.Flags().StringP("query", "q", "", "Only include stats whose text or id contains this text")
	statsCmd.Flags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")

	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
}
