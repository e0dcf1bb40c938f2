package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coreupdater",
		Short: "Build the list of cores offered by the core updater",
		Long: `Coreupdater reads a buildbot core listing, or the names of cores
delivered through play feature delivery, and builds the core updater
list: every core with its remote and local paths, core info metadata,
release date and CRC, sorted into manufacturer and console groups.

Settings can be given as flags, as COREUPDATER_* environment variables
or in a YAML, JSON or TOML file passed with --config.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (yaml, json or toml)")

	// Add subcommands
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewLookupCmd())

	return rootCmd
}
