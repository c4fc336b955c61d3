// Package cmd provides the command line interface for unitgraph
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unitgraph/unitgraph/internal/catalog"
	"github.com/unitgraph/unitgraph/internal/config"
	"github.com/unitgraph/unitgraph/internal/log"
)

// RootCommand represents the root command for the unitgraph CLI.
type RootCommand struct{}

var (
	cfg             *config.Settings
	configFilePath  string
	conversionsFile string
	cacheDBPath     string
	asciiOutput     bool
	verbose         bool
)

// GetCobraCommand returns the cobra root command for the unitgraph CLI.
func (c *RootCommand) GetCobraCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unitgraph",
		Short: "Unitgraph converts between compound physical units.",
		Long: `Unitgraph parses compound unit expressions, derives conversion factors
between them by searching a registered conversion graph, and tracks the
floating point error accumulated along the way.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFilePath != "" {
				config.SetConfigFilePath(configFilePath)
			}
			cfg = config.InitConfig()
			log.Init(verbose)

			if verbose {
				fmt.Printf("%s using config: %s\n\n", cmd.Root().Use, viper.GetViper().ConfigFileUsed())
				cfg.Verbose = verbose
			}

			if asciiOutput {
				cfg.Unicode = false
			}
			if conversionsFile != "" {
				cfg.ConversionsFile = conversionsFile
			}
			if cacheDBPath != "" {
				cfg.CacheDBPath = cacheDBPath
			}

			if err := catalog.Load(); err != nil {
				return err
			}

			if cfg.ConversionsFile != "" {
				if err := catalog.LoadCustomConversions(cfg.ConversionsFile); err != nil {
					return err
				}
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&asciiOutput, "ascii", false, "Render unit symbols in ASCII")
	rootCmd.PersistentFlags().StringVar(&configFilePath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&conversionsFile, "conversions-file", "", "Path to a custom conversions file")
	rootCmd.PersistentFlags().StringVar(&cacheDBPath, "db-path", "", "Path to the factor cache database")

	rootCmd.AddCommand(
		(&ConvertCommand{}).GetCobraCommand(),
		(&ParseCommand{}).GetCobraCommand(),
		(&UnitsCommand{}).GetCobraCommand(),
		(&CacheCommand{}).GetCobraCommand(),
		(&ConfigCommand{}).GetCobraCommand(),
		(&UpdateCommand{}).GetCobraCommand(),
		(&VersionCommand{}).GetCobraCommand(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := (&RootCommand{}).GetCobraCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
