package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigCommand represents the config command group.
type ConfigCommand struct{}

// GetCobraCommand returns the cobra command for configuration operations.
func (c *ConfigCommand) GetCobraCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage unitgraph configuration",
	}

	configCmd.AddCommand((&ConfigShowCommand{}).GetCobraCommand())

	return configCmd
}

// ConfigShowCommand represents the config show command.
type ConfigShowCommand struct{}

// GetCobraCommand returns the cobra command for config show operations.
func (c *ConfigShowCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  "Display the current configuration including defaults and overrides",
		Run: func(cmd *cobra.Command, _ []string) {
			output, err := yaml.Marshal(cfg)
			if err != nil {
				fmt.Printf("Error marshalling config: %v\n", err)
				return
			}
			cmd.Println(string(output))
		},
	}
}
