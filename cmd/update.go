package cmd

import (
	"context"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// UpdateCommand represents the update command.
type UpdateCommand struct{}

// GetCobraCommand returns the cobra command for self-updating.
func (c *UpdateCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update unitgraph to the latest version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("Current version: %s\n", Version)

			if Version == "dev" {
				cmd.Println("Update check skipped for dev version")
				return nil
			}

			cmd.Println("Checking for updates...")

			latest, found, err := selfupdate.DetectLatest(context.Background(), selfupdate.ParseSlug(releaseSlug))
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if !found {
				cmd.Println("No release found")
				return nil
			}

			if latest.LessOrEqual(Version) {
				cmd.Println("You are already running the latest version.")
				return nil
			}

			cmd.Printf("Update available! New version: %s\n", latest.Version())
			cmd.Println("Downloading and applying update...")

			exe, err := selfupdate.ExecutablePath()
			if err != nil {
				return fmt.Errorf("failed to get executable path: %w", err)
			}

			if err := selfupdate.UpdateTo(context.Background(), latest.AssetURL, latest.AssetName, exe); err != nil {
				return fmt.Errorf("failed to update: %w", err)
			}

			cmd.Println("Update completed successfully! Please restart unitgraph to use the new version.")
			return nil
		},
	}
}
