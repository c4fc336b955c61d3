package cmd

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// Build metadata, overridden at link time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = time.Now().Format(time.RFC3339)
)

const releaseSlug = "unitgraph/unitgraph"

// VersionCommand represents the version command.
type VersionCommand struct{}

// GetCobraCommand returns the cobra command printing version information.
func (c *VersionCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("unitgraph version %s\n", Version)
			cmd.Printf("  commit: %s\n", Commit)
			cmd.Printf("  built: %s\n", Date)
			cmd.Printf("  go: %s\n", runtime.Version())

			checkForUpdates(cmd)
		},
	}
}

func checkForUpdates(cmd *cobra.Command) {
	if Version == "dev" {
		cmd.Println("\nSkipping update check for development build")
		return
	}

	cmd.Println("\nChecking for updates...")

	latest, found, err := selfupdate.DetectLatest(context.Background(), selfupdate.ParseSlug(releaseSlug))
	if err != nil {
		cmd.Printf("Failed to check for updates: %v\n", err)
		return
	}

	if !found {
		cmd.Println("No release found")
		return
	}

	if latest.LessOrEqual(Version) {
		cmd.Println("You are using the latest version.")
		return
	}

	fmt.Printf("Update available! New version: %s\n", latest.Version())
	fmt.Println("Run 'unitgraph update' to update to the latest version.")
}
