// pattern: Imperative Shell
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"popover/internal/config"
)

// ResolveDataDir returns the directory holding the lock and log files.
// If configDir is specified, uses that; otherwise the default config dir.
func ResolveDataDir(configDir string) string {
	if configDir != "" {
		return configDir
	}
	return config.DefaultDir()
}

// DefaultLogPath is where the demo writes its rotated log.
func DefaultLogPath(configDir string) string {
	return filepath.Join(ResolveDataDir(configDir), "popover.log")
}

// BuildApp creates and configures the CLI application with all commands and groups.
func BuildApp(version string, configDir string) *App {
	app := NewApp(version)

	app.AddCommand(&Command{
		Name:    "place",
		Summary: "Compute a menu placement and print the offsets",
		Usage:   placeUsage,
		Run: func(args []string) error {
			return RunPlace(args, os.Stdout)
		},
	})

	app.AddCommand(&Command{
		Name:    "logs",
		Summary: "Print (or follow) the demo's log file",
		Usage:   logsUsage,
		Run: func(args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return RunLogs(ctx, args, DefaultLogPath(configDir), os.Stdout)
		},
	})

	app.AddCommand(&Command{
		Name:    "version",
		Summary: "Print version and exit",
		Usage:   "Usage: popover version",
		Run: func(args []string) error {
			fmt.Println(version)
			return nil
		},
	})

	configGroup := app.AddGroup("config", "Inspect and create the config file")
	RegisterConfigCommands(configGroup, configDir, os.Stdout)

	return app
}
