// pattern: Imperative Shell
package cli

import (
	"fmt"
	"io"

	"popover/internal/config"
)

// RegisterConfigCommands adds the config subcommands to group.
func RegisterConfigCommands(group *Group, configDir string, w io.Writer) {
	path := config.Path(configDir)

	group.AddCommand(&Command{
		Name:    "path",
		Summary: "Print the config file location",
		Usage:   "Usage: popover config path",
		Run: func(args []string) error {
			_, err := fmt.Fprintln(w, path)
			return err
		},
	})

	group.AddCommand(&Command{
		Name:    "check",
		Summary: "Load and validate the config file",
		Usage:   "Usage: popover config check",
		Run: func(args []string) error {
			return runConfigCheck(path, w)
		},
	})

	group.AddCommand(&Command{
		Name:    "init",
		Summary: "Write the default config if none exists",
		Usage:   "Usage: popover config init",
		Run: func(args []string) error {
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "wrote %s\n", path)
			return err
		},
	})
}

func runConfigCheck(path string, w io.Writer) error {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s is invalid:\n%w", path, err)
	}
	_, err = fmt.Fprintf(w, "%s: ok (theme %s, breakpoint %d, gap %s)\n", path, cfg.Theme, cfg.Breakpoint, cfg.Gap)
	return err
}
