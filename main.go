// pattern: Imperative Shell
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"popover/internal/cli"
	"popover/internal/config"
	"popover/internal/instance"
	"popover/internal/logging"
	"popover/internal/tui"
)

var version = "dev"

// options are the command-line overrides. Zero values mean "use the config".
type options struct {
	configDir  string
	logFile    string
	logLevel   string
	gap        string
	breakpoint int
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("popover", flag.ContinueOnError)
	// Stop at the first non-flag arg (the subcommand) so subcommands parse
	// their own flags.
	fs.SetInterspersed(false)
	fs.StringVarP(&opts.configDir, "config-dir", "c", "", "config directory (default: ~/.config/popover)")
	fs.StringVar(&opts.logFile, "log-file", "", "log file path (default: <config-dir>/popover.log)")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&opts.gap, "gap", "", "menu gap as a spacing step key (1-8)")
	fs.IntVar(&opts.breakpoint, "breakpoint", 0, "terminal width at which the menu becomes a sheet")
	return fs
}

func main() {
	var opts options
	fs := newFlagSet(&opts)
	fs.Usage = func() {
		cli.BuildApp(version, opts.configDir).PrintHelp(os.Stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	app := cli.BuildApp(version, opts.configDir)
	if app.Execute(fs.Args()) {
		runTUI(fs, opts)
	}
}

// loadConfig loads the configuration from the specified directory or default location.
func loadConfig(configDir string) (config.Config, error) {
	if configDir != "" {
		return config.LoadFromDir(configDir)
	}
	return config.Load()
}

// applyOverrides copies flags the user actually set onto cfg.
func applyOverrides(cfg *config.Config, fs *flag.FlagSet, opts options) {
	if fs.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if fs.Changed("gap") {
		cfg.Gap = opts.gap
	}
	if fs.Changed("breakpoint") {
		cfg.Breakpoint = opts.breakpoint
	}
}

// runTUI launches the interactive demo.
func runTUI(fs *flag.FlagSet, opts options) {
	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
	applyOverrides(&cfg, fs, opts)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir := cli.ResolveDataDir(opts.configDir)
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = cli.DefaultLogPath(opts.configDir)
	}

	// Only one process writes the rotated file; others log to the panel only.
	fl, err := instance.Lock(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; file logging disabled\n", err)
		logPath = ""
	}
	defer instance.Release(fl)

	logManager, err := logging.NewManager(logging.Config{
		FilePath:   logPath,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		BufferSize: 1000,
		Level:      cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Info("application starting", "version", version, "breakpoint", cfg.Breakpoint, "gap", cfg.Gap)

	model := tui.NewModel(&cfg, logManager)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watchConfig(ctx, p, fs, opts, logManager)

	if _, err := p.Run(); err != nil {
		appLogger.Error("application exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	appLogger.Info("application stopped")
}

// watchConfig forwards config file changes to the running program until ctx
// is cancelled. Command-line overrides are reapplied to every reload.
func watchConfig(ctx context.Context, p *tea.Program, fs *flag.FlagSet, opts options, logProvider logging.LoggerProvider) {
	logger := logProvider.For("config")
	err := config.Watch(ctx, config.Path(opts.configDir), logger, func(c config.Config) {
		applyOverrides(&c, fs, opts)
		p.Send(tui.ConfigReloadedMsg{Config: c})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("config watcher stopped", "error", err)
	}
}
