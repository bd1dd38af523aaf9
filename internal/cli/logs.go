// pattern: Imperative Shell
package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"popover/internal/logging"
)

const logsUsage = `Usage: popover logs [options]

Prints entries from the demo's rotated log file.

Options:
  --scope PREFIX   only entries whose scope starts with PREFIX (e.g. tracking)
  --level LEVEL    minimum level: debug, info, warn, error (default debug)
  -n, --lines N    print only the last N matching entries (default 50, 0 = all)
  -f, --follow     keep printing new entries until interrupted
  --file PATH      read this file instead of the default log`

// LogsConfig configures RunLogs after flag parsing.
type LogsConfig struct {
	Path     string
	Scope    string
	MinLevel string
	Lines    int
	Follow   bool
	Interval time.Duration
	Writer   io.Writer
}

// RunLogs parses args and prints matching entries from defaultPath.
func RunLogs(ctx context.Context, args []string, defaultPath string, w io.Writer) error {
	fs := flag.NewFlagSet("logs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg := LogsConfig{Writer: w, Interval: 500 * time.Millisecond}
	fs.StringVar(&cfg.Scope, "scope", "", "")
	fs.StringVar(&cfg.MinLevel, "level", "debug", "")
	fs.IntVarP(&cfg.Lines, "lines", "n", 50, "")
	fs.BoolVarP(&cfg.Follow, "follow", "f", false, "")
	fs.StringVar(&cfg.Path, "file", defaultPath, "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return TailLogs(ctx, cfg)
}

// TailLogs prints the last cfg.Lines matching entries, then, when following,
// polls the file for appended entries. A file that shrinks is assumed
// rotated and is read again from the start. Returns nil when ctx is done.
func TailLogs(ctx context.Context, cfg LogsConfig) error {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, offset, err := readEntries(f, 0, cfg)
	if err != nil {
		return err
	}
	if cfg.Lines > 0 && len(entries) > cfg.Lines {
		entries = entries[len(entries)-cfg.Lines:]
	}
	for _, e := range entries {
		_, _ = fmt.Fprintln(cfg.Writer, e.String())
	}

	if !cfg.Follow {
		return nil
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(cfg.Path)
			if err != nil {
				continue
			}
			if info.Size() < offset {
				// Rotated: reopen the new file.
				_ = f.Close()
				if f, err = os.Open(cfg.Path); err != nil {
					return fmt.Errorf("reopening log file: %w", err)
				}
				offset = 0
			}
			if info.Size() == offset {
				continue
			}

			var fresh []logging.LogEntry
			fresh, offset, err = readEntries(f, offset, cfg)
			if err != nil {
				return err
			}
			for _, e := range fresh {
				_, _ = fmt.Fprintln(cfg.Writer, e.String())
			}
		}
	}
}

// readEntries decodes complete lines from offset on and returns the offset
// just past the last complete line.
func readEntries(f *os.File, offset int64, cfg LogsConfig) ([]logging.LogEntry, int64, error) {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, offset, fmt.Errorf("seeking log file: %w", err)
	}

	minRank := levelRank(logging.ParseLevel(cfg.MinLevel))
	var out []logging.LogEntry
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if err == io.EOF {
			// A partial line is left for the next poll.
			return out, offset, nil
		}
		if err != nil {
			return out, offset, fmt.Errorf("reading log file: %w", err)
		}
		offset += int64(len(line))

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		e, err := logging.ParseEntry(line)
		if err != nil {
			continue
		}
		if !e.MatchesScope(cfg.Scope) || levelRank(e.Level) < minRank {
			continue
		}
		out = append(out, e)
	}
}

func levelRank(level string) int {
	switch level {
	case "DEBUG":
		return 0
	case "WARN":
		return 2
	case "ERROR":
		return 3
	default:
		return 1
	}
}
