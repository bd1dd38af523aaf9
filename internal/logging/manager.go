// pattern: Imperative Shell

package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where log entries go.
type Config struct {
	FilePath   string // Rotated JSON log file; empty disables file output
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Level      string // debug, info, warn, error
	BufferSize int    // Entries buffered for the in-app log panel
}

// Manager fans log entries out to a rotated file and to a ChannelSink the
// TUI drains into its log panel.
type Manager struct {
	base  *zap.Logger
	sink  *ChannelSink
	file  *lumberjack.Logger
	level zapcore.Level

	mu      sync.RWMutex
	loggers map[string]*ScopedLogger
}

// NewManager builds a Manager from cfg, filling in defaults.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 500
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 5
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 7
	}

	level := ParseZapLevel(cfg.Level)
	sink := NewChannelSink(cfg.BufferSize)
	cores := []zapcore.Core{newJSONCore(zapcore.AddSync(sink), level)}

	var file *lumberjack.Logger
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		cores = append(cores, newJSONCore(zapcore.AddSync(file), level))
	}

	return &Manager{
		base:    zap.New(zapcore.NewTee(cores...)),
		sink:    sink,
		file:    file,
		level:   level,
		loggers: make(map[string]*ScopedLogger),
	}, nil
}

// NewTestLogManager returns a channel-only Manager at debug level.
func NewTestLogManager(bufferSize int) *Manager {
	m, _ := NewManager(Config{Level: "debug", BufferSize: bufferSize})
	return m
}

func newJSONCore(ws zapcore.WriteSyncer, level zapcore.Level) zapcore.Core {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.EpochTimeEncoder
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(enc), ws, level)
}

// ParseZapLevel maps a level name to a zap level, defaulting to info.
func ParseZapLevel(name string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// For returns the cached logger for scope, creating it on first use.
func (m *Manager) For(scope string) *ScopedLogger {
	m.mu.RLock()
	l, ok := m.loggers[scope]
	m.mu.RUnlock()
	if ok {
		return l
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.loggers[scope]; ok {
		return l
	}

	l = &ScopedLogger{
		slog:  slog.New(&zapHandler{zap: m.base.Named(scope), level: m.level}),
		scope: scope,
	}
	m.loggers[scope] = l
	return l
}

// Forget drops cached loggers under prefix, e.g. when a panel is torn down.
func (m *Manager) Forget(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for scope := range m.loggers {
		if strings.HasPrefix(scope, prefix) {
			delete(m.loggers, scope)
		}
	}
}

// Entries is the stream consumed by the log panel.
func (m *Manager) Entries() <-chan LogEntry {
	return m.sink.Entries()
}

// Sink exposes the channel sink.
func (m *Manager) Sink() *ChannelSink {
	return m.sink
}

// Sync flushes buffered output.
func (m *Manager) Sync() error {
	return m.base.Sync()
}

// Close flushes and releases the file and the channel.
func (m *Manager) Close() error {
	_ = m.Sync()
	_ = m.sink.Close()
	if m.file != nil {
		return m.file.Close()
	}
	return nil
}
