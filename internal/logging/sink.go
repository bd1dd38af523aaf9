// pattern: Imperative Shell

package logging

import (
	"encoding/json"
	"errors"
	"sync"
	"time"
)

var errSinkClosed = errors.New("write to closed channel sink")

// ChannelSink is a zapcore.WriteSyncer that decodes each JSON line into a
// LogEntry and queues it. When the queue is full the oldest entry is dropped.
type ChannelSink struct {
	entries chan LogEntry

	mu     sync.Mutex
	closed bool
}

// NewChannelSink creates a sink buffering up to size entries.
func NewChannelSink(size int) *ChannelSink {
	if size < 1 {
		size = 1
	}
	return &ChannelSink{entries: make(chan LogEntry, size)}
}

func (s *ChannelSink) Write(p []byte) (int, error) {
	entry, err := ParseEntry(p)
	if err != nil {
		// Undecodable lines are skipped so logging never blocks on them.
		return len(p), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, errSinkClosed
	}

	for {
		select {
		case s.entries <- entry:
			return len(p), nil
		default:
		}
		select {
		case <-s.entries:
		default:
		}
	}
}

func (s *ChannelSink) Sync() error { return nil }

// Close closes the entry channel. Further writes fail.
func (s *ChannelSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.entries)
	}
	return nil
}

// Entries returns the receive side of the queue.
func (s *ChannelSink) Entries() <-chan LogEntry {
	return s.entries
}

// Drain returns up to limit queued entries without blocking.
func (s *ChannelSink) Drain(limit int) []LogEntry {
	var out []LogEntry
	for len(out) < limit {
		select {
		case e, ok := <-s.entries:
			if !ok {
				return out
			}
			out = append(out, e)
		default:
			return out
		}
	}
	return out
}

// ParseEntry decodes one JSON log line as written by the file and channel cores.
func ParseEntry(data []byte) (LogEntry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return LogEntry{}, err
	}

	e := LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Scope:     "app",
		Fields:    make(map[string]any),
	}
	if v, ok := raw["msg"].(string); ok {
		e.Message = v
	}
	if v, ok := raw["level"].(string); ok {
		e.Level = ParseLevel(v)
	}
	if v, ok := raw["logger"].(string); ok {
		e.Scope = v
	}
	if v, ok := raw["ts"].(float64); ok {
		sec := int64(v)
		e.Timestamp = time.Unix(sec, int64((v-float64(sec))*1e9))
	}

	for k, v := range raw {
		switch k {
		case "msg", "level", "logger", "ts", "caller", "stacktrace":
		default:
			e.Fields[k] = v
		}
	}
	return e, nil
}
