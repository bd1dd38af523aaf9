package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const sampleLog = `{"level":"debug","ts":1700000000.5,"logger":"tracking","msg":"panel positioned","corner":"belowRight"}
{"level":"info","ts":1700000001,"logger":"app","msg":"application starting"}
not json
{"level":"warn","ts":1700000002,"logger":"config","msg":"config reload rejected"}
`

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "popover.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunLogs_Filters(t *testing.T) {
	path := writeLog(t, sampleLog)

	tests := []struct {
		name      string
		args      []string
		wantLines int
		wantText  string
	}{
		{"all", nil, 3, "[tracking] panel positioned corner=belowRight"},
		{"scope", []string{"--scope", "config"}, 1, "config reload rejected"},
		{"level", []string{"--level", "info"}, 2, "application starting"},
		{"last n", []string{"-n", "1"}, 1, "config reload rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := RunLogs(context.Background(), tt.args, path, buf); err != nil {
				t.Fatalf("RunLogs: %v", err)
			}
			out := strings.TrimSpace(buf.String())
			lines := strings.Split(out, "\n")
			if len(lines) != tt.wantLines {
				t.Errorf("got %d lines, want %d:\n%s", len(lines), tt.wantLines, out)
			}
			if !strings.Contains(out, tt.wantText) {
				t.Errorf("output missing %q:\n%s", tt.wantText, out)
			}
		})
	}
}

func TestRunLogs_MissingFile(t *testing.T) {
	err := RunLogs(context.Background(), nil, filepath.Join(t.TempDir(), "none.log"), &bytes.Buffer{})
	if err == nil {
		t.Error("expected an error for a missing log file")
	}
}

// syncBuffer is a bytes.Buffer safe to read while TailLogs writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestTailLogs_Follow(t *testing.T) {
	path := writeLog(t, sampleLog)
	out := &syncBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- TailLogs(ctx, LogsConfig{
			Path:     path,
			Follow:   true,
			Interval: 10 * time.Millisecond,
			Writer:   out,
		})
	}()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	// Written in two parts: the partial line must wait for its newline.
	_, _ = f.WriteString(`{"level":"info","ts":1700000003,"logger":"tui","msg":"menu `)
	time.Sleep(30 * time.Millisecond)
	_, _ = f.WriteString("item chosen\"}\n")
	_ = f.Close()

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), "menu item chosen") {
		if time.Now().After(deadline) {
			t.Fatalf("appended entry never printed:\n%s", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("TailLogs returned %v, want nil", err)
	}
}

func TestTailLogs_Rotation(t *testing.T) {
	path := writeLog(t, sampleLog)
	out := &syncBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = TailLogs(ctx, LogsConfig{Path: path, Follow: true, Interval: 10 * time.Millisecond, Writer: out})
	}()

	time.Sleep(30 * time.Millisecond)
	rotated := `{"level":"info","ts":1700000009,"logger":"app","msg":"fresh file"}` + "\n"
	if err := os.WriteFile(path, []byte(rotated), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), "fresh file") {
		if time.Now().After(deadline) {
			t.Fatalf("rotated file never read:\n%s", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
