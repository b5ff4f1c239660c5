package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

// replaceFile atomically replaces p with content, the way editors save.
func replaceFile(t *testing.T, p, content string) {
	t.Helper()
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		t.Fatalf("rename config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	p := writeConfig(t, "{}\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("http_port: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Generator.DefaultLength != DefaultLength {
		t.Errorf("generator.default_length: got %d, want %d", cfg.Generator.DefaultLength, DefaultLength)
	}
	if cfg.Generator.MinLength != DefaultMinLength {
		t.Errorf("generator.min_length: got %d, want %d", cfg.Generator.MinLength, DefaultMinLength)
	}
	if cfg.History.Size != DefaultHistorySize {
		t.Errorf("history.size: got %d, want %d", cfg.History.Size, DefaultHistorySize)
	}
	if cfg.Tip.Title != DefaultTipTitle {
		t.Errorf("tip.title: got %q, want %q", cfg.Tip.Title, DefaultTipTitle)
	}
	if cfg.Server.WSInterval != DefaultWSInterval {
		t.Errorf("ws_interval: got %v, want %v", cfg.Server.WSInterval, DefaultWSInterval)
	}
}

func TestLoad_Full(t *testing.T) {
	p := writeConfig(t, `server:
  http_port: 8081
  shutdown_timeout: 3s
  ws_interval: 250ms
log:
  level: debug
generator:
  default_length: 20
  min_length: 10
  max_length: 64
history:
  size: 10
tip:
  title: "Use a manager"
  content: "Let a password manager remember them."
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 8081 {
		t.Errorf("http_port: got %d, want 8081", cfg.Server.HTTPPort)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("shutdown_timeout: got %v, want 3s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.WSInterval != 250*time.Millisecond {
		t.Errorf("ws_interval: got %v, want 250ms", cfg.Server.WSInterval)
	}
	if cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("log level: got %v, want debug", cfg.Log.SlogLevel())
	}
	if cfg.Generator.DefaultLength != 20 || cfg.Generator.MinLength != 10 || cfg.Generator.MaxLength != 64 {
		t.Errorf("generator: got %+v", cfg.Generator)
	}
	if cfg.History.Size != 10 {
		t.Errorf("history.size: got %d, want 10", cfg.History.Size)
	}
	if cfg.Tip.Title != "Use a manager" {
		t.Errorf("tip.title: got %q", cfg.Tip.Title)
	}
}

func TestLoad_PartialTipKeepsDefaultContent(t *testing.T) {
	p := writeConfig(t, `tip:
  title: "Only the title"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tip.Content != DefaultTipContent {
		t.Errorf("tip.content: got %q, want default", cfg.Tip.Content)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"port out of range", "server:\n  http_port: 70000\n"},
		{"negative shutdown", "server:\n  shutdown_timeout: -1s\n"},
		{"zero ws interval", "server:\n  ws_interval: 0s\n"},
		{"unknown log level", "log:\n  level: verbose\n"},
		{"min below four", "generator:\n  min_length: 2\n  default_length: 16\n"},
		{"max below min", "generator:\n  min_length: 8\n  max_length: 6\n"},
		{"default above max", "generator:\n  default_length: 200\n"},
		{"default below min", "generator:\n  default_length: 6\n"},
		{"zero history", "history:\n  size: 0\n"},
		{"bad yaml", "server: [unterminated\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := validate(Default()); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
}

func TestSlogLevel_UnknownIsInfo(t *testing.T) {
	if got := (LogConfig{Level: ""}).SlogLevel(); got != slog.LevelInfo {
		t.Errorf("SlogLevel: got %v, want info", got)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	p := writeConfig(t, "tip:\n  title: before\n")

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, p, func(c *Config) {
			select {
			case changes <- c:
			default:
			}
		})
	}()
	defer func() {
		cancel()
		<-done
	}()

	// Keep rewriting until the watcher is set up and reports the change.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-changes:
			if c.Tip.Title == "after" {
				return
			}
		case <-tick.C:
			replaceFile(t, p, "tip:\n  title: after\n")
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatch_InvalidReloadIsSkipped(t *testing.T) {
	p := writeConfig(t, "tip:\n  title: before\n")

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, p, func(c *Config) {
			select {
			case changes <- c:
			default:
			}
		})
	}()

	// Write invalid content repeatedly; onChange must never fire.
	for i := 0; i < 10; i++ {
		replaceFile(t, p, "history:\n  size: -1\n")
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Watch: %v", err)
	}
	select {
	case c := <-changes:
		t.Fatalf("onChange called with invalid config: %+v", c)
	default:
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), "/nonexistent/dir/config.yaml", func(*Config) {})
	if err == nil {
		t.Fatal("expected error for missing directory, got nil")
	}
}
