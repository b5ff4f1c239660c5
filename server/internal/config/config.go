package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for the server configuration.
const (
	DefaultHTTPPort        = 5000
	DefaultShutdownTimeout = 10 * time.Second
	DefaultWSInterval      = time.Second
	DefaultLogLevel        = "info"

	DefaultLength    = 16
	DefaultMinLength = 8
	DefaultMaxLength = 128

	DefaultHistorySize = 5

	DefaultTipTitle   = "Le Danger du 'Credential Stuffing'"
	DefaultTipContent = "Utiliser le même mot de passe pour plusieurs sites est la plus grande menace. " +
		"Si un site est piraté, vos autres comptes le seront aussi. " +
		"Utilisez un mot de passe unique partout, aidé par un gestionnaire."
)

// Config holds the complete securipass configuration parsed from config.yaml.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Generator GeneratorConfig `yaml:"generator"`
	History   HistoryConfig   `yaml:"history"`
	Tip       TipConfig       `yaml:"tip"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// HTTPPort is the port the web page and JSON API listen on (default 5000).
	HTTPPort int `yaml:"http_port"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// WSInterval is how often the WebSocket hub checks for new state to push.
	WSInterval time.Duration `yaml:"ws_interval"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`
}

// SlogLevel converts Level to a slog.Level. Unknown values map to info;
// validate rejects them before this is reached.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GeneratorConfig holds the sanitization policy for requested lengths.
type GeneratorConfig struct {
	// DefaultLength is used when the request has no usable length (default 16).
	DefaultLength int `yaml:"default_length"`

	// MinLength is the smallest accepted request; shorter requests fall back
	// to DefaultLength (default 8).
	MinLength int `yaml:"min_length"`

	// MaxLength caps requested lengths (default 128).
	MaxLength int `yaml:"max_length"`
}

// HistoryConfig controls the session history.
type HistoryConfig struct {
	// Size is how many recent passwords are kept (default 5).
	Size int `yaml:"size"`
}

// TipConfig is the educational tip shown on the home page.
type TipConfig struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Load reads and parses the config file at path.
// Missing fields are filled with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("server config: read %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("server config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config pre-populated with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        DefaultHTTPPort,
			ShutdownTimeout: DefaultShutdownTimeout,
			WSInterval:      DefaultWSInterval,
		},
		Log: LogConfig{Level: DefaultLogLevel},
		Generator: GeneratorConfig{
			DefaultLength: DefaultLength,
			MinLength:     DefaultMinLength,
			MaxLength:     DefaultMaxLength,
		},
		History: HistoryConfig{Size: DefaultHistorySize},
		Tip: TipConfig{
			Title:   DefaultTipTitle,
			Content: DefaultTipContent,
		},
	}
}

// validate checks structural constraints on the parsed configuration.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d is out of range [1, 65535]", cfg.Server.HTTPPort)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	if cfg.Server.WSInterval <= 0 {
		return fmt.Errorf("server.ws_interval must be positive")
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown: want debug|info|warn|error", cfg.Log.Level)
	}

	g := cfg.Generator
	if g.MinLength < 4 {
		return fmt.Errorf("generator.min_length %d must be at least 4", g.MinLength)
	}
	if g.MaxLength < g.MinLength {
		return fmt.Errorf("generator.max_length %d is below min_length %d", g.MaxLength, g.MinLength)
	}
	if g.DefaultLength < g.MinLength || g.DefaultLength > g.MaxLength {
		return fmt.Errorf("generator.default_length %d is outside [%d, %d]",
			g.DefaultLength, g.MinLength, g.MaxLength)
	}

	if cfg.History.Size <= 0 {
		return fmt.Errorf("history.size must be positive")
	}
	return nil
}
