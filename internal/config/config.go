package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultMode renders to the terminal.
	DefaultMode = ModeTerminal
	// DefaultAddr is the default TCP address of the frame server.
	DefaultAddr = ":8088"
	// DefaultLogLevel controls verbosity for logs written to stderr.
	DefaultLogLevel = "info"
	// DefaultPingInterval controls the keepalive cadence for WebSocket viewers.
	DefaultPingInterval = 30 * time.Second
	// DefaultMaxClients bounds concurrent WebSocket viewers. Zero disables the limit.
	DefaultMaxClients = 64
	// DefaultEnvFile is loaded before reading the environment when present.
	DefaultEnvFile = ".env"
)

// Mode selects the front end.
type Mode string

const (
	ModeTerminal Mode = "terminal"
	ModeWindow   Mode = "window"
	ModeServe    Mode = "serve"
	ModePNG      Mode = "png"
	ModeGIF      Mode = "gif"
)

var ErrInvalidMode = errors.New("invalid mode")

// Config captures the runtime tunables read from the environment.
type Config struct {
	Mode         Mode
	Addr         string
	LogLevel     string
	Out          string
	Raw          bool
	Debug        bool
	Profile      bool
	PingInterval time.Duration
	MaxClients   int
}

// Load reads an optional .env file and then the MARCHER_* environment variables,
// applying defaults and returning descriptive errors for invalid overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DefaultEnvFile, err)
	}
	cfg := &Config{
		Mode:         Mode(strings.ToLower(getString("MARCHER_MODE", string(DefaultMode)))),
		Addr:         getString("MARCHER_ADDR", DefaultAddr),
		LogLevel:     getString("MARCHER_LOG_LEVEL", DefaultLogLevel),
		Out:          strings.TrimSpace(os.Getenv("MARCHER_OUT")),
		Debug:        os.Getenv("DEBUG") != "",
		Profile:      os.Getenv("PROFILE") != "",
		PingInterval: DefaultPingInterval,
		MaxClients:   DefaultMaxClients,
	}
	var err error
	if cfg.Raw, err = getBool("MARCHER_RAW", false); err != nil {
		return nil, err
	}
	if cfg.PingInterval, err = getDuration("MARCHER_PING_INTERVAL", DefaultPingInterval); err != nil {
		return nil, err
	}
	if cfg.MaxClients, err = getInt("MARCHER_MAX_CLIENTS", DefaultMaxClients); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the combination of settings.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeTerminal, ModeWindow, ModeServe, ModePNG, ModeGIF:
	default:
		return fmt.Errorf("MARCHER_MODE %q: %w", c.Mode, ErrInvalidMode)
	}
	if c.Mode == ModeServe && strings.TrimSpace(c.Addr) == "" {
		return errors.New("MARCHER_ADDR must not be empty in serve mode")
	}
	if c.PingInterval <= 0 {
		return errors.New("MARCHER_PING_INTERVAL must be positive")
	}
	if c.MaxClients < 0 {
		return errors.New("MARCHER_MAX_CLIENTS must be non-negative")
	}
	return nil
}

func getString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
