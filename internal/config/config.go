package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/akyairhashvil/rtauth/internal/util"
	"github.com/caarlos0/env/v11"
)

// ThemeNames lists the selectable themes.
var ThemeNames = []string{"default", "midnight"}

// Delays are the simulated latencies of the placeholder backend.
type Delays struct {
	Login   time.Duration `toml:"login" env:"LOGIN"`
	Signup  time.Duration `toml:"signup" env:"SIGNUP"`
	Reset   time.Duration `toml:"reset" env:"RESET"`
	Resend  time.Duration `toml:"resend" env:"RESEND"`
	Confirm time.Duration `toml:"confirm" env:"CONFIRM"`
}

// Config is the runtime configuration. Values come from defaults, then an
// optional TOML file, then RTAUTH_* environment variables.
type Config struct {
	DataDir  string   `toml:"data_dir" env:"RTAUTH_DATA_DIR"`
	LogFile  string   `toml:"log_file" env:"RTAUTH_LOG_FILE"`
	LogLevel string   `toml:"log_level" env:"RTAUTH_LOG_LEVEL"`
	Theme    string   `toml:"theme" env:"RTAUTH_THEME"`
	Journal  bool     `toml:"journal" env:"RTAUTH_JOURNAL"`
	FailOps  []string `toml:"fail_ops" env:"RTAUTH_FAIL_OPS" envSeparator:","`
	Delays   Delays   `toml:"delays" envPrefix:"RTAUTH_DELAY_"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Theme:    ThemeNames[0],
		Journal:  true,
		Delays: Delays{
			Login:   DefaultLoginDelay,
			Signup:  DefaultSignupDelay,
			Reset:   DefaultResetDelay,
			Resend:  DefaultResendDelay,
			Confirm: DefaultConfirmDelay,
		},
	}
}

// Load reads the TOML file at path (a missing file is not an error),
// applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.fillPaths()
	return cfg, cfg.Validate()
}

// Path returns the config file location: RTAUTH_CONFIG when set, else
// config.toml in the data directory.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("RTAUTH_CONFIG")); p != "" {
		return p
	}
	return filepath.Join(util.DataDir(AppName), ConfigFileName)
}

func (c *Config) fillPaths() {
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = util.DataDir(AppName)
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = filepath.Join(c.DataDir, LogFileName)
	}
}

// DBPath is the journal database location.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}

// Validate rejects settings the application cannot run with.
func (c Config) Validate() error {
	for name, d := range map[string]time.Duration{
		"login":   c.Delays.Login,
		"signup":  c.Delays.Signup,
		"reset":   c.Delays.Reset,
		"resend":  c.Delays.Resend,
		"confirm": c.Delays.Confirm,
	} {
		if d < 0 {
			return fmt.Errorf("%s delay must not be negative: %s", name, d)
		}
	}
	if !slices.Contains(ThemeNames, c.Theme) {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
