package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Delays.Login != DefaultLoginDelay || cfg.Delays.Signup != DefaultSignupDelay {
		t.Fatalf("unexpected default delays %+v", cfg.Delays)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RTAUTH_DATA_DIR", dir)
	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != dir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.LogFile != filepath.Join(dir, LogFileName) {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.DBPath() != filepath.Join(dir, DBFileName) {
		t.Fatalf("DBPath = %q", cfg.DBPath())
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	data := `
data_dir = "` + filepath.ToSlash(dir) + `"
theme = "midnight"
journal = false
fail_ops = ["login"]

[delays]
login = "10ms"
signup = "20ms"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("RTAUTH_DELAY_SIGNUP", "5ms")
	t.Setenv("RTAUTH_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "midnight" {
		t.Fatalf("Theme = %q", cfg.Theme)
	}
	if cfg.Journal {
		t.Fatalf("expected journal disabled by file")
	}
	if cfg.Delays.Login != 10*time.Millisecond {
		t.Fatalf("login delay = %s", cfg.Delays.Login)
	}
	if cfg.Delays.Signup != 5*time.Millisecond {
		t.Fatalf("signup delay = %s, env should win", cfg.Delays.Signup)
	}
	if cfg.Delays.Reset != DefaultResetDelay {
		t.Fatalf("reset delay = %s, default should survive", cfg.Delays.Reset)
	}
	if len(cfg.FailOps) != 1 || cfg.FailOps[0] != "login" {
		t.Fatalf("FailOps = %v", cfg.FailOps)
	}
	level, err := cfg.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("SlogLevel = %v, %v", level, err)
	}
}

func TestLoadEnvFailOps(t *testing.T) {
	t.Setenv("RTAUTH_DATA_DIR", t.TempDir())
	t.Setenv("RTAUTH_FAIL_OPS", "signup,password_reset")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.FailOps) != 2 || cfg.FailOps[1] != "password_reset" {
		t.Fatalf("FailOps = %v", cfg.FailOps)
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("theme = "), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Delays.Reset = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected negative delay to be rejected")
	}
	cfg = Default()
	cfg.Theme = "neon"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown theme to be rejected")
	}
	cfg = Default()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown log level to be rejected")
	}
}

func TestPath(t *testing.T) {
	t.Setenv("RTAUTH_CONFIG", "/tmp/custom.toml")
	if Path() != "/tmp/custom.toml" {
		t.Fatalf("Path = %q", Path())
	}
	t.Setenv("RTAUTH_CONFIG", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if Path() != filepath.Join("/tmp/xdg", AppName, ConfigFileName) {
		t.Fatalf("Path = %q", Path())
	}
}
