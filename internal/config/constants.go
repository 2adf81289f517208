package config

import "time"

// Flow timings. SplashDuration is the sum of the splash animation stages
// (fade 800ms, tagline 600ms, hold 1s, settle 500ms).
const (
	SplashDuration       = 2900 * time.Millisecond
	ResendCountdownStart = 60
	CountdownInterval    = time.Second
)

// Simulated backend latencies.
const (
	DefaultLoginDelay   = 1500 * time.Millisecond
	DefaultSignupDelay  = 2000 * time.Millisecond
	DefaultResetDelay   = 1500 * time.Millisecond
	DefaultResendDelay  = 500 * time.Millisecond
	DefaultConfirmDelay = 500 * time.Millisecond
)

// Validation limits.
const (
	MinLoginPasswordLength  = 6
	MinSignupPasswordLength = 8
	MinFullNameLength       = 2
)

// Application settings.
const (
	AppName          = "rtauth"
	BrandName        = "Real Trade"
	DBFileName       = "rtauth.db"
	LogFileName      = "rtauth.log"
	ConfigFileName   = "config.toml"
	RecentEventLimit = 5
)

// Setting keys stored in the journal database.
const (
	SettingTheme = "theme"
)
