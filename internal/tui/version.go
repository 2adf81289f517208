package tui

import "fmt"

// Build metadata, set with -ldflags "-X".
var (
	AppVersion = "0.1.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := "v" + AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("v%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}
