package config

import "fmt"

// Build metadata, overridden at link time via -ldflags. VersionString is
// what the server reports on startup, in the X-Intentd-Version response
// header, and for --version.
var (
	Version       = "dev"
	CommitHash    = "n/a"
	BuildTime     = "n/a"
	VersionString = fmt.Sprintf("%s-%s (%s)", Version, CommitHash, BuildTime)
)
