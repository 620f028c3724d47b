package version

import "fmt"

// Name is the program name used in version output and the HTTP User-Agent.
const Name = "aoc-admin"

var (
	// Version is the release tag, set with -ldflags "-X .../internal/version.Version=...".
	Version = "0.1.0-dev"
	// Commit is the short git SHA of the build.
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns the release tag alone.
func Short() string {
	return Version
}

// Full returns the release tag with commit and build time.
func Full() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, Version, Commit, BuildTime)
}

// UserAgent identifies the tool to the puzzle service.
func UserAgent() string {
	return Name + "/" + Version
}
