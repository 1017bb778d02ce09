// Package version reports build metadata. Release builds stamp the
// variables with -ldflags "-X github.com/bulga138/growstr/version.Version=...".
package version

import "runtime/debug"

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// GetVersion returns the stamped version, falling back to the module
// version recorded by `go install` when nothing was stamped.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// GetFullVersion returns "<version> (<commit>) built at <time>".
func GetFullVersion() string {
	return GetVersion() + " (" + Commit + ") built at " + BuildTime
}
