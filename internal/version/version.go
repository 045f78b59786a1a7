// Package version provides version information for beadapp.
package version

// Version is the version of beadapp. This can be overridden at build time using ldflags.
var Version = "0.1.0"

// Commit is the git commit hash. This can be overridden at build time using ldflags.
var Commit = "unknown"

// String returns the full version string including the commit hash if available.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}
