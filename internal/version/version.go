// Package version holds build information injected with -ldflags.
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version line printed by "bbc --version".
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
