// Package buildinfo carries version identifiers stamped at build time.
package buildinfo

// Set via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns a compact identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
