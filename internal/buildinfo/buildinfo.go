package buildinfo

import "fmt"

// Version, Commit and Date are stamped via -ldflags "-X quadgrid/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String is the -version line.
func String(prog string) string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", prog, Version, Commit, Date)
}
