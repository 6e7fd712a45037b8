// Package buildinfo holds release metadata stamped in with
// -ldflags "-X github.com/dashfolio-dev/dashfolio/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String is the line printed by dashfolio --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
