package buildinfo

import "fmt"

// Set at link time: -ldflags "-X github.com/aalvaropc/postline/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("postline %s (commit=%s, date=%s)", Version, Commit, Date)
}
