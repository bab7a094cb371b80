package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("nativex-launcher %s (%s, %s)", Version, Commit, BuildDate)
}

// Short returns Version normalised to vMAJOR.MINOR.PATCH[-pre], or the raw
// value when it is not a semantic version (local builds report "dev").
func Short() string {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return Version
	}
	return "v" + v.String()
}
