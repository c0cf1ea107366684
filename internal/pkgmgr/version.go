package pkgmgr

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MeetsMinimum reports whether version satisfies ">= min". A leading "v"
// is tolerated on either side (node prints "v20.11.0").
func MeetsMinimum(version, min string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(">= " + strings.TrimPrefix(min, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum %q: %w", min, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
