package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// devVersion is the version string of untagged builds.
const devVersion = "dev"

// CheckVersion verifies that version satisfies the manifest's min_version
// constraint. Development builds satisfy every constraint.
func CheckVersion(m *Manifest, version string) error {
	if m.MinVersion == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(m.MinVersion)
	if err != nil {
		return fmt.Errorf("parsing min_version %q: %w", m.MinVersion, err)
	}

	version = strings.TrimPrefix(version, "v")
	if version == "" || version == devVersion {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", version, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("manifest requires version %s, running %s", m.MinVersion, v)
	}
	return nil
}
