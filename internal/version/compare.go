package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-crypto-trader/pkg/errors"
)

// CheckConfigCompatibility checks whether a strategy config written for
// configVersion can be loaded by a bot built at botVersion.
//
// Compatibility Rules:
//   - If either version is "main" (development build), the check is skipped
//   - Major and minor versions must match exactly
//   - Patch versions can differ (e.g., 1.2.0 is compatible with 1.2.5)
func CheckConfigCompatibility(botVersion, configVersion string) error {
	botVersion = strings.TrimPrefix(botVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if botVersion == "main" || configVersion == "main" {
		return nil
	}

	botSemver, err := semver.NewVersion(botVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid bot version '%s'", botVersion)
	}

	configSemver, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if botSemver.Major() != configSemver.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "major version mismatch: bot is %d.x.x but config requires %d.x.x",
			botSemver.Major(), configSemver.Major())
	}

	if botSemver.Minor() != configSemver.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "minor version mismatch: bot is %d.%d.x but config requires %d.%d.x",
			botSemver.Major(), botSemver.Minor(),
			configSemver.Major(), configSemver.Minor())
	}

	return nil
}
