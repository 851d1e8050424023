package config

import (
	"regexp"

	"github.com/relgate/relgate/internal/errors"
	"github.com/relgate/relgate/internal/validation"
)

// Validate checks settings for values the gate cannot work with.
func (s Settings) Validate() error {
	if s.ReleaseBranch == "" {
		return errors.ErrConfigInvalid("release.branch", "must not be empty")
	}
	if err := validation.ValidateBranchName(s.ReleaseBranch); err != nil {
		return err
	}

	switch s.VersionSource {
	case "file":
		if s.VersionFile == "" {
			return errors.ErrConfigInvalid("version.file", "must not be empty when version.source is \"file\"")
		}
	case "command":
		if s.VersionCommand == "" {
			return errors.ErrConfigInvalid("version.command", "must not be empty when version.source is \"command\"")
		}
	default:
		return errors.ErrConfigInvalid("version.source", "must be \"file\" or \"command\"")
	}

	if s.VersionPattern != "" {
		re, err := regexp.Compile(s.VersionPattern)
		if err != nil {
			return errors.ErrConfigInvalid("version.pattern", err.Error())
		}
		if re.NumSubexp() != 1 {
			return errors.ErrConfigInvalid("version.pattern", "must contain exactly one capture group")
		}
	}

	return nil
}
