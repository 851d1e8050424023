package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgate/relgate/internal/errors"
)

func validSettings() Settings {
	return Settings{
		ReleaseBranch: "master",
		VersionSource: "file",
		VersionFile:   "VERSION",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults are valid", func(s *Settings) {}, false},
		{"empty branch", func(s *Settings) { s.ReleaseBranch = "" }, true},
		{"unknown source", func(s *Settings) { s.VersionSource = "manifest" }, true},
		{"file source without file", func(s *Settings) { s.VersionFile = "" }, true},
		{"command source without command", func(s *Settings) {
			s.VersionSource = "command"
			s.VersionCommand = ""
		}, true},
		{"command source with command", func(s *Settings) {
			s.VersionSource = "command"
			s.VersionCommand = "python setup.py --version"
		}, false},
		{"pattern with one group", func(s *Settings) {
			s.VersionPattern = `__version__ = "([^"]+)"`
		}, false},
		{"pattern without group", func(s *Settings) {
			s.VersionPattern = `\d+\.\d+\.\d+`
		}, true},
		{"pattern that does not compile", func(s *Settings) {
			s.VersionPattern = "(["
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsGateError(err, errors.ErrCodeConfigInvalid))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
