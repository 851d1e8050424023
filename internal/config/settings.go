package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings is the effective release configuration for one repository:
// viper (defaults, env, flags, user config) overlaid with the repo-local
// .relgate.toml where that file names a value.
type Settings struct {
	ProjectName   string // Empty means derive from the repository root
	ReleaseBranch string
	TagPrefix     string
	Annotate      bool

	VersionSource  string // "file" or "command"
	VersionFile    string
	VersionPattern string
	VersionCommand string

	TagHook string // External tag helper command line; empty means git tag

	JournalEnabled bool
	JournalPath    string
}

// ForRepo resolves the effective settings for the repository rooted at
// repoRoot.
func ForRepo(repoRoot string) (Settings, error) {
	s := Settings{
		ReleaseBranch:  viper.GetString("release.branch"),
		TagPrefix:      viper.GetString("release.tag_prefix"),
		Annotate:       viper.GetBool("release.annotate"),
		VersionSource:  viper.GetString("version.source"),
		VersionFile:    viper.GetString("version.file"),
		VersionPattern: viper.GetString("version.pattern"),
		VersionCommand: viper.GetString("version.command"),
		TagHook:        viper.GetString("hooks.tag"),
		JournalEnabled: viper.GetBool("journal.enabled"),
		JournalPath:    viper.GetString("journal.path"),
	}

	cfg, err := LoadFromFile(repoRoot)
	if err != nil {
		return s, err
	}

	if cfg.Project.Name != "" {
		s.ProjectName = cfg.Project.Name
	}
	if cfg.Release.Branch != "" {
		s.ReleaseBranch = cfg.Release.Branch
	}
	if cfg.Release.TagPrefix != nil {
		s.TagPrefix = *cfg.Release.TagPrefix
	}
	if cfg.Release.Annotate != nil {
		s.Annotate = *cfg.Release.Annotate
	}
	if cfg.Version.Source != "" {
		s.VersionSource = cfg.Version.Source
	}
	if cfg.Version.File != "" {
		s.VersionFile = cfg.Version.File
	}
	if cfg.Version.Pattern != "" {
		s.VersionPattern = cfg.Version.Pattern
	}
	if cfg.Version.Command != "" {
		s.VersionCommand = cfg.Version.Command
	}
	if cfg.Hooks.Tag != "" {
		s.TagHook = cfg.Hooks.Tag
	}
	if cfg.Journal.Enabled != nil {
		s.JournalEnabled = *cfg.Journal.Enabled
	}
	if cfg.Journal.Path != "" {
		s.JournalPath = cfg.Journal.Path
	}

	if s.JournalPath == "" {
		s.JournalPath = filepath.Join(repoRoot, ".git", "relgate", "journal.db")
	} else if !filepath.IsAbs(s.JournalPath) {
		s.JournalPath = filepath.Join(repoRoot, s.JournalPath)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}

// TagName returns the tag corresponding to a version under these settings.
func (s Settings) TagName(version string) string {
	return s.TagPrefix + version
}
