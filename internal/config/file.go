package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/relgate/relgate/internal/fs"
)

// FileName is the repo-local configuration file, looked up at the
// repository root.
const FileName = ".relgate.toml"

// FileConfig is the repo-local configuration. Pointer fields distinguish
// "not set" from zero values so repo config only overrides what it names.
type FileConfig struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Release struct {
		Branch    string `toml:"branch"`
		TagPrefix *string `toml:"tag_prefix"`
		Annotate  *bool   `toml:"annotate"`
	} `toml:"release"`
	Version struct {
		Source  string `toml:"source"`
		File    string `toml:"file"`
		Pattern string `toml:"pattern"`
		Command string `toml:"command"`
	} `toml:"version"`
	Hooks struct {
		Tag string `toml:"tag"`
	} `toml:"hooks"`
	Journal struct {
		Enabled *bool  `toml:"enabled"`
		Path    string `toml:"path"`
	} `toml:"journal"`
}

// LoadFromFile returns empty config if the file is missing, error if the
// file exists but is invalid TOML.
func LoadFromFile(dir string) (FileConfig, error) {
	var cfg FileConfig
	path := filepath.Join(dir, FileName)

	if !fs.FileExists(path) {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // nolint:gosec // Path is rooted at the repository
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// FileConfigExists reports whether a repo-local config file is present.
func FileConfigExists(dir string) bool {
	return fs.FileExists(filepath.Join(dir, FileName))
}
