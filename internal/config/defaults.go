package config

import "github.com/spf13/viper"

func SetDefaults() {
	// Release defaults.
	viper.SetDefault("release.branch", "master")
	viper.SetDefault("release.tag_prefix", "")
	viper.SetDefault("release.annotate", true)

	// Version source defaults.
	viper.SetDefault("version.source", "file")
	viper.SetDefault("version.file", "VERSION")
	viper.SetDefault("version.pattern", "")
	viper.SetDefault("version.command", "")

	// Hook defaults. Empty means relgate tags with git itself.
	viper.SetDefault("hooks.tag", "")

	// Journal defaults.
	viper.SetDefault("journal.enabled", true)
	viper.SetDefault("journal.path", "")

	// Logging defaults.
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Output defaults.
	viper.SetDefault("plain", false)
	viper.SetDefault("debug", false)
}
