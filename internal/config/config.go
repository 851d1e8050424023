package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Initialize sets up viper with defaults, environment variables, and an
// optional config file. Environment variables use the RELGATE_ prefix
// with underscores for nesting (RELGATE_RELEASE_BRANCH, RELGATE_PLAIN).
func Initialize() error {
	SetDefaults()

	viper.SetEnvPrefix("RELGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(".relgate")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

// GetString returns a string configuration value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean configuration value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// IsPlain returns true if plain output mode is enabled (no colors or symbols)
func IsPlain() bool {
	return viper.GetBool("plain")
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return viper.GetBool("debug")
}
