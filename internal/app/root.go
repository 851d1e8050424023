// Package app assembles the relgate command tree.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relgate/relgate/internal/commands"
	"github.com/relgate/relgate/internal/completion"
	"github.com/relgate/relgate/internal/config"
	"github.com/relgate/relgate/internal/git"
	"github.com/relgate/relgate/internal/logger"
)

const Version = "v0.1.0"

// NewRootCommand creates and configures the relgate root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "relgate",
		Short:   "Guard release tagging behind repository checks",
		Version: Version,
		Long: `relgate verifies that a repository is ready for a release before any
tag is created: the right branch is checked out, the working tree is
clean, and the current version can be read. Only then does it tag the
release (or hand off to your tagging script).

Run 'relgate check' in CI, 'relgate release' to cut the release.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("relgate - release gating for git repositories")
			fmt.Println("Run 'relgate --help' for usage information")
		},
	}

	setupRootCommand(rootCmd)
	return rootCmd
}

// setupRootCommand configures flags, commands, and initialization for the root command
func setupRootCommand(rootCmd *cobra.Command) {
	// Disable automatic error printing to avoid duplicate error messages
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	setupFlags(rootCmd)
	setupInitialization(rootCmd)
	registerCommands(rootCmd)
	setupCompletion(rootCmd)
}

// setupCompletion configures shell completion for the root command
func setupCompletion(rootCmd *cobra.Command) {
	completion.CreateCompletionCommands(rootCmd)
	completion.RegisterCompletionFunctions(rootCmd, git.NewClient())
}

// setupFlags adds persistent flags to the root command
func setupFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging (shorthand for --log-level=debug)")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colored output")
}

// setupInitialization configures cobra initialization callback
func setupInitialization(rootCmd *cobra.Command) {
	cobra.OnInitialize(func() { InitializeConfig(rootCmd) })
}

// registerCommands adds all subcommands to the root command
func registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(commands.NewCheckCmd())
	rootCmd.AddCommand(commands.NewReleaseCmd())
	rootCmd.AddCommand(commands.NewStatusCmd())
	rootCmd.AddCommand(commands.NewHistoryCmd())
	rootCmd.AddCommand(commands.NewConfigCmd())
}

// InitializeConfig initializes application configuration and logging
func InitializeConfig(rootCmd *cobra.Command) {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	bindFlags(rootCmd)
	configureLogging(rootCmd)
}

// bindFlags binds cobra flags to viper configuration
func bindFlags(rootCmd *cobra.Command) {
	if err := viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind log-level flag: %v\n", err)
	}
	if err := viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind log-format flag: %v\n", err)
	}
	if err := viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind plain flag: %v\n", err)
	}
}

// configureLogging sets up application logging based on flags and configuration
func configureLogging(rootCmd *cobra.Command) {
	if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
		viper.Set("logging.level", "debug")
	}

	loggerConfig := logger.Config{
		Level:  config.GetString("logging.level"),
		Format: config.GetString("logging.format"),
		Output: os.Stderr,
	}

	logger.Configure(loggerConfig)
}
