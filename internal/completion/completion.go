// Package completion provides shell completion for the relgate CLI.
package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/relgate/relgate/internal/git"
	"github.com/relgate/relgate/internal/logger"
)

// CompletionTimeout is the maximum time to wait for completion operations.
// Completions run inside the user's shell; a slow git call must not hang it.
const CompletionTimeout = 2 * time.Second

// CompletionContext provides context for completion operations.
type CompletionContext struct {
	Client  git.Client
	Timeout time.Duration
}

func NewCompletionContext(client git.Client) *CompletionContext {
	return &CompletionContext{
		Client:  client,
		Timeout: CompletionTimeout,
	}
}

func (c *CompletionContext) WithTimeout(fn func() ([]string, error)) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	resultChan := make(chan []string, 1)
	errorChan := make(chan error, 1)

	go func() {
		result, err := fn()
		if err != nil {
			errorChan <- err
		} else {
			resultChan <- result
		}
	}()

	select {
	case result := <-resultChan:
		return result, nil
	case err := <-errorChan:
		return nil, err
	case <-ctx.Done():
		return nil, fmt.Errorf("completion operation timed out")
	}
}

func FilterCompletions(completions []string, toComplete string) []string {
	if toComplete == "" {
		return completions
	}

	var filtered []string
	for _, completion := range completions {
		if strings.HasPrefix(completion, toComplete) {
			filtered = append(filtered, completion)
		}
	}

	return filtered
}

func CreateCompletionCommands(rootCmd *cobra.Command) {
	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `Generate completion script for the relgate CLI.

To enable completion, run the appropriate command for your shell:

Bash:
  relgate completion bash > /etc/bash_completion.d/relgate
  # or
  relgate completion bash > ~/.bash_completion.d/relgate

Zsh:
  relgate completion zsh > "${fpath[1]}/_relgate"

Fish:
  relgate completion fish > ~/.config/fish/completions/relgate.fish

PowerShell:
  relgate completion powershell > relgate.ps1
  # then source it in your profile`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			switch shell {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unsupported shell: %s", shell)
			}
		},
	}

	rootCmd.AddCommand(completionCmd)
}

// RegisterCompletionFunctions wires dynamic completions into the
// command tree: tag names for 'history --tag', fixed value sets for the
// logging flags.
func RegisterCompletionFunctions(rootCmd *cobra.Command, client git.Client) {
	ctx := NewCompletionContext(client)

	registerStaticFlagCompletion(rootCmd, "log-level", []string{"debug", "info", "warn", "error"})
	registerStaticFlagCompletion(rootCmd, "log-format", []string{"text", "json"})

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "history" {
			registerHistoryCompletions(cmd, ctx)
		}
	}
}

func registerStaticFlagCompletion(rootCmd *cobra.Command, flag string, values []string) {
	_ = rootCmd.RegisterFlagCompletionFunc(flag, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return FilterCompletions(values, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func registerHistoryCompletions(cmd *cobra.Command, ctx *CompletionContext) {
	_ = cmd.RegisterFlagCompletionFunc("tag", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return TagListCompletion(ctx, cmd, args, toComplete)
	})
}

func SafeExecuteWithFallback(fn func() ([]string, cobra.ShellCompDirective), fallback []string) (result []string, directive cobra.ShellCompDirective) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithComponent("completion").Debug("completion function panicked", "error", r)
			result = fallback
			directive = cobra.ShellCompDirectiveError
		}
	}()

	result, directive = fn()

	if len(result) == 0 {
		return fallback, directive
	}
	return result, directive
}
