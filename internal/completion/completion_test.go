package completion

import (
	"fmt"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCompletions(t *testing.T) {
	tags := []string{"1.2.0", "1.3.0", "2.0.0", "v2.1.0"}

	t.Run("empty input returns everything", func(t *testing.T) {
		assert.Equal(t, tags, FilterCompletions(tags, ""))
	})

	t.Run("prefix filtering", func(t *testing.T) {
		assert.Equal(t, []string{"1.2.0", "1.3.0"}, FilterCompletions(tags, "1."))
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, FilterCompletions(tags, "3."))
	})
}

func TestWithTimeout(t *testing.T) {
	t.Run("returns result when function completes", func(t *testing.T) {
		ctx := &CompletionContext{Timeout: time.Second}

		result, err := ctx.WithTimeout(func() ([]string, error) {
			return []string{"1.2.0"}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"1.2.0"}, result)
	})

	t.Run("propagates errors", func(t *testing.T) {
		ctx := &CompletionContext{Timeout: time.Second}

		_, err := ctx.WithTimeout(func() ([]string, error) {
			return nil, fmt.Errorf("boom")
		})

		assert.Error(t, err)
	})

	t.Run("times out slow functions", func(t *testing.T) {
		ctx := &CompletionContext{Timeout: 10 * time.Millisecond}

		_, err := ctx.WithTimeout(func() ([]string, error) {
			time.Sleep(time.Second)
			return nil, nil
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "timed out")
	})
}

func TestSafeExecuteWithFallback(t *testing.T) {
	t.Run("returns function result", func(t *testing.T) {
		result, directive := SafeExecuteWithFallback(func() ([]string, cobra.ShellCompDirective) {
			return []string{"1.2.0"}, cobra.ShellCompDirectiveNoFileComp
		}, []string{"fallback"})

		assert.Equal(t, []string{"1.2.0"}, result)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})

	t.Run("uses fallback on empty result", func(t *testing.T) {
		result, _ := SafeExecuteWithFallback(func() ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}, []string{"fallback"})

		assert.Equal(t, []string{"fallback"}, result)
	})

	t.Run("recovers from panics", func(t *testing.T) {
		result, directive := SafeExecuteWithFallback(func() ([]string, cobra.ShellCompDirective) {
			panic("completion exploded")
		}, []string{"fallback"})

		assert.Equal(t, []string{"fallback"}, result)
		assert.Equal(t, cobra.ShellCompDirectiveError, directive)
	})
}

func TestCreateCompletionCommands(t *testing.T) {
	rootCmd := &cobra.Command{Use: "relgate"}
	CreateCompletionCommands(rootCmd)

	var completionCmd *cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "completion" {
			completionCmd = cmd
		}
	}

	require.NotNil(t, completionCmd, "completion command must be registered")
	assert.ElementsMatch(t, []string{"bash", "zsh", "fish", "powershell"}, completionCmd.ValidArgs)
}
