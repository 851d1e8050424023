package completion

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/relgate/relgate/internal/logger"
)

// TagListCompletion completes tag names from the repository containing
// the working directory, newest first.
func TagListCompletion(ctx *CompletionContext, cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	log := logger.WithComponent("tag_completion")

	cwd, err := os.Getwd()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	if !ctx.Client.IsInsideGitRepo(cwd) {
		log.Debug("not in a git repository, skipping tag completion")
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	tags, err := ctx.WithTimeout(func() ([]string, error) {
		root, err := ctx.Client.RepositoryRoot(cwd)
		if err != nil {
			return nil, err
		}
		return ctx.Client.ListTags(root)
	})
	if err != nil {
		log.Debug("failed to list tags for completion", "error", err)
		return nil, cobra.ShellCompDirectiveError
	}

	completions := FilterCompletions(tags, toComplete)
	log.Debug("tag completion results", "total", len(completions), "input", toComplete)
	return completions, cobra.ShellCompDirectiveNoFileComp
}
