package completion

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgate/relgate/internal/git"
	"github.com/relgate/relgate/internal/testutils"
)

// chdir changes the working directory for the duration of the test,
// restoring the original directory in a cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestTagListCompletion(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	testutils.Tag(t, repo, "1.0.0")
	testutils.Tag(t, repo, "1.1.0")
	testutils.Tag(t, repo, "2.0.0")
	chdir(t, repo)

	ctx := NewCompletionContext(git.NewClient())
	cmd := &cobra.Command{Use: "history"}

	t.Run("lists all tags", func(t *testing.T) {
		completions, directive := TagListCompletion(ctx, cmd, nil, "")

		assert.ElementsMatch(t, []string{"1.0.0", "1.1.0", "2.0.0"}, completions)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})

	t.Run("filters by prefix", func(t *testing.T) {
		completions, _ := TagListCompletion(ctx, cmd, nil, "1.")

		assert.ElementsMatch(t, []string{"1.0.0", "1.1.0"}, completions)
	})
}

func TestTagListCompletionOutsideRepo(t *testing.T) {
	chdir(t, t.TempDir())

	ctx := NewCompletionContext(git.NewClient())
	completions, directive := TagListCompletion(ctx, &cobra.Command{}, nil, "")

	require.Empty(t, completions)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
