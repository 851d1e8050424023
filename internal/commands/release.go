package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/relgate/relgate/internal/errors"
	"github.com/relgate/relgate/internal/fs"
	"github.com/relgate/relgate/internal/gate"
	"github.com/relgate/relgate/internal/lock"
	"github.com/relgate/relgate/internal/logger"
	"github.com/relgate/relgate/internal/styles"
)

func NewReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Verify release preconditions and tag the current version",
		Long: `Verify that the repository is ready for a release, then tag it.

The gate checks, in order:
  1. The current branch is the configured release branch.
  2. The working tree has no uncommitted changes to tracked files.
  3. The current version can be read from its configured source.

If all checks pass and the version is not tagged yet, the configured tag
helper (hooks.tag) is invoked with RELGATE_VERSION and RELGATE_TAG in
its environment. Without a helper, relgate creates the tag itself.

An already-tagged version is a success: there is nothing to do.`,
		Args: cobra.NoArgs,
		RunE: runRelease,
	}

	return cmd
}

func runRelease(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("release_command")
	start := time.Now()

	ctx, err := newRunContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	// One release at a time per repository.
	lockPath := filepath.Join(ctx.Root, ".git", "relgate", "lock")
	if err := fs.CreateDirectory(filepath.Dir(lockPath), fs.DirStrict); err != nil {
		return errors.ErrFileSystem("create lock directory", err)
	}
	handle, err := lock.Acquire(lockPath)
	if err != nil {
		return err
	}
	defer handle.Release()

	log.Debug("running release gate", "root", ctx.Root, "release_branch", ctx.Settings.ReleaseBranch)

	result, err := ctx.Gate.Run(gate.Options{Output: cmd.OutOrStdout()})
	if err != nil {
		log.Debug("release gate failed", "error", err, "duration", time.Since(start))
		return err
	}

	switch {
	case result.TagExisted:
		cmd.Println(styles.Render(&styles.Info,
			fmt.Sprintf("Version %s is already tagged as '%s'; nothing to do.", result.Version, result.Tag)))
	case result.Tagged:
		cmd.Println(styles.Render(&styles.Success,
			fmt.Sprintf("Tagged release '%s' for %s.", result.Tag, result.Project)))
	}

	log.Debug("release gate passed", "tag", result.Tag, "duration", time.Since(start))
	return nil
}
