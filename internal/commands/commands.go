// Package commands implements the relgate subcommands. Each command is
// a thin cobra wrapper: repository discovery and configuration happen
// here, the release decisions live in internal/gate.
package commands

import (
	"os"

	"github.com/relgate/relgate/internal/config"
	"github.com/relgate/relgate/internal/errors"
	"github.com/relgate/relgate/internal/gate"
	"github.com/relgate/relgate/internal/git"
	"github.com/relgate/relgate/internal/journal"
	"github.com/relgate/relgate/internal/logger"
)

// runContext bundles everything a gate-facing command needs: the
// repository root, its effective settings, and a wired gate.
type runContext struct {
	Root     string
	Settings config.Settings
	Gate     *gate.Gate

	journal *journal.Journal
}

// newRunContext discovers the repository containing the working
// directory and builds a gate for it. The journal is best effort: if it
// cannot be opened the gate runs without recording.
func newRunContext() (*runContext, error) {
	if err := git.EnsureGitAvailable(); err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.ErrFileSystem("getwd", err)
	}

	client := git.NewClient()
	root, err := client.RepositoryRoot(cwd)
	if err != nil {
		return nil, err
	}

	settings, err := config.ForRepo(root)
	if err != nil {
		return nil, err
	}

	ctx := &runContext{
		Root:     root,
		Settings: settings,
		Gate:     gate.New(root, settings),
	}

	if settings.JournalEnabled {
		j, err := journal.Open(settings.JournalPath)
		if err != nil {
			logger.Warn("journal unavailable, running without it", "path", settings.JournalPath, "error", err)
		} else {
			ctx.journal = j
			ctx.Gate.Recorder = j
		}
	}

	return ctx, nil
}

// Close releases the journal handle, if one was opened.
func (c *runContext) Close() {
	if c.journal != nil {
		_ = c.journal.Close()
	}
}
