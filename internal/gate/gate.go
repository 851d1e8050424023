// Package gate implements the release gate: the sequence of
// precondition checks that must all pass before a release tag is
// permitted. Checks run in order and short-circuit on the first failure.
package gate

import (
	"fmt"
	"io"
	"os"

	"github.com/relgate/relgate/internal/config"
	"github.com/relgate/relgate/internal/errors"
	"github.com/relgate/relgate/internal/git"
	"github.com/relgate/relgate/internal/hooks"
	"github.com/relgate/relgate/internal/journal"
	"github.com/relgate/relgate/internal/logger"
	"github.com/relgate/relgate/internal/validation"
	"github.com/relgate/relgate/internal/version"
)

// Recorder receives one journal entry per gate run. Implementations
// must treat failures as their own concern: the gate logs and moves on.
type Recorder interface {
	Record(e journal.Entry) error
}

// Gate validates release preconditions and delegates tag creation.
// Collaborators are exported so tests can substitute doubles.
type Gate struct {
	Git      git.Client
	Versions version.Resolver
	Hooks    hooks.Runner
	Recorder Recorder // nil disables journaling

	Settings config.Settings
	Root     string
	Project  string
}

// Options controls a single gate run.
type Options struct {
	// DryRun reports what would happen without creating a tag.
	DryRun bool
	// Output receives streamed tag-helper output. Defaults to stdout.
	Output io.Writer
}

// Result describes a completed (or blocked) gate run.
type Result struct {
	Project       string
	Branch        string
	ModifiedFiles []string
	Version       string
	Tag           string

	TagExisted bool // the version was already tagged
	Tagged     bool // the tag was created by this run
	WouldTag   bool // dry run stopped before tagging
}

// New builds a gate with production collaborators for the repository
// rooted at root.
func New(root string, settings config.Settings) *Gate {
	g := &Gate{
		Git:      git.NewClient(),
		Versions: version.FromSettings(settings),
		Hooks:    hooks.NewRunner(),
		Settings: settings,
		Root:     root,
	}

	g.Project = settings.ProjectName
	if g.Project == "" {
		g.Project = git.ProjectName(root)
	}

	return g
}

// Run executes the gate. The returned result is valid even when the
// error is non-nil: it describes how far the run got.
func (g *Gate) Run(opts Options) (*Result, error) {
	log := logger.WithComponent("gate")
	result := &Result{Project: g.Project}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	branch, err := g.Git.CurrentBranch(g.Root)
	if err != nil {
		return result, errors.Wrap(err, "release gate")
	}
	result.Branch = branch

	if branch != g.Settings.ReleaseBranch {
		log.Debug("gate blocked", "reason", "wrong branch", "branch", branch, "release_branch", g.Settings.ReleaseBranch)
		err := errors.ErrWrongBranch(g.Settings.ReleaseBranch, branch)
		g.record(result, journal.OutcomeBlocked, "wrong branch: "+branch)
		return result, err
	}

	files, err := g.Git.ModifiedFiles(g.Root)
	if err != nil {
		return result, errors.Wrap(err, "release gate")
	}
	result.ModifiedFiles = files

	if len(files) > 0 {
		log.Debug("gate blocked", "reason", "dirty tree", "modified", len(files))
		err := errors.ErrDirtyTree(files)
		g.record(result, journal.OutcomeBlocked, fmt.Sprintf("dirty tree: %d modified files", len(files)))
		return result, err
	}

	ver, err := g.Versions.Resolve(g.Root)
	if err != nil {
		g.record(result, journal.OutcomeBlocked, "version unresolved")
		return result, err
	}
	result.Version = ver
	result.Tag = g.Settings.TagName(ver)

	if err := validation.ValidateTagName(result.Tag); err != nil {
		g.record(result, journal.OutcomeBlocked, "invalid tag name: "+result.Tag)
		return result, err
	}

	exists, err := g.Git.TagExists(g.Root, result.Tag)
	if err != nil {
		return result, err
	}
	if exists {
		log.Debug("version already tagged", "tag", result.Tag)
		result.TagExisted = true
		g.record(result, journal.OutcomeAlreadyTagged, "")
		return result, nil
	}

	if opts.DryRun {
		result.WouldTag = true
		g.record(result, journal.OutcomeWouldTag, "")
		return result, nil
	}

	if err := g.createTag(result, output); err != nil {
		g.record(result, journal.OutcomeFailed, err.Error())
		return result, errors.ErrTagFailed(err)
	}

	result.Tagged = true
	log.Debug("release tagged", "tag", result.Tag, "project", g.Project)
	g.record(result, journal.OutcomeTagged, "")
	return result, nil
}

// createTag delegates to the configured tag helper, falling back to git
// itself when no helper is configured.
func (g *Gate) createTag(result *Result, output io.Writer) error {
	if g.Settings.TagHook != "" {
		env := hooks.TagHookEnv{
			Project: g.Project,
			Version: result.Version,
			Tag:     result.Tag,
		}
		hookResult := g.Hooks.RunTagHook(g.Root, g.Settings.TagHook, env, output)
		if !hookResult.Succeeded() {
			return fmt.Errorf("tag helper exited %d", hookResult.ExitCode)
		}
		return nil
	}

	message := fmt.Sprintf("Release %s", result.Version)
	return g.Git.CreateTag(g.Root, result.Tag, message, g.Settings.Annotate)
}

// record appends the run to the journal, best effort.
func (g *Gate) record(result *Result, outcome, detail string) {
	if g.Recorder == nil {
		return
	}

	commit := ""
	if hash, _, err := g.Git.HeadCommit(g.Root); err == nil {
		commit = hash
	}

	err := g.Recorder.Record(journal.Entry{
		Project: g.Project,
		Branch:  result.Branch,
		Version: result.Version,
		Tag:     result.Tag,
		Commit:  commit,
		Outcome: outcome,
		Detail:  detail,
	})
	if err != nil {
		logger.Warn("failed to record gate run", "error", err)
	}
}
