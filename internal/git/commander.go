package git

import (
	"os/exec"
	"time"

	"github.com/relgate/relgate/internal/logger"
)

// Commander abstracts git command execution to enable dependency injection and testing.
// This abstraction prevents tight coupling to the git binary and allows
// mock implementations to replace real git execution for isolated testing.
type Commander interface {
	// Run executes a git command with the given arguments in the specified working directory.
	// Returns stdout and any execution error; on failure the error is a *GitError.
	Run(workDir string, args ...string) (stdout []byte, err error)

	// RunQuiet executes a git command without logging failures.
	// This is useful for operations where failures are expected, such as
	// probing whether a tag exists.
	RunQuiet(workDir string, args ...string) error
}

// LiveGitCommander provides production git command execution with structured logging.
type LiveGitCommander struct{}

// NewLiveGitCommander creates a new instance of LiveGitCommander.
func NewLiveGitCommander() *LiveGitCommander {
	return &LiveGitCommander{}
}

// Run executes a git command with structured logging and error handling.
func (c *LiveGitCommander) Run(workDir string, args ...string) ([]byte, error) {
	log := logger.WithComponent("git_commander")
	start := time.Now()

	log.GitCommand("git", args)
	cmd := exec.Command("git", args...)

	if workDir != "" {
		cmd.Dir = workDir
	}

	stdout, err := cmd.Output()
	duration := time.Since(start)

	if err != nil {
		gitErr := newGitError(cmd, args, err)
		log.GitResult("git", false, gitErr.Stderr, "duration", duration, "workdir", workDir)
		return stdout, gitErr
	}

	log.GitResult("git", true, string(stdout), "duration", duration, "workdir", workDir)
	return stdout, nil
}

// RunQuiet executes a git command without logging failures.
// Successful operations are still logged at debug level.
func (c *LiveGitCommander) RunQuiet(workDir string, args ...string) error {
	log := logger.WithComponent("git_commander")
	start := time.Now()

	log.GitCommand("git", args)
	cmd := exec.Command("git", args...)

	if workDir != "" {
		cmd.Dir = workDir
	}

	stdout, err := cmd.Output()
	duration := time.Since(start)

	if err != nil {
		// No failure logging for quiet execution. The caller expects
		// failures and will handle them appropriately.
		return newGitError(cmd, args, err)
	}

	log.GitResult("git", true, string(stdout), "duration", duration, "workdir", workDir)
	return nil
}

func newGitError(cmd *exec.Cmd, args []string, err error) *GitError {
	var stderr []byte
	if exitError, ok := err.(*exec.ExitError); ok {
		stderr = exitError.Stderr
	}

	exitCode := 0
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	return &GitError{
		Command:  "git",
		Args:     args,
		Stderr:   string(stderr),
		ExitCode: exitCode,
	}
}

// DefaultCommander provides a default instance of LiveGitCommander for production use.
var DefaultCommander Commander = NewLiveGitCommander()
