// Package hooks runs user-configured external helper commands, most
// importantly the release tag helper.
package hooks

import (
	"io"
	"os"
)

// HookResult captures the outcome of one helper invocation.
type HookResult struct {
	Command  string
	ExitCode int
}

// Succeeded reports whether the helper exited zero.
func (r *HookResult) Succeeded() bool {
	return r.ExitCode == 0
}

// TagHookEnv is the environment handed to the tag helper in addition to
// the parent process environment.
type TagHookEnv struct {
	Project string
	Version string
	Tag     string
}

func (e TagHookEnv) vars() []string {
	return append(os.Environ(),
		"RELGATE_PROJECT="+e.Project,
		"RELGATE_VERSION="+e.Version,
		"RELGATE_TAG="+e.Tag,
	)
}

// Runner executes the tag helper. The interface exists so the gate can
// be tested without spawning processes.
type Runner interface {
	RunTagHook(workDir, command string, env TagHookEnv, output io.Writer) *HookResult
}

// StreamingRunner runs helpers with line-prefixed output streaming.
type StreamingRunner struct{}

// NewRunner returns the default streaming runner.
func NewRunner() Runner {
	return &StreamingRunner{}
}

