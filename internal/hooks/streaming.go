package hooks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/relgate/relgate/internal/logger"
	"github.com/relgate/relgate/internal/styles"
)

type PrefixWriter struct {
	prefix string
	target io.Writer
	buf    bytes.Buffer
}

func NewPrefixWriter(prefix string, target io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: prefix, target: target}
}

func (w *PrefixWriter) Write(p []byte) (n int, err error) {
	n, err = w.buf.Write(p)
	if err != nil {
		return n, err
	}

	for {
		line, readErr := w.buf.ReadString('\n')
		if readErr != nil {
			if line != "" {
				w.buf.WriteString(line)
			}
			break
		}

		_, writeErr := fmt.Fprintf(w.target, "%s %s", w.prefix, line)
		if writeErr != nil {
			return n, writeErr
		}
	}

	return n, nil
}

func (w *PrefixWriter) Flush() error {
	remaining := w.buf.String()
	if remaining != "" {
		_, err := fmt.Fprintf(w.target, "%s %s\n", w.prefix, remaining)
		w.buf.Reset()
		return err
	}
	return nil
}

// RunTagHook runs the tag helper command in workDir, streaming its output
// to output with a dimmed command prefix. The helper inherits the parent
// environment plus the RELGATE_* release variables.
func (r *StreamingRunner) RunTagHook(workDir, command string, env TagHookEnv, output io.Writer) *HookResult {
	log := logger.WithComponent("hooks")
	log.HookCommand(command, "workdir", workDir, "tag", env.Tag)

	cmd := exec.Command("sh", "-c", command) //nolint:gosec // User-configured tag helper is intentionally executed
	cmd.Dir = workDir
	cmd.Env = env.vars()

	prefix := styles.Render(&styles.Dimmed, fmt.Sprintf("  [%s]", command))
	stdout := NewPrefixWriter(prefix, output)
	stderr := NewPrefixWriter(prefix, output)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		log.Debug("hook failed to start", "command", command, "error", err)
		return &HookResult{Command: command, ExitCode: 1}
	}

	err := cmd.Wait()

	_ = stdout.Flush()
	_ = stderr.Flush()

	if err != nil {
		exitCode := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		log.Debug("hook failed", "command", command, "exit_code", exitCode)
		return &HookResult{Command: command, ExitCode: exitCode}
	}

	log.Debug("hook succeeded", "command", command)
	return &HookResult{Command: command, ExitCode: 0}
}
