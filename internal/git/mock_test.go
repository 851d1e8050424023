package git

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCommander is a mock implementation of Commander for testing.
type MockCommander struct {
	// Commands stores the executed commands for verification
	Commands [][]string
	// Responses maps command patterns to their responses
	Responses map[string]MockResponse
	// CallCount tracks how many times Run/RunQuiet was called
	CallCount int
}

// MockResponse defines a mock git command response.
type MockResponse struct {
	Output string
	Error  error
}

// NewMockCommander creates a new mock commander with default responses.
func NewMockCommander() *MockCommander {
	return &MockCommander{
		Commands:  [][]string{},
		Responses: make(map[string]MockResponse),
	}
}

// Run simulates git command execution.
func (m *MockCommander) Run(workDir string, args ...string) ([]byte, error) {
	m.CallCount++
	m.Commands = append(m.Commands, args)

	cmdKey := strings.Join(args, " ")

	if response, exists := m.Responses[cmdKey]; exists {
		return []byte(response.Output), response.Error
	}

	for pattern, response := range m.Responses {
		if strings.HasPrefix(cmdKey, pattern) {
			return []byte(response.Output), response.Error
		}
	}

	return nil, fmt.Errorf("mock: unhandled git command: %s", cmdKey)
}

// RunQuiet simulates quiet git command execution.
func (m *MockCommander) RunQuiet(workDir string, args ...string) error {
	_, err := m.Run(workDir, args...)
	return err
}

// SetResponse configures a response for a specific command pattern.
func (m *MockCommander) SetResponse(pattern, output string, err error) {
	m.Responses[pattern] = MockResponse{Output: output, Error: err}
}

// SetSuccessResponse configures a successful response.
func (m *MockCommander) SetSuccessResponse(pattern, output string) {
	m.SetResponse(pattern, output, nil)
}

// SetGitErrorResponse configures a *GitError failure with the given exit code.
func (m *MockCommander) SetGitErrorResponse(pattern string, exitCode int, stderr string) {
	m.SetResponse(pattern, "", &GitError{
		Command:  "git",
		Args:     strings.Fields(pattern),
		Stderr:   stderr,
		ExitCode: exitCode,
	})
}

// HasCommand checks if a specific command was executed.
func (m *MockCommander) HasCommand(expected ...string) bool {
	for _, cmd := range m.Commands {
		if len(cmd) != len(expected) {
			continue
		}
		match := true
		for i, arg := range expected {
			if cmd[i] != arg {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// TestMockCommander tests the mock commander itself.
func TestMockCommander(t *testing.T) {
	mock := NewMockCommander()

	_, err := mock.Run("", "unknown", "command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unhandled git command")

	mock.SetSuccessResponse("test", "output")
	out, err := mock.Run("", "test")
	require.NoError(t, err)
	assert.Equal(t, "output", string(out))

	mock.SetGitErrorResponse("fail", 128, "fatal: boom")
	err = mock.RunQuiet("", "fail")
	require.Error(t, err)

	var gitErr *GitError
	require.ErrorAs(t, err, &gitErr)
	assert.Equal(t, 128, gitErr.ExitCode)

	assert.Equal(t, 3, mock.CallCount)
	assert.True(t, mock.HasCommand("test"))
	assert.False(t, mock.HasCommand("nonexistent"))
}
