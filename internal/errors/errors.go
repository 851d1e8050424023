package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for programmatic handling
const (
	// System errors
	ErrCodeGitNotFound  = "GIT_NOT_FOUND"
	ErrCodeRepoNotFound = "REPO_NOT_FOUND"
	ErrCodeFileSystem   = "FILE_SYSTEM"

	// Precondition failures (release gate)
	ErrCodeWrongBranch       = "WRONG_BRANCH"
	ErrCodeDirtyTree         = "DIRTY_TREE"
	ErrCodeVersionUnresolved = "VERSION_UNRESOLVED"

	// Tagging errors
	ErrCodeTagFailed = "TAG_FAILED"
	ErrCodeTagLookup = "TAG_LOOKUP"

	// Git operation errors
	ErrCodeGitOperation = "GIT_OPERATION"

	// Configuration errors
	ErrCodeConfigInvalid = "CONFIG_INVALID"
	ErrCodeConfigMissing = "CONFIG_MISSING"

	// Ref name errors
	ErrCodeRefInvalid = "REF_INVALID"

	// Journal errors
	ErrCodeJournal = "JOURNAL"
)

// GateError represents a standardized error with code and context.
//
// GateError provides structured error handling for release-gate
// operations with:
//   - Code: standardized error code for programmatic handling
//   - Message: human-readable error description
//   - Cause: underlying error that caused this error (optional)
//   - Context: additional contextual information as key-value pairs
//   - Operation: the operation that failed (optional)
//
// Example usage:
//
//	err := ErrWrongBranch("master", "feature-x")
//	if IsGateError(err, ErrCodeWrongBranch) {
//	  // Handle wrong-branch error
//	}
type GateError struct {
	Code      string                 // Standardized error code (see ErrCode* constants)
	Message   string                 // Human-readable error message
	Cause     error                  // Underlying error that caused this error
	Context   map[string]interface{} // Additional contextual information
	Operation string                 // The operation that failed
}

// Error implements the error interface.
// Precondition and tagging failures carry user-facing messages that must
// be printed verbatim, so the cause is not appended for those codes.
func (e *GateError) Error() string {
	if e.Cause != nil && !e.IsPrecondition() && e.Code != ErrCodeTagFailed {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *GateError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code
func (e *GateError) Is(target error) bool {
	if t, ok := target.(*GateError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error
func (e *GateError) WithContext(key string, value interface{}) *GateError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsPrecondition reports whether this error is a release precondition
// failure (wrong branch, dirty tree, unresolvable version) rather than a
// tagging or environment failure.
func (e *GateError) IsPrecondition() bool {
	switch e.Code {
	case ErrCodeWrongBranch, ErrCodeDirtyTree, ErrCodeVersionUnresolved:
		return true
	default:
		return false
	}
}

// NewGateError creates a new standardized error
func NewGateError(code, message string, cause error) *GateError {
	return &GateError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewGateErrorf creates a new standardized error with formatted message
func NewGateErrorf(code string, cause error, format string, args ...interface{}) *GateError {
	return &GateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Error factory functions for common error types

// System errors
func ErrGitNotFound(cause error) *GateError {
	return NewGateError(ErrCodeGitNotFound, "git is not available in PATH", cause)
}

func ErrRepoNotFound(path string) *GateError {
	return NewGateErrorf(ErrCodeRepoNotFound, nil, "not inside a git repository: %s", path).
		WithContext("path", path)
}

func ErrFileSystem(operation string, cause error) *GateError {
	return NewGateErrorf(ErrCodeFileSystem, cause, "file system operation failed: %s", operation).
		WithContext("operation", operation)
}

// Precondition failures

// ErrWrongBranch is returned when the repository is not on the release
// branch. The message wording is part of the CLI contract.
func ErrWrongBranch(releaseBranch, currentBranch string) *GateError {
	return NewGateErrorf(ErrCodeWrongBranch, nil,
		"Checkout branch '%s' before generating release.", releaseBranch).
		WithContext("release_branch", releaseBranch).
		WithContext("current_branch", currentBranch)
}

// ErrDirtyTree is returned when tracked files have uncommitted changes.
// The message is the modified file list, one path per line.
func ErrDirtyTree(files []string) *GateError {
	return NewGateError(ErrCodeDirtyTree, strings.Join(files, "\n"), nil).
		WithContext("modified_files", files)
}

func ErrVersionUnresolved(source string, cause error) *GateError {
	return NewGateErrorf(ErrCodeVersionUnresolved, cause, "failed to resolve current version from %s", source).
		WithContext("source", source)
}

// Tagging errors

// ErrTagFailed is returned when the tag helper (or fallback git tag)
// exits non-zero. The message wording is part of the CLI contract.
func ErrTagFailed(cause error) *GateError {
	return NewGateError(ErrCodeTagFailed, "Failed to tag a release.", cause)
}

func ErrTagLookup(tag string, cause error) *GateError {
	return NewGateErrorf(ErrCodeTagLookup, cause, "failed to look up tag: %s", tag).
		WithContext("tag", tag)
}

// Git operation errors
func ErrGitOperation(operation string, cause error) *GateError {
	return NewGateErrorf(ErrCodeGitOperation, cause, "git %s failed", operation).
		WithContext("operation", operation)
}

// Configuration errors
func ErrConfigInvalid(key, reason string) *GateError {
	return NewGateErrorf(ErrCodeConfigInvalid, nil, "invalid configuration for %s: %s", key, reason).
		WithContext("key", key).
		WithContext("reason", reason)
}

func ErrConfigMissing(key string) *GateError {
	return NewGateErrorf(ErrCodeConfigMissing, nil, "missing required configuration: %s", key).
		WithContext("key", key)
}

// Ref name errors
func ErrInvalidRefName(kind, name, reason string) *GateError {
	return NewGateErrorf(ErrCodeRefInvalid, nil, "invalid %s name %q: %s", kind, name, reason).
		WithContext("kind", kind).
		WithContext("name", name).
		WithContext("reason", reason)
}

// Journal errors
func ErrJournal(operation string, cause error) *GateError {
	return NewGateErrorf(ErrCodeJournal, cause, "journal %s failed", operation).
		WithContext("operation", operation)
}

// Helper function to check if an error is a specific gate error
func IsGateError(err error, code string) bool {
	var gateErr *GateError
	if errors.As(err, &gateErr) {
		return gateErr.Code == code
	}
	return false
}

// Helper function to get the gate error code from any error
func GetErrorCode(err error) string {
	var gateErr *GateError
	if errors.As(err, &gateErr) {
		return gateErr.Code
	}
	return ""
}

// Helper function to get error context
func GetErrorContext(err error) map[string]interface{} {
	var gateErr *GateError
	if errors.As(err, &gateErr) {
		return gateErr.Context
	}
	return nil
}
