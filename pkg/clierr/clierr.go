// Package clierr defines the error kinds surfaced by swanky commands.
// Each kind carries a user-facing message and, where applicable, the
// underlying cause so diagnostics keep the full chain intact.
package clierr

import "fmt"

// InputError indicates a user-supplied value (path, name) is invalid,
// empty, or points at something that does not exist.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return e.Msg
}

// NewInput returns an InputError with a formatted message.
func NewInput(format string, args ...any) *InputError {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigError indicates a named resource is missing from the project
// descriptor (swanky.config.json).
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// NewConfig returns a ConfigError with a formatted message.
func NewConfig(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// FileError indicates an expected file or build artifact is missing.
type FileError struct {
	Msg string
}

func (e *FileError) Error() string {
	return e.Msg
}

// NewFile returns a FileError with a formatted message.
func NewFile(format string, args ...any) *FileError {
	return &FileError{Msg: fmt.Sprintf(format, args...)}
}

// ManifestParseError indicates a malformed workspace or package manifest.
// It is always fatal; a broken manifest must never produce a silently
// wrong module name.
type ManifestParseError struct {
	Path  string
	Cause error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest %s: %v", e.Path, e.Cause)
}

func (e *ManifestParseError) Unwrap() error {
	return e.Cause
}

// UnknownError wraps an unexpected underlying cause.
type UnknownError struct {
	Msg   string
	Cause error
}

func (e *UnknownError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *UnknownError) Unwrap() error {
	return e.Cause
}
