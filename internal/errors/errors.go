// Package errors provides the error taxonomy for clean-history.
//
// Every failure the tool can surface is fatal: it propagates to the command
// layer, which prints it and exits non-zero. Failures of the backup and rewrite
// stages are wrapped with the stage name via Wrap. The types here exist so
// that callers (and tests) can tell the failure classes apart.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotDetected - no supported shell could be identified
//   - ErrNotFound - the history file does not exist
//   - ErrInvalid - a flag or config value failed validation
//   - ErrIO - a read, write, copy or mkdir failed
//
// Wrapped error types (add context):
//   - HistoryError{Op, Path, Err} - history file and backup operations
//   - ConfigError{Key, Path, Err} - configuration and environment errors
//
// # Usage
//
//	return &errors.HistoryError{Op: "backup", Path: src, Err: err}
//
//	if errors.IsNotFound(err) {
//	    // report the missing history file
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotDetected indicates no supported shell could be identified.
	ErrNotDetected = baseError("shell not detected")

	// ErrNotFound indicates a file was not found.
	ErrNotFound = baseError("not found")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// HistoryError represents an error that occurred while reading, backing up or
// rewriting a history file.
type HistoryError struct {
	// Op is the operation being performed (e.g., "read", "write", "backup").
	Op string
	// Path is the file or directory involved (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *HistoryError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("history %s %s: %s", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("history %s: %s", e.Op, e.Err)
}

func (e *HistoryError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration: the config file,
// a required environment variable, or a flag value.
type ConfigError struct {
	// Key names the setting or environment variable (optional).
	Key string
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Path != "" && e.Key != "":
		return fmt.Sprintf("config %s (%s): %s", e.Path, e.Key, e.Err)
	case e.Path != "":
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	case e.Key != "":
		return fmt.Sprintf("config %s: %s", e.Key, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error. Wrap(nil, op) returns nil.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotDetected reports whether err is or wraps ErrNotDetected.
func IsNotDetected(err error) bool {
	return errors.Is(err, ErrNotDetected)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// AsHistoryError reports whether err can be typed as a *HistoryError.
func AsHistoryError(err error) (*HistoryError, bool) {
	var he *HistoryError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
