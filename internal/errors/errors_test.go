package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	cherrors "github.com/chazuruo/clean-history/internal/errors"
)

// TestBaseErrors verifies that all base error types have correct messages.
func TestBaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotDetected", cherrors.ErrNotDetected, "shell not detected"},
		{"ErrNotFound", cherrors.ErrNotFound, "not found"},
		{"ErrInvalid", cherrors.ErrInvalid, "invalid"},
		{"ErrIO", cherrors.ErrIO, "I/O error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestHistoryError verifies HistoryError formatting and unwrapping.
func TestHistoryError(t *testing.T) {
	tests := []struct {
		name string
		err  *cherrors.HistoryError
		want string
	}{
		{
			name: "with path",
			err:  &cherrors.HistoryError{Op: "read", Path: "/home/u/.zsh_history", Err: cherrors.ErrIO},
			want: "history read /home/u/.zsh_history: I/O error",
		},
		{
			name: "without path",
			err:  &cherrors.HistoryError{Op: "write", Err: fmt.Errorf("disk full")},
			want: "history write: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("Unwrap reaches os errors", func(t *testing.T) {
		wrapped := &cherrors.HistoryError{Op: "read", Err: fmt.Errorf("%w: %w", cherrors.ErrIO, os.ErrPermission)}
		if !errors.Is(wrapped, os.ErrPermission) {
			t.Error("errors.Is(wrapped, os.ErrPermission) = false, want true")
		}
		if !cherrors.IsIO(wrapped) {
			t.Error("IsIO(wrapped) = false, want true")
		}
	})
}

// TestConfigError verifies ConfigError formatting for each combination of fields.
func TestConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  *cherrors.ConfigError
		want string
	}{
		{"key only", &cherrors.ConfigError{Key: "HOME", Err: errors.New("not set")}, "config HOME: not set"},
		{"path only", &cherrors.ConfigError{Path: "/c.toml", Err: cherrors.ErrInvalid}, "config /c.toml: invalid"},
		{"path and key", &cherrors.ConfigError{Path: "/c.toml", Key: "clean.threshold", Err: cherrors.ErrInvalid}, "config /c.toml (clean.threshold): invalid"},
		{"bare", &cherrors.ConfigError{Err: cherrors.ErrInvalid}, "config: invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if cherrors.Wrap(nil, "op") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := cherrors.Wrap(cherrors.ErrNotFound, "stat")
	if wrapped.Error() != "stat: not found" {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), "stat: not found")
	}
	if !cherrors.IsNotFound(wrapped) {
		t.Error("IsNotFound(wrapped) = false, want true")
	}
}

// TestIsHelpers verifies all Is<TYPE>() helper functions.
func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name    string
		baseErr error
		isFunc  func(error) bool
	}{
		{"IsNotDetected", cherrors.ErrNotDetected, cherrors.IsNotDetected},
		{"IsNotFound", cherrors.ErrNotFound, cherrors.IsNotFound},
		{"IsInvalid", cherrors.ErrInvalid, cherrors.IsInvalid},
		{"IsIO", cherrors.ErrIO, cherrors.IsIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.isFunc(tt.baseErr) {
				t.Errorf("%s(%v) = false, want true", tt.name, tt.baseErr)
			}
			if !tt.isFunc(cherrors.Wrap(tt.baseErr, "outer")) {
				t.Errorf("%s(wrapped) = false, want true", tt.name)
			}
		})
	}

	t.Run("IsNotFound with different error", func(t *testing.T) {
		if cherrors.IsNotFound(cherrors.ErrInvalid) {
			t.Error("IsNotFound(ErrInvalid) = true, want false")
		}
	})
}

// TestAsHelpers verifies the As<TYPE>Error() helper functions.
func TestAsHelpers(t *testing.T) {
	t.Run("AsHistoryError through Wrap", func(t *testing.T) {
		wrapped := cherrors.Wrap(&cherrors.HistoryError{Op: "backup", Path: "/tmp/x", Err: cherrors.ErrIO}, "run")
		result, ok := cherrors.AsHistoryError(wrapped)
		if !ok {
			t.Fatal("AsHistoryError(wrapped) = false, want true")
		}
		if result.Op != "backup" || result.Path != "/tmp/x" {
			t.Errorf("AsHistoryError returned wrong struct: got Op=%q, Path=%q", result.Op, result.Path)
		}
	})

	t.Run("AsHistoryError with wrong type", func(t *testing.T) {
		if _, ok := cherrors.AsHistoryError(cherrors.ErrIO); ok {
			t.Error("AsHistoryError(ErrIO) = true, want false")
		}
	})

	t.Run("AsConfigError", func(t *testing.T) {
		ce := &cherrors.ConfigError{Key: "HOME", Err: cherrors.ErrNotFound}
		result, ok := cherrors.AsConfigError(fmt.Errorf("resolve: %w", ce))
		if !ok {
			t.Fatal("AsConfigError(valid) = false, want true")
		}
		if result.Key != "HOME" {
			t.Errorf("AsConfigError returned wrong Key: got %q, want 'HOME'", result.Key)
		}
	})
}

func TestExitCode(t *testing.T) {
	if got := cherrors.ExitCode(nil); got != 0 {
		t.Errorf("ExitCode(nil) = %d, want 0", got)
	}
	if got := cherrors.ExitCode(cherrors.ErrNotDetected); got != 1 {
		t.Errorf("ExitCode(ErrNotDetected) = %d, want 1", got)
	}
}
