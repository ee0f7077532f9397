package shell

import (
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// ShellEnv is the environment variable consulted when the parent process
// does not identify a supported shell.
const ShellEnv = "SHELL"

// Detector finds the profile of the shell that launched the process.
type Detector struct {
	// ParentName returns the command name of the parent process.
	ParentName func() (string, error)

	// Getenv reads an environment variable.
	Getenv func(string) string
}

// DefaultDetector inspects the real parent process and environment.
func DefaultDetector() Detector {
	return Detector{
		ParentName: parentProcessName,
		Getenv:     os.Getenv,
	}
}

// Detect returns the shell profile, preferring the parent process name over
// $SHELL. The parent is more reliable when the login shell differs from the
// shell actually running the command. ok is false if neither source names a
// supported shell.
func (d Detector) Detect() (Profile, bool) {
	if d.ParentName != nil {
		if parent, err := d.ParentName(); err == nil {
			if p, ok := match(strings.TrimSpace(parent)); ok {
				return p, true
			}
		}
	}

	if d.Getenv != nil {
		if p, ok := match(d.Getenv(ShellEnv)); ok {
			return p, true
		}
	}

	return Profile{}, false
}

// match returns the first supported profile whose name appears in s.
func match(s string) (Profile, bool) {
	if s == "" {
		return Profile{}, false
	}
	for _, p := range Supported() {
		if strings.Contains(s, p.Name) {
			return p, true
		}
	}
	return Profile{}, false
}

// parentProcessName returns the executable name of the parent process.
func parentProcessName() (string, error) {
	ppid := os.Getppid()
	proc, err := ps.FindProcess(ppid)
	if err != nil {
		return "", fmt.Errorf("failed to inspect parent process %d: %w", ppid, err)
	}
	if proc == nil {
		return "", fmt.Errorf("parent process %d not found", ppid)
	}
	return proc.Executable(), nil
}
