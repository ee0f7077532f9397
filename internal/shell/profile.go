// Package shell identifies the user's shell and where it keeps its history.
package shell

import (
	"fmt"
	"path/filepath"

	cherrors "github.com/chazuruo/clean-history/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HomeEnv is the environment variable history and backup paths are resolved
// against.
const HomeEnv = "HOME"

// Profile describes where a shell keeps its history and how to reload it.
// Paths are relative to the home directory.
type Profile struct {
	Name        string
	HistoryFile string
	BackupDir   string
	ReloadCmd   string
}

// Supported shells.
var (
	Zsh = Profile{
		Name:        "zsh",
		HistoryFile: ".zsh_history",
		BackupDir:   ".zsh_history_backups",
		ReloadCmd:   "fc -R",
	}

	Bash = Profile{
		Name:        "bash",
		HistoryFile: ".bash_history",
		BackupDir:   ".bash_history_backups",
		ReloadCmd:   "history -r",
	}

	Fish = Profile{
		Name:        "fish",
		HistoryFile: filepath.Join(".local", "share", "fish", "fish_history"),
		BackupDir:   ".fish_history_backups",
		ReloadCmd:   "history --merge",
	}
)

// Supported returns the supported profiles in detection order.
func Supported() []Profile {
	return []Profile{Zsh, Bash, Fish}
}

// Names returns the names of the supported shells.
func Names() []string {
	profiles := Supported()
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the profile with the given name.
func Lookup(name string) (Profile, bool) {
	for _, p := range Supported() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Title returns the display name of the shell, e.g. "Zsh".
func (p Profile) Title() string {
	return cases.Title(language.English).String(p.Name)
}

// HistoryPath returns the absolute history file path under home.
func (p Profile) HistoryPath(home string) string {
	return filepath.Join(home, p.HistoryFile)
}

// BackupPath returns the absolute backup directory path under home.
func (p Profile) BackupPath(home string) string {
	return filepath.Join(home, p.BackupDir)
}

// HomeDir reads the home directory from getenv. It fails when the variable
// is unset or empty.
func HomeDir(getenv func(string) string) (string, error) {
	home := getenv(HomeEnv)
	if home == "" {
		return "", &cherrors.ConfigError{
			Key: HomeEnv,
			Err: fmt.Errorf("%w: environment variable not set", cherrors.ErrNotFound),
		}
	}
	return home, nil
}
