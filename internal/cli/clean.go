// Package cli provides the Cobra command definition for clean-history.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chazuruo/clean-history/internal/config"
	cherrors "github.com/chazuruo/clean-history/internal/errors"
	"github.com/chazuruo/clean-history/internal/history"
	"github.com/chazuruo/clean-history/internal/shell"
	"github.com/spf13/cobra"
)

// CleanOptions contains the options for the clean command.
type CleanOptions struct {
	ConfigPath string
	Threshold  int
	Verbose    bool
	Shell      string
	Output     string
	DryRun     bool

	// Set when the corresponding flag was given explicitly.
	thresholdSet bool
	shellSet     bool
	outputSet    bool
}

// Deps are the process facts runClean depends on.
type Deps struct {
	Detector shell.Detector
	Getenv   func(string) string
	Now      func() time.Time
}

// DefaultDeps returns the real environment, parent process and clock.
func DefaultDeps() Deps {
	return Deps{
		Detector: shell.DefaultDetector(),
		Getenv:   os.Getenv,
		Now:      time.Now,
	}
}

// NewCleanCommand creates the clean-history command.
func NewCleanCommand(deps Deps) *cobra.Command {
	opts := &CleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean-history",
		Short: "Clean multiline entries from shell history files",
		Long: `Remove oversized multiline commands from your shell history.

A command continued over several lines with a trailing backslash is removed
when it spans at least --threshold lines. Single-line commands are never
touched. The history file is backed up to a timestamped file before it is
rewritten.

Supported shells: zsh, bash, fish. The shell is detected from the parent
process, falling back to $SHELL.`,
		Example: `  # Remove every multiline command
  clean-history

  # Keep commands of up to four lines
  clean-history --threshold 5 --verbose

  # Show what would be removed without touching the file
  clean-history --dry-run -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			opts.thresholdSet = flags.Changed("threshold")
			opts.shellSet = flags.Changed("shell")
			opts.outputSet = flags.Changed("output")
			return runClean(opts, deps, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().IntVarP(&opts.Threshold, "threshold", "t", config.DefaultThreshold,
		"number of lines threshold - commands with this many lines or more will be removed")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell type (zsh, bash, fish). Default: auto-detect")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", config.OutputText, "report format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "report what would be removed without writing anything")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")

	return cmd
}

func runClean(opts *CleanOptions, deps Deps, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	p := newPrinter(stdout, stderr, cfg.Clean.Output, opts.Verbose)

	profile, err := resolveProfile(cfg.Clean.Shell, deps.Detector)
	if err != nil {
		return err
	}
	p.verbose("Detected shell: %s", profile.Name)

	home, err := shell.HomeDir(deps.Getenv)
	if err != nil {
		return err
	}

	histPath := profile.HistoryPath(home)
	backupDir := cfg.BackupDir(home)
	if backupDir == "" {
		backupDir = profile.BackupPath(home)
	}

	if err := checkHistoryFile(histPath); err != nil {
		return err
	}

	report := Report{
		Shell:       profile.Name,
		HistoryFile: histPath,
		Threshold:   cfg.Clean.Threshold,
		DryRun:      opts.DryRun,
		ReloadCmd:   profile.ReloadCmd,
	}

	if !opts.DryRun {
		report.BackupFile, err = history.Backup(histPath, backupDir, profile.Name, deps.Now())
		if err != nil {
			return cherrors.Wrap(err, "backup")
		}
		p.verbose("Backup created: %s", report.BackupFile)
	}

	report.Stats, err = history.CleanFile(histPath, history.CleanOptions{
		Threshold: cfg.Clean.Threshold,
		DryRun:    opts.DryRun,
	})
	if err != nil {
		return cherrors.Wrap(err, "clean")
	}

	return p.report(profile, report)
}

// loadConfig loads the config file and lets explicitly given flags win.
func loadConfig(opts *CleanOptions) (*config.Config, error) {
	cfg, err := config.LoadWithDefaults(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.thresholdSet {
		cfg.Clean.Threshold = opts.Threshold
	}
	if opts.shellSet {
		cfg.Clean.Shell = strings.ToLower(opts.Shell)
	}
	if opts.outputSet {
		cfg.Clean.Output = strings.ToLower(opts.Output)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveProfile returns the forced profile if name is set, otherwise the
// detected one.
func resolveProfile(name string, d shell.Detector) (shell.Profile, error) {
	if name != "" {
		if p, ok := shell.Lookup(name); ok {
			return p, nil
		}
		return shell.Profile{}, fmt.Errorf("%w: unsupported shell %q", cherrors.ErrNotDetected, name)
	}

	p, ok := d.Detect()
	if !ok {
		return shell.Profile{}, fmt.Errorf("%w: could not detect shell; make sure the %s environment variable is set",
			cherrors.ErrNotDetected, shell.ShellEnv)
	}
	return p, nil
}

// checkHistoryFile fails with ErrNotFound when path does not exist.
func checkHistoryFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &cherrors.HistoryError{Op: "open", Path: path, Err: cherrors.ErrNotFound}
		}
		return &cherrors.HistoryError{Op: "open", Path: path, Err: fmt.Errorf("%w: %w", cherrors.ErrIO, err)}
	}
	return nil
}
