package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// VersionInfo contains version information for the binary.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// String renders the version line shown by --version.
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", v.Version, v.Commit, v.Date, runtime.Version())
}

// NewRootCommand creates the clean-history root command with version info
// attached. Errors are returned to the caller for printing.
func NewRootCommand(info VersionInfo, deps Deps) *cobra.Command {
	cmd := NewCleanCommand(deps)
	cmd.Version = info.String()
	cmd.SetVersionTemplate("clean-history {{.Version}}\n")
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}
