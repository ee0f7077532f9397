package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/chazuruo/clean-history/internal/config"
	cherrors "github.com/chazuruo/clean-history/internal/errors"
	"github.com/chazuruo/clean-history/internal/history"
	"github.com/chazuruo/clean-history/internal/shell"
	"github.com/rodaine/table"
	"gopkg.in/yaml.v3"
)

// Report is the machine-readable result of a run.
type Report struct {
	Shell       string                `json:"shell" yaml:"shell"`
	HistoryFile string                `json:"history_file" yaml:"history_file"`
	BackupFile  string                `json:"backup_file,omitempty" yaml:"backup_file,omitempty"`
	Threshold   int                   `json:"threshold" yaml:"threshold"`
	DryRun      bool                  `json:"dry_run" yaml:"dry_run"`
	ReloadCmd   string                `json:"reload_cmd" yaml:"reload_cmd"`
	Stats       history.CleaningStats `json:"stats" yaml:"stats"`
}

// printer renders progress and results. In json and yaml modes stdout is
// reserved for the report, so verbose lines go to stderr.
type printer struct {
	out     io.Writer
	diag    io.Writer
	format  string
	enabled bool

	success lipgloss.Style
	command lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
}

func newPrinter(stdout, stderr io.Writer, format string, verbose bool) *printer {
	r := lipgloss.NewRenderer(stdout)

	diag := stdout
	if format != config.OutputText {
		diag = stderr
	}

	return &printer{
		out:     stdout,
		diag:    diag,
		format:  format,
		enabled: verbose,
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		command: r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		header:  r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (p *printer) verbose(format string, args ...any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.diag, format+"\n", args...)
}

func (p *printer) report(profile shell.Profile, r Report) error {
	switch p.format {
	case config.OutputJSON:
		encoder := json.NewEncoder(p.out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case config.OutputYAML:
		encoder := yaml.NewEncoder(p.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	}

	p.verbose("Found %d multiline entries", r.Stats.MultilineEntries)
	p.verbose("Removed %d multiline entries (%d+ lines)", r.Stats.RemovedEntries, r.Threshold)
	p.verbose("Kept %d lines from %d original lines", r.Stats.KeptLines, r.Stats.OriginalLines)
	if p.enabled {
		p.statsTable(r.Stats)
	}

	if r.DryRun {
		fmt.Fprintf(p.out, "\n%s Dry run: %s history would lose %d entries (%d lines); nothing was written.\n",
			p.success.Render("✓"), profile.Title(), r.Stats.RemovedEntries, r.Stats.RemovedLines)
		return nil
	}

	fmt.Fprintf(p.out, "\n%s History cleaned successfully!\n", p.success.Render("✓"))
	fmt.Fprintf(p.out, "\n  To apply in current session, run:  %s\n", p.command.Render(r.ReloadCmd))
	return nil
}

func (p *printer) statsTable(s history.CleaningStats) {
	tbl := table.New("Lines", "Count").WithWriter(p.diag)
	tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
		return p.header.Render(fmt.Sprintf(format, vals...))
	})
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return p.muted.Render(fmt.Sprintf(format, vals...))
	})

	tbl.AddRow("original", s.OriginalLines)
	tbl.AddRow("kept", s.KeptLines)
	tbl.AddRow("removed", s.RemovedLines)
	tbl.Print()
}

// PrintError writes err to w the way the command reports failures.
func PrintError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("9"))

	if he, ok := cherrors.AsHistoryError(err); ok && cherrors.IsNotFound(err) {
		fmt.Fprintf(w, "%s %s\n", style.Render("History file not found:"), he.Path)
		return
	}
	fmt.Fprintf(w, "%s %v\n", style.Render("Error:"), err)
}
