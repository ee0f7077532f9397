package history

// ContinuationMarker is the character that, as the last non-whitespace
// character of a line, joins the next line into the same command.
const ContinuationMarker = `\`

// Entry is a logical history entry: the half-open run of lines [Start, End)
// that the shell recorded for one command.
type Entry struct {
	Start int
	End   int

	// Lines aliases the input slice; callers must not append to it.
	Lines []string

	// Continued is set when the first line ends with ContinuationMarker.
	// Only continued entries are subject to the threshold.
	Continued bool
}

// Len returns the number of lines in the entry.
func (e Entry) Len() int {
	return e.End - e.Start
}

// Multiline reports whether the entry spans more than one line.
func (e Entry) Multiline() bool {
	return e.Len() > 1
}

// CleaningStats summarizes a single cleaning pass.
type CleaningStats struct {
	OriginalLines  int `json:"original_lines" yaml:"original_lines"`
	KeptLines      int `json:"kept_lines" yaml:"kept_lines"`
	RemovedEntries int `json:"removed_entries" yaml:"removed_entries"`
	RemovedLines   int `json:"removed_lines" yaml:"removed_lines"`

	// MultilineEntries counts every entry spanning two or more lines,
	// removed or not.
	MultilineEntries int `json:"multiline_entries" yaml:"multiline_entries"`
}

// CleanOptions controls CleanFile.
type CleanOptions struct {
	// Threshold is the entry length at which a continued entry is dropped.
	Threshold int

	// DryRun computes the result without rewriting the file.
	DryRun bool
}
