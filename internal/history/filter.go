package history

// Clean drops every continued entry whose length is at least threshold and
// returns the surviving lines together with the number of dropped entries.
//
// Entries shorter than threshold are kept unmodified and in order. Lines
// that are not part of a continued entry are always kept. A negative
// threshold behaves like zero.
func Clean(lines []string, threshold int) ([]string, int) {
	kept, stats := CleanWithStats(lines, threshold)
	return kept, stats.RemovedEntries
}

// CleanWithStats is Clean with the full pass summary.
func CleanWithStats(lines []string, threshold int) ([]string, CleaningStats) {
	stats := CleaningStats{OriginalLines: len(lines)}
	kept := make([]string, 0, len(lines))

	for _, e := range Entries(lines) {
		if e.Multiline() {
			stats.MultilineEntries++
		}
		if Drop(e, threshold) {
			stats.RemovedEntries++
			stats.RemovedLines += e.Len()
			continue
		}
		kept = append(kept, e.Lines...)
	}

	stats.KeptLines = len(kept)
	return kept, stats
}

// Drop reports whether the entry is removed at the given threshold.
func Drop(e Entry, threshold int) bool {
	return e.Continued && e.Len() >= threshold
}
