package history

import (
	"strings"
	"unicode"
)

// Entries splits lines into logical entries in a single forward pass.
//
// A line that does not end with the continuation marker is an entry on its
// own. A line that does starts a continued entry, which extends over every
// following marker-terminated line plus the first line without a marker.
// When the input ends while still inside a continued entry, the entry ends
// at end-of-input.
//
// The returned entries partition lines exactly and in order.
func Entries(lines []string) []Entry {
	var entries []Entry

	i := 0
	for i < len(lines) {
		if !continues(lines[i]) {
			entries = append(entries, Entry{Start: i, End: i + 1, Lines: lines[i : i+1 : i+1]})
			i++
			continue
		}

		j := i
		for j < len(lines) && continues(lines[j]) {
			j++
		}
		// The first unmarked line terminates the command.
		if j < len(lines) {
			j++
		}

		entries = append(entries, Entry{Start: i, End: j, Lines: lines[i:j:j], Continued: true})
		i = j
	}

	return entries
}

// continues reports whether line ends with the continuation marker, ignoring
// trailing whitespace.
func continues(line string) bool {
	return strings.HasSuffix(strings.TrimRightFunc(line, unicode.IsSpace), ContinuationMarker)
}
