// Package history cleans oversized multiline entries out of shell history
// files and keeps timestamped backups of the files it rewrites.
package history

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	cherrors "github.com/chazuruo/clean-history/internal/errors"
)

// ReadLines reads the whole file at path and splits it into lines.
// Line terminators ("\n" or "\r\n") are stripped; a final line without a
// terminator is still returned. An empty file yields no lines. Lines are not
// length-limited.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	defer func() { _ = file.Close() }()

	var lines []string
	reader := bufio.NewReader(file)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, ioError("read", path, err)
		}
		if line == "" && err == io.EOF {
			break
		}

		if strings.HasSuffix(line, "\n") {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		}
		lines = append(lines, line)

		if err == io.EOF {
			break
		}
	}

	return lines, nil
}

// WriteLines truncates the file at path and writes each line followed by a
// newline.
func WriteLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return ioError("write", path, err)
	}

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			_ = file.Close()
			return ioError("write", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			_ = file.Close()
			return ioError("write", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		_ = file.Close()
		return ioError("write", path, err)
	}
	if err := file.Close(); err != nil {
		return ioError("write", path, err)
	}

	return nil
}

// CleanFile reads the history file at path to completion, cleans it and,
// unless opts.DryRun is set, overwrites it with the result. The file is not
// opened for writing until the cleaned content is fully computed.
//
// No lock is taken: a shell appending to the same file while CleanFile runs
// may lose those writes.
func CleanFile(path string, opts CleanOptions) (CleaningStats, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return CleaningStats{}, err
	}

	kept, stats := CleanWithStats(lines, opts.Threshold)

	if opts.DryRun {
		return stats, nil
	}

	if err := WriteLines(path, kept); err != nil {
		return CleaningStats{}, err
	}

	return stats, nil
}

func ioError(op, path string, err error) error {
	return &cherrors.HistoryError{Op: op, Path: path, Err: fmt.Errorf("%w: %w", cherrors.ErrIO, err)}
}
