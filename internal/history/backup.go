package history

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// BackupTimeLayout is the second-resolution timestamp used in backup names.
const BackupTimeLayout = "2006-01-02-150405"

// maxBackupSuffix caps the "-N" suffixes tried when a backup name is taken.
const maxBackupSuffix = 1000

// BackupName returns the file name for a backup of label's history taken at now,
// e.g. "zsh_history.2024-03-01-134501".
func BackupName(label string, now time.Time) string {
	return fmt.Sprintf("%s_history.%s", label, now.Format(BackupTimeLayout))
}

// Backup copies source byte-for-byte into destDir, creating destDir and any
// missing parents first, and returns the path of the new file. The file is
// named by BackupName; if a backup with that name already exists a numeric
// suffix is appended so existing backups are never overwritten.
func Backup(source, destDir, label string, now time.Time) (string, error) {
	src, err := os.Open(source)
	if err != nil {
		return "", ioError("backup", source, err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return "", ioError("backup", source, err)
	}
	if info.IsDir() {
		return "", ioError("backup", source, fmt.Errorf("%s is a directory", source))
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", ioError("backup", destDir, err)
	}

	dst, path, err := createBackupFile(destDir, BackupName(label, now), info.Mode().Perm())
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", ioError("backup", path, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", ioError("backup", path, err)
	}

	return path, nil
}

// createBackupFile exclusively creates name (or name-1, name-2, ...) in dir.
func createBackupFile(dir, name string, perm os.FileMode) (*os.File, string, error) {
	candidate := name
	for n := 1; n <= maxBackupSuffix; n++ {
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if err == nil {
			return f, path, nil
		}
		if !os.IsExist(err) {
			return nil, "", ioError("backup", path, err)
		}
		candidate = fmt.Sprintf("%s-%d", name, n)
	}
	return nil, "", ioError("backup", filepath.Join(dir, name), fmt.Errorf("too many backups named %s", name))
}
