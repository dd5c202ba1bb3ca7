// File: filex.go
// Title: File Utilities
// Description: File helpers used when locating configuration and writing
//              generated artifacts. Writes go through a temporary file in the
//              target directory so a failed run never leaves a truncated
//              artifact behind.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-18 v0.2.0: Reduced to lookup and atomic artifact writing, coded errors

package filex

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// FirstFile returns the first of paths that is a regular file
func FirstFile(paths ...string) (string, bool) {
	for _, p := range paths {
		if IsFile(p) {
			return p, true
		}
	}
	return "", false
}

// WriteFile writes data to path, creating missing parent directories. The
// data is written to a temporary file first and renamed into place.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ioError(err, "failed to create directory", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return ioError(err, "failed to create temporary file", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return ioError(err, "failed to write file", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return ioError(err, "failed to write file", path)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return ioError(err, "failed to set file mode", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return ioError(err, "failed to write file", path)
	}
	return nil
}

func ioError(err error, message, path string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeIO).
		WithOperation("filex.WriteFile").
		WithDetail("path", path)
}
