package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile resolves path to a file, trying in order: the path itself if
// absolute, then relative to the working directory, the executable's
// directory, and the user's home directory. Returns the first existing
// match as a cleaned absolute-or-relative path, or an error naming the
// file if none of them exist.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, fmt.Errorf("file could not be found: %s", file)
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(home, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	return file, fmt.Errorf("file could not be found: %s", file)
}

// ResolveCreateFolder resolves folderPath to a directory, creating it if
// necessary: first under the working directory, falling back to the OS
// temp directory if that fails (e.g. a read-only working tree).
func ResolveCreateFolder(folderPath string) (string, error) {
	folderPath = filepath.Clean(folderPath)

	if filepath.IsAbs(folderPath) {
		if folderExists(folderPath) {
			return folderPath, nil
		}
		return folderPath, os.Mkdir(folderPath, 0o755)
	}

	dir, _ := os.Getwd()
	candidate := filepath.Join(dir, filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	if err := os.Mkdir(candidate, 0o755); err == nil {
		return candidate, nil
	}

	tmp := filepath.Join(os.TempDir(), filepath.Base(folderPath))
	if folderExists(tmp) {
		return tmp, nil
	}
	return tmp, os.Mkdir(tmp, 0o755)
}

func fileExists(name string) bool {
	info, err := os.Stat(name)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(name string) bool {
	info, err := os.Stat(name)
	if err != nil || info == nil {
		return false
	}
	return info.IsDir()
}
