package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// AssetsDirName is the directory holding images, next to the executable
const AssetsDirName = "Assets"

// Separators treated as equivalent when matching asset file names
var (
	FileNameVariations = []string{"-", "_", " "}
)

// ErrFileNotFound is returned when neither the path nor a similar file exists
var ErrFileNotFound = errors.New("file not found")

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	return os.MkdirAll(dirPath, DefaultDirPermissions)
}

// DefaultAssetsDir returns the Assets directory next to the executable,
// falling back to Assets under the working directory
func DefaultAssetsDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), AssetsDirName)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return AssetsDirName
	}
	return filepath.Join(wd, AssetsDirName)
}

// FindFileWithFallback returns filePath if it exists, otherwise a file in
// the same directory whose name matches ignoring case and separator style
func FindFileWithFallback(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}

	if _, err := os.Stat(filePath); err == nil {
		return filePath, nil
	}

	dir := filepath.Dir(filePath)
	want := normalizeFileName(filepath.Base(filePath))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filePath, ErrFileNotFound)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if normalizeFileName(entry.Name()) == want {
			candidates = append(candidates, filepath.Join(dir, entry.Name()))
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%s: %w", filePath, ErrFileNotFound)
	}
	sort.Strings(candidates)
	return candidates[0], nil
}

// normalizeFileName lowercases name and collapses separator variations
func normalizeFileName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, sep := range FileNameVariations {
		name = strings.ReplaceAll(name, sep, "")
	}
	return name
}
