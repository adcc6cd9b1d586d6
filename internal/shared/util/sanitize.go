package util

import (
	"errors"
	"path"
	"strings"
)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// FileExtension returns the lowercased extension of a file name without the
// leading dot, or "bin" when the name has none.
func FileExtension(name string) string {
	ext := strings.TrimPrefix(path.Ext(strings.TrimSpace(name)), ".")
	if ext == "" {
		return "bin"
	}
	return strings.ToLower(ext)
}
