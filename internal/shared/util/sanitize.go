package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName marks an upload filename that cannot become a storage key.
var ErrInvalidFileName = errors.New("invalid file name")

var separatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFileName flattens path separators out of an upload's origin
// filename so it is safe to embed in a storage key. Traversal patterns
// and empty names are rejected outright.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := separatorReplacer.Replace(strings.TrimSpace(name))
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
