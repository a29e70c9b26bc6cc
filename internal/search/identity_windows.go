//go:build windows

package search

import (
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash"
)

// dirIdentity hashes the canonical path, Windows paths being case-insensitive
func dirIdentity(path string) (fileID, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fileID{}, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fileID{}, err
	}
	return fileID{ino: xxhash.Sum64([]byte(strings.ToLower(resolved)))}, nil
}
