//go:build !windows

package search

import "io/fs"

// IsHidden checks if an entry is hidden on this platform (Unix-like)
func IsHidden(_ string, d fs.DirEntry) bool {
	name := d.Name()
	return len(name) > 0 && name[0] == '.'
}
