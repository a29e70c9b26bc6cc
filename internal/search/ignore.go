package search

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ignoreSet holds ignore rules canonicalized once before the walk.
// Bare names match an entry's base name, path rules match the walked path.
type ignoreSet struct {
	names map[string]struct{}
	paths map[string]struct{}
}

func (s *ignoreSet) matchName(name string) bool {
	if len(s.names) == 0 {
		return false
	}
	_, ok := s.names[name]
	return ok
}

func (s *ignoreSet) matchPath(path string) bool {
	if len(s.paths) == 0 {
		return false
	}
	_, ok := s.paths[path]
	return ok
}

// newIgnoreSet compiles explicit ignore entries for the given walk roots
func newIgnoreSet(entries []string, roots []string) *ignoreSet {
	set := &ignoreSet{
		names: make(map[string]struct{}),
		paths: make(map[string]struct{}),
	}

	var abs []string
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" || entry == "." || entry == ".." {
			continue
		}
		if !isPathLike(entry) {
			set.names[entry] = struct{}{}
			continue
		}
		abs = append(abs, CanonicalPath(entry))
	}
	set.addPaths(abs, roots)
	return set
}

// newSystemSet compiles the built-in system path list for the given roots
func newSystemSet(roots []string) *ignoreSet {
	set := &ignoreSet{paths: make(map[string]struct{})}
	if runtime.GOOS == "windows" {
		return set
	}
	set.addPaths(systemPaths, roots)
	return set
}

// addPaths registers absolute paths both as-is and translated into the
// walked-path form of every root containing them
func (s *ignoreSet) addPaths(abs []string, roots []string) {
	if len(abs) == 0 {
		return
	}

	rootAbs := make([]string, len(roots))
	for i, root := range roots {
		rootAbs[i] = CanonicalPath(root)
	}

	for _, p := range abs {
		s.paths[p] = struct{}{}
		for i, root := range roots {
			rel, err := filepath.Rel(rootAbs[i], p)
			if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				continue
			}
			s.paths[filepath.Join(root, rel)] = struct{}{}
		}
	}
}

// CanonicalPath returns the absolute, symlink-evaluated form of path.
// When the path cannot be evaluated the cleaned absolute path is returned.
func CanonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

func isPathLike(entry string) bool {
	if filepath.IsAbs(entry) {
		return true
	}
	return strings.ContainsRune(entry, os.PathSeparator) || strings.ContainsRune(entry, '/')
}
