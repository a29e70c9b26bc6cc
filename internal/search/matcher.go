package search

import (
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// matcher evaluates directory entries against a search configuration
type matcher struct {
	name          string
	starts        string
	ends          string
	caseSensitive bool
	exact         bool
	hidden        bool
	ftype         FileType
	followLinks   bool
	highlight     HighlightFunc

	ignore *ignoreSet
	system *ignoreSet
}

// newMatcher prepares the predicate for the given walk roots
func newMatcher(cfg *Config, roots []string) *matcher {
	m := &matcher{
		name:          NormalizeName(cfg.Name),
		starts:        NormalizeName(cfg.Starts),
		ends:          NormalizeName(cfg.Ends),
		caseSensitive: cfg.CaseSensitive,
		exact:         cfg.Exact,
		hidden:        cfg.Hidden,
		ftype:         cfg.Type,
		followLinks:   cfg.FollowLinks,
		highlight:     cfg.Highlight,
		ignore:        newIgnoreSet(cfg.Ignore, roots),
		system:        newSystemSet(roots),
	}
	if !m.caseSensitive {
		m.name = FoldName(m.name)
		m.starts = FoldName(m.starts)
		m.ends = FoldName(m.ends)
	}
	return m
}

// evaluate decides whether the entry d found in dir is a match and whether
// it must be expanded. next is empty when the entry is not traversable.
func (m *matcher) evaluate(dir string, d fs.DirEntry) (match Match, matched bool, next string) {
	raw := d.Name()
	if raw == "" || raw == "." || raw == ".." {
		return Match{}, false, ""
	}

	if m.ignore.matchName(raw) {
		return Match{}, false, ""
	}
	path := joinPath(dir, raw)
	if m.ignore.matchPath(path) {
		return Match{}, false, ""
	}
	if !m.hidden && (IsHidden(path, d) || m.system.matchPath(path)) {
		return Match{}, false, ""
	}

	isDir := m.isDir(path, d)

	var typeOK bool
	switch m.ftype {
	case DirOnly:
		typeOK = isDir
	case FileOnly:
		typeOK = !isDir
	default:
		typeOK = true
	}

	if typeOK {
		name := NormalizeName(raw)
		folded := name
		if !m.caseSensitive {
			folded = FoldName(name)
		}
		if strings.HasPrefix(folded, m.starts) && strings.HasSuffix(folded, m.ends) {
			if folded == m.name {
				match, matched = Match{Kind: Exact, Text: path}, true
			} else if !m.exact && strings.Contains(folded, m.name) {
				text := path
				if m.highlight != nil {
					text = m.highlight(dir, name, folded)
				}
				match, matched = Match{Kind: Contains, Text: text}, true
			}
		}
	}

	if isDir {
		next = path
	}
	return match, matched, next
}

// isDir probes the entry type. A failed probe counts as "not a directory".
func (m *matcher) isDir(path string, d fs.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if !m.followLinks || d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// NormalizeName decodes a name on a best-effort basis and brings it to NFC
// so names stored decomposed on disk compare equal to typed queries
func NormalizeName(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// FoldName lowercases ASCII letters. Byte offsets are preserved, which
// keeps highlight positions valid for the original name.
func FoldName(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// joinPath joins a walked directory and an entry name without re-cleaning.
// dir is always clean, so the result matches filepath.Join.
func joinPath(dir, name string) string {
	if dir == "." || dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
