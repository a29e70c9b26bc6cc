package search

import (
	"fmt"
)

// FileType restricts matches to files, directories or both
type FileType int

const (
	AnyType FileType = iota
	FileOnly
	DirOnly
)

// ParseFileType parses the short type names accepted on the command line
func ParseFileType(s string) (FileType, error) {
	switch s {
	case "":
		return AnyType, nil
	case "f":
		return FileOnly, nil
	case "d":
		return DirOnly, nil
	default:
		return AnyType, fmt.Errorf("file type %q not recognized, use 'f' for files and 'd' for directories", s)
	}
}

// Output controls how results are rendered
type Output int

const (
	// Normal highlights contains-matches and prints "Contains:" / "Exact:" headers
	Normal Output = iota
	// Simple prints sorted paths without headers or highlighting
	Simple
	// SuperSimple streams unsorted paths as they are found
	SuperSimple
)

// HighlightFunc renders a contains-match for display. folded is the name used
// for matching (lowercased when the search is case-insensitive) and has the
// same byte length as name.
type HighlightFunc func(dir, name, folded string) string

// Config contains search parameters. It is built once and never modified
// while a search runs.
type Config struct {
	Name          string   // Query, folded by the matcher when CaseSensitive is false
	CaseSensitive bool     // Compare names without case folding
	Starts        string   // Required name prefix
	Ends          string   // Required name suffix
	Type          FileType // Type filter
	Exact         bool     // Only exact matches are reported
	Hidden        bool     // Traverse hidden entries and system paths
	First         bool     // Stop on the first match
	Canonicalize  bool     // Canonicalize roots
	Limit         bool     // Roots were given explicitly in Dirs
	Verbose       bool     // Report unreadable directories
	Output        Output
	Ignore        []string // Ignore entries: bare names or absolute paths
	Dirs          []string // Explicit roots, used when Limit is set

	Workers     int           // Pool size, NumCPU when <= 0
	FollowLinks bool          // Follow symbolic links to directories
	Highlight   HighlightFunc // Optional renderer for contains-matches
	Progress    *Progress     // Optional live counters
}

// Kind tells which result partition a match belongs to
type Kind uint8

const (
	Exact Kind = iota
	Contains
)

func (k Kind) String() string {
	if k == Exact {
		return "exact"
	}
	return "contains"
}

// Match represents a single found entry
type Match struct {
	Kind Kind
	Text string // Raw path, or the highlighted display string for contains-matches
}

func (m Match) String() string {
	return m.Text
}
