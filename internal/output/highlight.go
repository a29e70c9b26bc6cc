package output

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"hunt/internal/search"
)

const (
	plainClass uint8 = iota
	fixClass
	queryClass
)

// Highlighter renders contains-matches with the prefix, query and suffix
// emphasized
type Highlighter struct {
	query  string
	starts string
	ends   string

	queryColor *color.Color
	fixColor   *color.Color
}

// NewHighlighter builds a highlighter for cfg. When colored is false the
// rendered string is the plain path.
func NewHighlighter(cfg search.Config, colored bool) *Highlighter {
	h := &Highlighter{
		query:      search.NormalizeName(cfg.Name),
		starts:     search.NormalizeName(cfg.Starts),
		ends:       search.NormalizeName(cfg.Ends),
		queryColor: color.New(color.FgHiRed, color.Bold),
		fixColor:   color.New(color.FgHiMagenta, color.Bold),
	}
	if !cfg.CaseSensitive {
		h.query = search.FoldName(h.query)
		h.starts = search.FoldName(h.starts)
		h.ends = search.FoldName(h.ends)
	}
	if colored {
		h.queryColor.EnableColor()
		h.fixColor.EnableColor()
	} else {
		h.queryColor.DisableColor()
		h.fixColor.DisableColor()
	}
	return h
}

// Func returns the highlighter as a search.HighlightFunc
func (h *Highlighter) Func() search.HighlightFunc {
	return h.Render
}

// Render returns dir joined with name, highlighted. folded must have the
// same byte length as name.
func (h *Highlighter) Render(dir, name, folded string) string {
	var b strings.Builder
	b.Grow(len(dir) + len(name) + 32)
	if dir != "." && dir != "" {
		b.WriteString(dir)
		if !os.IsPathSeparator(dir[len(dir)-1]) {
			b.WriteByte(os.PathSeparator)
		}
	}

	if len(folded) != len(name) {
		b.WriteString(name)
		return b.String()
	}

	prefixEnd := len(h.starts)
	suffixStart := len(name) - len(h.ends)
	if prefixEnd > suffixStart {
		b.WriteString(paint(h.fixColor, name))
		return b.String()
	}

	queryStart := strings.Index(folded[prefixEnd:suffixStart], h.query)
	if queryStart >= 0 {
		queryStart += prefixEnd
	} else {
		// the query may overlap the prefix or the suffix
		queryStart = strings.Index(folded, h.query)
	}

	class := make([]uint8, len(name))
	for i := 0; i < prefixEnd; i++ {
		class[i] = fixClass
	}
	for i := suffixStart; i < len(name); i++ {
		class[i] = fixClass
	}
	if queryStart >= 0 {
		for i := queryStart; i < queryStart+len(h.query); i++ {
			class[i] = queryClass
		}
	}

	for i := 0; i < len(name); {
		j := i + 1
		for j < len(name) && class[j] == class[i] {
			j++
		}
		switch class[i] {
		case fixClass:
			b.WriteString(paint(h.fixColor, name[i:j]))
		case queryClass:
			b.WriteString(paint(h.queryColor, name[i:j]))
		default:
			b.WriteString(name[i:j])
		}
		i = j
	}
	return b.String()
}

func paint(c *color.Color, s string) string {
	if s == "" {
		return ""
	}
	return c.Sprint(s)
}
