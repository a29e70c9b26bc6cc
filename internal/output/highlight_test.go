package output

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"hunt/internal/search"
)

func TestHighlighterPlain(t *testing.T) {
	tests := []struct {
		name   string
		cfg    search.Config
		dir    string
		entry  string
		folded string
		want   string
	}{
		{
			name:   "current directory",
			cfg:    search.Config{Name: "target"},
			dir:    ".",
			entry:  "my_target.txt",
			folded: "my_target.txt",
			want:   "my_target.txt",
		},
		{
			name:   "nested directory",
			cfg:    search.Config{Name: "target"},
			dir:    filepath.Join("a", "b"),
			entry:  "target2.txt",
			folded: "target2.txt",
			want:   filepath.Join("a", "b", "target2.txt"),
		},
		{
			name:   "root with separator",
			cfg:    search.Config{Name: "x"},
			dir:    string(filepath.Separator),
			entry:  "xy",
			folded: "xy",
			want:   string(filepath.Separator) + "xy",
		},
		{
			name:   "case preserved",
			cfg:    search.Config{Name: "readme"},
			dir:    "docs",
			entry:  "OLD_README.md",
			folded: "old_readme.md",
			want:   filepath.Join("docs", "OLD_README.md"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHighlighter(tt.cfg, false)
			assert.Equal(t, tt.want, h.Render(tt.dir, tt.entry, tt.folded))
		})
	}
}

func TestHighlighterColored(t *testing.T) {
	query := color.New(color.FgHiRed, color.Bold)
	query.EnableColor()
	fix := color.New(color.FgHiMagenta, color.Bold)
	fix.EnableColor()

	t.Run("query only", func(t *testing.T) {
		h := NewHighlighter(search.Config{Name: "get"}, true)
		got := h.Render(".", "TarGet.txt", "target.txt")
		assert.Equal(t, "Tar"+query.Sprint("Get")+".txt", got)
	})

	t.Run("prefix query suffix", func(t *testing.T) {
		h := NewHighlighter(search.Config{Name: "mid", Starts: "pre", Ends: ".go"}, true)
		got := h.Render("src", "pre_mid_x.go", "pre_mid_x.go")
		want := filepath.Join("src", fix.Sprint("pre")+"_"+query.Sprint("mid")+"_x"+fix.Sprint(".go"))
		assert.Equal(t, want, got)
	})

	t.Run("query searched between prefix and suffix", func(t *testing.T) {
		h := NewHighlighter(search.Config{Name: "ab", Starts: "ab", Ends: "ab"}, true)
		got := h.Render(".", "ab_ab_ab", "ab_ab_ab")
		assert.Equal(t, fix.Sprint("ab")+"_"+query.Sprint("ab")+"_"+fix.Sprint("ab"), got)
	})

	t.Run("overlapping prefix and suffix", func(t *testing.T) {
		h := NewHighlighter(search.Config{Name: "b", Starts: "ab", Ends: "bc"}, true)
		got := h.Render(".", "abc", "abc")
		assert.Equal(t, fix.Sprint("abc"), got)
	})

	t.Run("query overlapping the prefix", func(t *testing.T) {
		h := NewHighlighter(search.Config{Name: "abc", Starts: "ab"}, true)
		got := h.Render(".", "abcd", "abcd")
		assert.Equal(t, query.Sprint("abc")+"d", got)
	})

	t.Run("query overlapping the suffix", func(t *testing.T) {
		h := NewHighlighter(search.Config{Name: "x.g", Ends: ".go"}, true)
		got := h.Render(".", "ax.go", "ax.go")
		assert.Equal(t, "a"+query.Sprint("x.g")+fix.Sprint("o"), got)
	})

	t.Run("length mismatch falls back to plain", func(t *testing.T) {
		h := NewHighlighter(search.Config{Name: "x"}, true)
		got := h.Render(".", "xy", "xyz")
		assert.Equal(t, "xy", got)
		assert.False(t, strings.Contains(got, "\x1b"))
	})
}

func TestHighlighterFunc(t *testing.T) {
	h := NewHighlighter(search.Config{Name: "a"}, false)
	fn := h.Func()
	assert.Equal(t, "ab", fn(".", "ab", "ab"))
}
