package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketAppendAndEach(t *testing.T) {
	var b Bucket
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Strings())

	b.Append("a/target.txt")
	b.Append("")
	b.Append("a/b/target2.txt")

	require.Equal(t, 3, b.Len())
	assert.Equal(t, []string{"a/target.txt", "", "a/b/target2.txt"}, b.Strings())
	assert.Equal(t, len("a/target.txt")+len("a/b/target2.txt")+3, b.Size())

	var seen []string
	b.Each(func(s string) bool {
		seen = append(seen, s)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"a/target.txt", ""}, seen)
}

func TestBucketMerge(t *testing.T) {
	var a, b, empty Bucket
	a.Append("one")
	b.Append("two")
	b.Append("three")

	a.Merge(&b)
	a.Merge(&empty)
	a.Merge(nil)
	assert.Equal(t, []string{"one", "two", "three"}, a.Strings())
	assert.Equal(t, 3, a.Len())

	empty.Merge(&a)
	assert.Equal(t, a.Strings(), empty.Strings())
}

func TestResultsPartitions(t *testing.T) {
	var r Results
	assert.True(t, r.Empty())

	r.Add(Match{Kind: Exact, Text: "x/name"})
	r.Add(Match{Kind: Contains, Text: "x/my-name"})
	r.Add(Match{Kind: Contains, Text: "x/names"})

	var other Results
	other.Add(Match{Kind: Exact, Text: "y/name"})
	r.Merge(&other)
	r.Merge(nil)

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []string{"x/name", "y/name"}, r.Exact.Strings())
	assert.Equal(t, []string{"x/my-name", "x/names"}, r.Contains.Strings())
}
