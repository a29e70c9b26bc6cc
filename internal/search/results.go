package search

import (
	"bytes"
)

// Bucket is an append-only list of strings packed into one buffer.
// Every item is terminated by a NUL byte, which never occurs in a path,
// so an item costs its length plus one byte.
type Bucket struct {
	buf []byte
	n   int
}

// Append adds s to the bucket
func (b *Bucket) Append(s string) {
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, 0)
	b.n++
}

// Merge appends all items of other to b
func (b *Bucket) Merge(other *Bucket) {
	if other == nil || other.n == 0 {
		return
	}
	if b.n == 0 {
		b.buf, b.n = other.buf, other.n
		return
	}
	b.buf = append(b.buf, other.buf...)
	b.n += other.n
}

// Len returns the number of items
func (b *Bucket) Len() int {
	return b.n
}

// Size returns the number of bytes held by the bucket
func (b *Bucket) Size() int {
	return len(b.buf)
}

// Each calls fn for every item in insertion order until fn returns false.
// The string passed to fn is a copy and may be retained.
func (b *Bucket) Each(fn func(string) bool) {
	rest := b.buf
	for len(rest) > 0 {
		i := bytes.IndexByte(rest, 0)
		if i < 0 {
			return
		}
		if !fn(string(rest[:i])) {
			return
		}
		rest = rest[i+1:]
	}
}

// Strings returns all items in insertion order
func (b *Bucket) Strings() []string {
	out := make([]string, 0, b.n)
	b.Each(func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

// Results holds exact and contains matches in separate partitions
type Results struct {
	Exact    Bucket
	Contains Bucket
}

// Add stores a match in its partition
func (r *Results) Add(m Match) {
	switch m.Kind {
	case Exact:
		r.Exact.Append(m.Text)
	default:
		r.Contains.Append(m.Text)
	}
}

// Merge moves the matches of other into r
func (r *Results) Merge(other *Results) {
	if other == nil {
		return
	}
	r.Exact.Merge(&other.Exact)
	r.Contains.Merge(&other.Contains)
}

// Len returns the total number of matches
func (r *Results) Len() int {
	return r.Exact.Len() + r.Contains.Len()
}

// Empty reports whether no match was recorded
func (r *Results) Empty() bool {
	return r.Len() == 0
}
