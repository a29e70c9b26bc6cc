package output

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"sync"

	"hunt/internal/search"
)

// NotFound is printed in normal output when nothing matched
const NotFound = "File not found"

// PrintResults sorts and writes the collected results. Streamed output has
// already been written, so nothing is printed for it.
func PrintResults(w io.Writer, res *search.Results, out search.Output) error {
	if out == search.SuperSimple {
		return nil
	}

	bw := bufio.NewWriter(w)
	if res == nil || res.Empty() {
		if out == search.Normal {
			fmt.Fprintln(bw, NotFound)
		}
		return bw.Flush()
	}

	contains, exact := sortedPartitions(res)

	if out == search.Normal {
		fmt.Fprintln(bw, "Contains:")
	}
	for _, path := range contains {
		fmt.Fprintln(bw, path)
	}
	if out == search.Normal {
		fmt.Fprintln(bw, "\nExact:")
	}
	for _, path := range exact {
		fmt.Fprintln(bw, path)
	}
	return bw.Flush()
}

// sortedPartitions materializes and sorts both partitions concurrently
func sortedPartitions(res *search.Results) (contains, exact []string) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		contains = res.Contains.Strings()
		slices.Sort(contains)
	}()
	exact = res.Exact.Strings()
	slices.Sort(exact)
	wg.Wait()
	return contains, exact
}

// PrintFirst writes the single match of first-match mode, or the not-found
// notice in normal output
func PrintFirst(w io.Writer, m search.Match, found bool, out search.Output) error {
	if found {
		_, err := fmt.Fprintln(w, m.Text)
		return err
	}
	if out == search.Normal {
		_, err := fmt.Fprintln(w, NotFound)
		return err
	}
	return nil
}

// Streamer writes matches line by line as they arrive
type Streamer struct {
	w     *bufio.Writer
	err   error
	count int
}

// NewStreamer creates a streamer writing to w
func NewStreamer(w io.Writer) *Streamer {
	return &Streamer{w: bufio.NewWriter(w)}
}

// Write prints one match. After the first write error further matches are
// dropped and the error is reported by Flush.
func (s *Streamer) Write(m search.Match) {
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteString(m.Text); err != nil {
		s.err = err
		return
	}
	s.err = s.w.WriteByte('\n')
	s.count++
}

// Count returns the number of matches written
func (s *Streamer) Count() int {
	return s.count
}

// Flush writes buffered output
func (s *Streamer) Flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}
