package search

import (
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Entries read from a directory per call, so a stop request is noticed
// inside very large directories too
const readBatch = 1024

type mode int

const (
	collectMode mode = iota
	streamMode
	firstMode
)

// pool is a fixed set of workers sharing a queue of directories.
//
// pending counts every directory that was handed out (local slot or queue)
// and not yet expanded. It is incremented before the directory is published
// and decremented after its expansion, so it reaches zero only when no work
// exists anywhere. The worker making it zero closes done.
type pool struct {
	matcher *matcher
	visited *visitedSet
	mode    mode

	work     chan string
	done     chan struct{}
	doneOnce sync.Once
	pending  atomic.Int64
	stopped  atomic.Bool

	first   Match
	matches chan Match

	workers []*worker
	wg      sync.WaitGroup
}

type worker struct {
	id      int
	p       *pool
	local   []string
	results Results
	stats   *workerStats
}

func newPool(m *matcher, size int, queued int, md mode, progress *Progress) *pool {
	capacity := size * 64
	if queued > capacity {
		capacity = queued
	}
	p := &pool{
		matcher: m,
		mode:    md,
		work:    make(chan string, capacity),
		done:    make(chan struct{}),
	}
	if md == streamMode {
		p.matches = make(chan Match, 256)
	}
	p.workers = make([]*worker, size)
	for i := range p.workers {
		p.workers[i] = &worker{id: i, p: p, stats: progress.register()}
	}
	return p
}

// followLinks enables cycle protection for symbolic link traversal
func (p *pool) followLinks() {
	p.visited = newVisitedSet()
}

// seed queues the roots. Must be called before start.
func (p *pool) seed(roots []string) {
	p.pending.Add(int64(len(roots)))
	for _, root := range roots {
		p.work <- root
	}
}

func (p *pool) start() {
	for _, w := range p.workers {
		p.wg.Add(1)
		go func(w *worker) {
			defer p.wg.Done()
			w.run()
		}(w)
	}
}

// stop releases every worker. Safe to call more than once.
func (p *pool) stop() {
	p.doneOnce.Do(func() {
		close(p.done)
	})
}

// cancel stops the walk before it is complete
func (p *pool) cancel() {
	p.stopped.Store(true)
	p.stop()
}

// join waits for all workers and merges their results
func (p *pool) join() *Results {
	p.wg.Wait()
	if p.matches != nil {
		close(p.matches)
	}
	results := &Results{}
	for _, w := range p.workers {
		results.Merge(&w.results)
		w.results = Results{}
	}
	return results
}

// firstMatch returns the match recorded in first mode. Valid after join.
func (p *pool) firstMatch() (Match, bool) {
	if p.first.Text == "" {
		return Match{}, false
	}
	return p.first, true
}

func (w *worker) run() {
	for {
		dir, ok := w.next()
		if !ok {
			return
		}
		w.expand(dir)
		if w.p.pending.Add(-1) == 0 {
			w.p.stop()
			return
		}
	}
}

// next returns the worker's own directory if it has one, else waits on
// the shared queue
func (w *worker) next() (string, bool) {
	if w.p.stopped.Load() {
		return "", false
	}
	if n := len(w.local); n > 0 {
		dir := w.local[n-1]
		w.local[n-1] = ""
		w.local = w.local[:n-1]
		w.share()
		return dir, true
	}
	select {
	case dir := <-w.p.work:
		return dir, true
	case <-w.p.done:
		return "", false
	}
}

// share moves surplus local directories to the queue while it has room.
// The oldest ones go first, as they tend to hold the largest subtrees.
func (w *worker) share() {
	for len(w.local) > 1 {
		select {
		case w.p.work <- w.local[0]:
			w.local[0] = ""
			w.local = w.local[1:]
		default:
			return
		}
	}
}

// push hands out a discovered directory: kept locally when the worker has
// nothing queued, published otherwise
func (w *worker) push(dir string) {
	w.p.pending.Add(1)
	if len(w.local) == 0 {
		w.local = append(w.local, dir)
		return
	}
	select {
	case w.p.work <- dir:
	default:
		w.local = append(w.local, dir)
	}
}

// expand lists dir and evaluates each entry. Unreadable directories
// contribute no children.
func (w *worker) expand(dir string) {
	if w.p.visited != nil && !w.p.visited.firstVisit(dir) {
		logDebug("Skipping already visited directory %q", dir)
		return
	}

	f, err := os.Open(dir)
	if err != nil {
		w.stats.unreadable.Add(1)
		logDebug("Could not read %q: %v", dir, err)
		return
	}
	defer f.Close()
	w.stats.dirs.Add(1)

	for {
		entries, err := f.ReadDir(readBatch)
		for _, entry := range entries {
			if w.p.stopped.Load() {
				return
			}
			w.stats.entries.Add(1)
			match, matched, next := w.p.matcher.evaluate(dir, entry)
			if matched {
				w.record(match)
			}
			if next != "" {
				w.push(next)
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				w.stats.unreadable.Add(1)
				logDebug("Could not read %q: %v", dir, err)
			}
			return
		}
	}
}

func (w *worker) record(m Match) {
	switch w.p.mode {
	case firstMode:
		if w.p.stopped.CompareAndSwap(false, true) {
			w.stats.matches.Add(1)
			w.p.first = m
			w.p.stop()
		}
	case streamMode:
		select {
		case w.p.matches <- m:
			w.stats.matches.Add(1)
		case <-w.p.done:
		}
	default:
		w.stats.matches.Add(1)
		w.results.Add(m)
	}
}
