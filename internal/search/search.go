package search

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// RootError reports a search root that does not exist or cannot be resolved
type RootError struct {
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("the %q directory does not exist", e.Path)
}

func (e *RootError) Unwrap() error {
	return e.Err
}

// Roots returns the directories a search starts from: the current directory
// when no roots were given, else the validated explicit roots. Any missing
// explicit root is an error.
func Roots(cfg *Config) ([]string, error) {
	if !cfg.Limit {
		if !cfg.Canonicalize {
			return []string{"."}, nil
		}
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &RootError{Path: ".", Err: err}
		}
		return []string{cwd}, nil
	}

	roots := make([]string, 0, len(cfg.Dirs))
	seen := make(map[string]bool, len(cfg.Dirs))
	for _, dir := range cfg.Dirs {
		if _, err := os.Stat(dir); err != nil {
			return nil, &RootError{Path: dir, Err: err}
		}
		root := filepath.Clean(dir)
		if cfg.Canonicalize {
			abs, err := filepath.Abs(root)
			if err != nil {
				return nil, &RootError{Path: dir, Err: err}
			}
			resolved, err := filepath.EvalSymlinks(abs)
			if err != nil {
				return nil, &RootError{Path: dir, Err: err}
			}
			root = resolved
		}
		if seen[root] {
			continue
		}
		seen[root] = true
		roots = append(roots, root)
	}
	return roots, nil
}

// run resolves roots, starts the pool and returns it once the walk ended
// or ctx was cancelled. consume, when set, runs alongside the workers.
func run(ctx context.Context, cfg *Config, md mode, consume func(<-chan Match)) (*pool, *Results, error) {
	roots, err := Roots(cfg)
	if err != nil {
		return nil, nil, err
	}
	if len(roots) == 0 {
		return nil, &Results{}, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := newPool(newMatcher(cfg, roots), workers, len(roots), md, cfg.Progress)
	if cfg.FollowLinks {
		p.followLinks()
	}
	p.seed(roots)

	logDebug("Searching %d root(s) with %d workers", len(roots), workers)

	consumed := make(chan struct{})
	if consume != nil {
		go func() {
			defer close(consumed)
			consume(p.matches)
		}()
	} else {
		close(consumed)
	}

	stopWatch := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			p.cancel()
		case <-stopWatch:
		}
	}()

	p.start()
	results := p.join()
	close(stopWatch)
	<-consumed

	if err := ctx.Err(); err != nil {
		return p, results, err
	}
	return p, results, nil
}

// Search walks the configured roots and returns all matches.
// On cancellation the matches found so far are returned with ctx's error.
func Search(ctx context.Context, cfg Config) (*Results, error) {
	_, results, err := run(ctx, &cfg, collectMode, nil)
	if err != nil && results == nil {
		return nil, err
	}
	return results, err
}

// Stream walks the configured roots and calls sink for every match as soon
// as it is found. sink is called from a single goroutine.
func Stream(ctx context.Context, cfg Config, sink func(Match)) error {
	if sink == nil {
		return errors.New("stream sink is nil")
	}
	_, _, err := run(ctx, &cfg, streamMode, func(matches <-chan Match) {
		for m := range matches {
			sink(m)
		}
	})
	return err
}

// First returns the first match found. The walk stops as soon as one
// worker records a match, and at most one match is ever reported.
func First(ctx context.Context, cfg Config) (Match, bool, error) {
	p, _, err := run(ctx, &cfg, firstMode, nil)
	if p == nil {
		return Match{}, false, err
	}
	m, ok := p.firstMatch()
	if ok {
		return m, true, nil
	}
	return Match{}, false, err
}
