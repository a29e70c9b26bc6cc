package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"hunt/internal/output"
	"hunt/internal/search"
)

// runner executes one resolved search and prints its results
type runner struct {
	stdout   io.Writer
	stderr   io.Writer
	progress bool
}

func (r *runner) run(ctx context.Context, cfg search.Config) error {
	search.SetupLogger(r.stderr, cfg.Verbose)

	if cfg.Output == search.Normal && !cfg.First {
		cfg.Highlight = output.NewHighlighter(cfg, isTerminal(r.stdout)).Func()
	}

	showBar := r.progress && isTerminal(r.stderr)
	if cfg.Verbose || showBar {
		cfg.Progress = search.NewProgress()
	}
	if showBar {
		stopBar := r.startProgress(cfg.Progress)
		defer stopBar()
	}

	start := time.Now()
	err := r.search(ctx, cfg)
	if cfg.Verbose && (err == nil || errors.Is(err, context.Canceled)) {
		r.summary(cfg.Progress.Snapshot(), time.Since(start))
	}
	if errors.Is(err, context.Canceled) {
		return errInterrupted
	}
	return err
}

func (r *runner) search(ctx context.Context, cfg search.Config) error {
	switch {
	case cfg.First:
		m, found, err := search.First(ctx, cfg)
		if err != nil {
			return err
		}
		return output.PrintFirst(r.stdout, m, found, cfg.Output)

	case cfg.Output == search.SuperSimple:
		streamer := output.NewStreamer(r.stdout)
		err := search.Stream(ctx, cfg, streamer.Write)
		if flushErr := streamer.Flush(); err == nil {
			err = flushErr
		}
		return err

	default:
		results, err := search.Search(ctx, cfg)
		if err != nil {
			return err
		}
		return output.PrintResults(r.stdout, results, cfg.Output)
	}
}

// startProgress shows a spinner fed from the live counters until the
// returned function is called
func (r *runner) startProgress(p *search.Progress) func() {
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(r.stderr),
		progressbar.OptionSetDescription("Searching"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				bar.Set64(p.Snapshot().Dirs)
			case <-done:
				bar.Finish()
				return
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

func (r *runner) summary(st search.Stats, elapsed time.Duration) {
	search.Logger().Infof("Scanned %s directories and %s entries in %s, %s matches, %s unreadable",
		humanize.Comma(st.Dirs),
		humanize.Comma(st.Entries),
		elapsed.Round(time.Millisecond),
		humanize.Comma(st.Matches),
		humanize.Comma(st.Unreadable),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
