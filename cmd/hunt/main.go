package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hunt/internal/config"
	"hunt/internal/search"
)

var errInterrupted = errors.New("search interrupted by user")

var (
	cfgFile      string
	showProgress bool
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hunt [flags] [NAME] [DIRS...]",
		Short: "Search a file or folder by name",
		Long: `Simple command to search a file/folder by name on the current directory.
By default it searches all occurrences.

If DIRS are provided, hunt only searches there. They are treated independently,
so nested directories are traversed once per occurrence.
Example: hunt -t f -S log -i node_modules,/var config /etc /home`,
		Version:       fmt.Sprintf("%s (built %s, commit %s)", search.Version, search.BuildTime, search.GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			// Handle Ctrl+C
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)
			go func() {
				select {
				case <-sigChan:
					cancel()
				case <-ctx.Done():
				}
			}()

			v, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			cfg, err := config.Resolve(config.FromViper(v, args))
			if err != nil {
				return err
			}
			r := &runner{stdout: stdout, stderr: stderr, progress: showProgress}
			return r.run(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolP(config.KeyFirst, "f", false, "Stop when first occurrence is found")
	flags.BoolP(config.KeyExact, "e", false, "Only search for exactly matching occurrences")
	flags.BoolP(config.KeyCanonicalize, "c", false, "Canonicalize all paths")
	flags.BoolP(config.KeyCaseSensitive, "C", false, "Case-sensitive search (automatic when NAME has an upper-case letter)")
	flags.BoolP(config.KeyVerbose, "v", false, "Print unreadable directories and a summary")
	flags.CountP(config.KeySimple, "s", "Print without formatting, -ss also leaves results unsorted")
	flags.BoolP(config.KeyHidden, "H", false, "Search inside hidden directories and system paths")
	flags.StringP(config.KeyStarts, "S", "", "Only names starting with this are found")
	flags.StringP(config.KeyEnds, "E", "", "Only names ending with this are found")
	flags.StringP(config.KeyType, "t", "", "Type of the entry: 'f' file, 'd' directory")
	flags.StringSliceP(config.KeyIgnore, "i", nil, "Ignore these names or paths: -i dir1,dir2,...")
	flags.BoolP(config.KeyFollow, "L", false, "Follow symbolic links to directories")
	flags.IntP(config.KeyWorkers, "j", 0, "Number of workers (default: number of CPU cores)")
	flags.BoolVar(&showProgress, "progress", false, "Show a progress spinner on stderr")
	flags.StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/hunt/config.yaml)")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// exitCode maps a command error to the process exit status
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// errorMessage renders a command error for stderr
func errorMessage(err error) string {
	var rootErr *search.RootError
	switch {
	case errors.As(err, &rootErr):
		return fmt.Sprintf("ERROR: The %q directory does not exist", rootErr.Path)
	case errors.Is(err, errInterrupted):
		return "Search interrupted by user"
	default:
		return fmt.Sprintf("ERROR: %v", err)
	}
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(exitCode(err))
	}
}
