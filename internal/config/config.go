// Package config turns command-line flags, environment variables and an
// optional config file into the immutable search configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hunt/internal/search"
)

// Keys shared by flags, environment variables (HUNT_*) and the config file
const (
	KeyFirst         = "first"
	KeyExact         = "exact"
	KeyCanonicalize  = "canonicalize"
	KeyCaseSensitive = "case-sensitive"
	KeyVerbose       = "verbose"
	KeySimple        = "simple"
	KeyHidden        = "hidden"
	KeyStarts        = "starts"
	KeyEnds          = "ends"
	KeyType          = "type"
	KeyIgnore        = "ignore"
	KeyFollow        = "follow"
	KeyWorkers       = "workers"
)

// Input is the raw user input before resolution
type Input struct {
	Name          string
	Dirs          []string
	Starts        string
	Ends          string
	Type          string
	Ignore        []string
	First         bool
	Exact         bool
	Canonicalize  bool
	CaseSensitive bool
	Verbose       bool
	Hidden        bool
	FollowLinks   bool
	Simple        int
	Workers       int
}

// DefaultDir returns the directory searched for config.{yaml,toml,json}
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hunt")
}

// Load binds flags into a new viper instance and reads the config file.
// An explicit path must exist; a missing default config file is not an error.
func Load(flags *pflag.FlagSet, path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("HUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir := DefaultDir()
		if dir == "" {
			return v, nil
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return v, nil
}

// FromViper collects the input from v. args are the positional arguments:
// the query name followed by the search directories.
func FromViper(v *viper.Viper, args []string) Input {
	in := Input{
		Starts:        v.GetString(KeyStarts),
		Ends:          v.GetString(KeyEnds),
		Type:          v.GetString(KeyType),
		Ignore:        v.GetStringSlice(KeyIgnore),
		First:         v.GetBool(KeyFirst),
		Exact:         v.GetBool(KeyExact),
		Canonicalize:  v.GetBool(KeyCanonicalize),
		CaseSensitive: v.GetBool(KeyCaseSensitive),
		Verbose:       v.GetBool(KeyVerbose),
		Hidden:        v.GetBool(KeyHidden),
		FollowLinks:   v.GetBool(KeyFollow),
		Simple:        v.GetInt(KeySimple),
		Workers:       v.GetInt(KeyWorkers),
	}
	if len(args) > 0 {
		in.Name = args[0]
		in.Dirs = append(in.Dirs, args[1:]...)
	}
	return in
}

// Resolve validates the input and builds the search configuration.
//
// A name that is "." or contains a path separator is taken as the first
// search directory with an empty query. The search becomes case-sensitive
// when asked to or when the query has an upper-case letter; otherwise the
// query, prefix and suffix are folded.
func Resolve(in Input) (search.Config, error) {
	name := in.Name
	dirs := append([]string(nil), in.Dirs...)
	if name == "." || strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		dirs = append([]string{name}, dirs...)
		name = ""
	}

	ftype, err := search.ParseFileType(in.Type)
	if err != nil {
		return search.Config{}, err
	}

	caseSensitive := in.CaseSensitive || hasUpper(name)
	name = search.NormalizeName(name)
	starts := search.NormalizeName(in.Starts)
	ends := search.NormalizeName(in.Ends)
	if !caseSensitive {
		name = search.FoldName(name)
		starts = search.FoldName(starts)
		ends = search.FoldName(ends)
	}

	output := search.Normal
	switch {
	case in.Simple == 1:
		output = search.Simple
	case in.Simple >= 2:
		output = search.SuperSimple
	}

	return search.Config{
		Name:          name,
		CaseSensitive: caseSensitive,
		Starts:        starts,
		Ends:          ends,
		Type:          ftype,
		Exact:         in.Exact,
		Hidden:        in.Hidden,
		First:         in.First,
		Canonicalize:  in.Canonicalize,
		Limit:         len(dirs) > 0,
		Verbose:       in.Verbose,
		Output:        output,
		Ignore:        SplitCommaList(in.Ignore),
		Dirs:          dirs,
		Workers:       in.Workers,
		FollowLinks:   in.FollowLinks,
	}, nil
}

// SplitCommaList splits comma-separated entries and drops blanks
func SplitCommaList(values []string) []string {
	var result []string
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				result = append(result, p)
			}
		}
	}
	return result
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
