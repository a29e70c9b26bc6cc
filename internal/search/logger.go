package search

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logMu     sync.RWMutex
	logOutput = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(PlainFormatter{})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}

// SetupLogger directs search diagnostics to w. Debug messages, such as
// unreadable directories, are only written when verbose is set.
func SetupLogger(w io.Writer, verbose bool) {
	SetLogger(newLogger(w, verbose))
}

// SetLogger replaces the package logger, nil restores the default
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newLogger(os.Stderr, false)
	}
	logMu.Lock()
	logOutput = l
	logMu.Unlock()
}

// Logger returns the package logger
func Logger() *logrus.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logOutput
}

func logDebug(format string, args ...interface{}) {
	Logger().Debugf(format, args...)
}

// PlainFormatter writes one line per entry: [LEVEL] message key=value ...
type PlainFormatter struct{}

func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] %s", strings.ToUpper(entry.Level.String()), entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
		}
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
