// Package logging builds the leveled loggers shared by the store, the service
// and the command line.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn or error. Empty means warn.
	Level string
	// Format is one of text, json or logfmt. Empty means text.
	Format string
	Prefix string
}

// New returns a logger writing to w.
func New(w io.Writer, o Options) (*log.Logger, error) {
	level := log.WarnLevel
	if o.Level != "" {
		l, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(o.Level)))
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}
	formatter, err := ParseFormat(o.Format)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		Prefix:          o.Prefix,
		ReportTimestamp: formatter != log.TextFormatter,
	}), nil
}

// ParseFormat maps a format name to its formatter.
func ParseFormat(name string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return log.TextFormatter, fmt.Errorf("logging: unknown format %q", name)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
