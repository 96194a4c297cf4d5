// Package logging builds the logrus logger used by stache-search and the
// reporter that turns handler outcomes into log lines.
package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/computerscienceiscool/stache-search/internal/errors"
)

// New creates a logger writing to out. An unknown level falls back to info
// with a warning; format is "text" or "json".
func New(level, format string, out io.Writer) *log.Logger {
	if out == nil {
		out = os.Stderr
	}

	logger := log.New()
	logger.SetOutput(out)

	switch format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.InfoLevel)
		logger.Warnf("invalid log level %s, defaulting to info", level)
	}

	return logger
}

// Reporter is the sink every command outcome is routed to. It never
// terminates the process.
type Reporter struct {
	logger *log.Logger
}

// NewReporter wraps logger.
func NewReporter(logger *log.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Error logs err with its kind and artifact path when available.
func (r *Reporter) Error(err error) {
	if err == nil {
		return
	}
	fields := log.Fields{}
	if kind := errors.KindOf(err); kind != "" {
		fields["kind"] = kind
	}
	if path := errors.PathOf(err); path != "" {
		fields["path"] = path
	}
	entry := r.logger.WithFields(fields)
	if cause := stdUnwrap(err); cause != nil {
		entry = entry.WithField("cause", cause.Error())
	}
	entry.Error(err.Error())
}

// Info logs a success line.
func (r *Reporter) Info(msg string) {
	r.logger.Info(msg)
}

// Warn logs a non-fatal diagnostic.
func (r *Reporter) Warn(msg string) {
	r.logger.Warn(msg)
}

func stdUnwrap(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
