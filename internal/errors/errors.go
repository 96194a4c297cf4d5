package errors

import (
	"errors"
	"fmt"
)

// Error kinds for stache search commands
var (
	ErrMissingInput    = fmt.Errorf("MISSING_INPUT")
	ErrMissingArtifact = fmt.Errorf("MISSING_ARTIFACT")
	ErrIO              = fmt.Errorf("IO_FAILURE")
	ErrTransport       = fmt.Errorf("TRANSPORT_FAILURE")
	ErrUnknownCommand  = fmt.Errorf("UNKNOWN_COMMAND")
)

// SearchError is returned by every command handler. Message is the
// user-facing line; Err, when set, is the underlying cause.
type SearchError struct {
	Kind    error
	Op      string
	Path    string
	Message string
	Err     error
}

func (e *SearchError) Error() string {
	return e.Message
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of this error.
func (e *SearchError) Is(target error) bool {
	return target == e.Kind
}

// New creates a SearchError without an underlying cause.
func New(kind error, op, path, message string) *SearchError {
	return &SearchError{Kind: kind, Op: op, Path: path, Message: message}
}

// Wrap creates a SearchError around err.
func Wrap(kind error, op, path, message string, err error) *SearchError {
	return &SearchError{Kind: kind, Op: op, Path: path, Message: message, Err: err}
}

// KindOf returns the kind name of err, or an empty string when err is not a SearchError.
func KindOf(err error) string {
	var serr *SearchError
	if errors.As(err, &serr) && serr.Kind != nil {
		return serr.Kind.Error()
	}
	return ""
}

// PathOf returns the artifact path carried by err, if any.
func PathOf(err error) string {
	var serr *SearchError
	if errors.As(err, &serr) {
		return serr.Path
	}
	return ""
}
