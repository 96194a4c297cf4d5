package stache

import "context"

// FileSystem is the file access the handlers need. Paths are absolute.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	MkdirAll(ctx context.Context, path string) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte) error
	Remove(ctx context.Context, path string) error
	// RemoveDir removes an empty directory and fails otherwise.
	RemoveDir(ctx context.Context, path string) error
}

// Poster sends the search payload to the publisher endpoint and returns the
// HTTP status code of whatever response came back.
type Poster interface {
	Post(ctx context.Context, endpoint, token string, body []byte) (int, error)
}

// Reporter receives every dispatched outcome.
type Reporter interface {
	Error(err error)
	Info(msg string)
	Warn(msg string)
}

// Auditor records dispatched outcomes.
type Auditor interface {
	LogAuditEvent(command, action, path string, success bool, errorMsg string) error
}
