package stache

import "github.com/computerscienceiscool/stache-search/pkg/config"

// Action describes what a handler did.
type Action string

const (
	ActionSkipped   Action = "skipped"   // flag off, nothing touched
	ActionWritten   Action = "written"   // spec template written
	ActionPublished Action = "published" // payload posted
	ActionRemoved   Action = "removed"   // artifact deleted
	ActionAbsent    Action = "absent"    // nothing to delete
	ActionFailed    Action = "failed"
)

// Result is returned by every handler alongside its error.
type Result struct {
	Command    string
	Action     Action
	Path       string
	StatusCode int
	Message    string
	Warnings   []string
}

// Request is the shared payload handed to each handler.
type Request struct {
	Argv    []string
	Project *config.ProjectConfig
	Publish config.PublishConfig
}
