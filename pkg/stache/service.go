// Package stache implements the stache search plugin commands: generating
// the e2e crawl spec, publishing search.json and cleaning both up again.
//
// Handlers never touch the file system or the network when the project's
// allowSiteToBeSearched flag says they should not run. Failures come back
// as *errors.SearchError values; reporting them is the dispatcher's job.
package stache

import (
	"github.com/computerscienceiscool/stache-search/internal/errors"
)

// Service holds the collaborators shared by the four handlers.
type Service struct {
	workDir string
	fs      FileSystem
	poster  Poster
}

// NewService creates a service rooted at workDir, which must be absolute.
func NewService(workDir string, fs FileSystem, poster Poster) *Service {
	return &Service{
		workDir: workDir,
		fs:      fs,
		poster:  poster,
	}
}

// WorkDir returns the project directory the handlers operate in.
func (s *Service) WorkDir() string {
	return s.workDir
}

func fail(result Result, err *errors.SearchError) (Result, error) {
	result.Action = ActionFailed
	return result, err
}

func requestOrEmpty(req *Request) *Request {
	if req == nil {
		return &Request{}
	}
	return req
}
