package stache

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/computerscienceiscool/stache-search/internal/errors"
	"github.com/computerscienceiscool/stache-search/pkg/config"
)

// AddSearchSpec writes the e2e crawl spec into the project. Unlike the other
// handlers it runs when the flag is absent and only skips when the flag is
// explicitly false.
func (s *Service) AddSearchSpec(ctx context.Context, req *Request) (Result, error) {
	req = requestOrEmpty(req)
	result := Result{Command: config.CommandAddSearchSpec, Action: ActionSkipped}

	if !req.Project.SearchAllowedOrUnset() {
		return result, nil
	}

	path := config.SpecFilePath(s.workDir)
	result.Path = path
	dir := filepath.Dir(path)

	exists, err := s.fs.Exists(ctx, dir)
	if err != nil {
		return fail(result, addSpecError(path, err))
	}
	if !exists {
		if err := s.fs.MkdirAll(ctx, dir); err != nil {
			return fail(result, addSpecError(path, err))
		}
	}

	if err := s.fs.WriteFile(ctx, path, SpecTemplate()); err != nil {
		return fail(result, addSpecError(path, err))
	}

	result.Action = ActionWritten
	result.Message = fmt.Sprintf("Added %s to directory!", path)
	return result, nil
}

func addSpecError(path string, err error) *errors.SearchError {
	return errors.Wrap(errors.ErrIO, config.CommandAddSearchSpec, path, config.MsgAddSpecFailed, err)
}
