package stache

import (
	"context"
	"fmt"

	"github.com/computerscienceiscool/stache-search/internal/errors"
	"github.com/computerscienceiscool/stache-search/pkg/config"
)

// RemoveSearchSpec deletes the generated e2e spec. The e2e directory holds
// the project's other specs and is left alone.
func (s *Service) RemoveSearchSpec(ctx context.Context, req *Request) (Result, error) {
	req = requestOrEmpty(req)
	result := Result{Command: config.CommandRemoveSearchSpec, Action: ActionSkipped}

	if !req.Project.SearchAllowed() {
		return result, nil
	}

	path := config.SpecFilePath(s.workDir)
	result.Path = path

	exists, err := s.fs.Exists(ctx, path)
	if err != nil {
		return fail(result, removeSpecError(path, err))
	}
	if !exists {
		result.Action = ActionAbsent
		return result, nil
	}

	if err := s.fs.Remove(ctx, path); err != nil {
		return fail(result, removeSpecError(path, err))
	}

	result.Action = ActionRemoved
	result.Message = fmt.Sprintf("Removed %s", path)
	return result, nil
}

func removeSpecError(path string, err error) *errors.SearchError {
	return errors.Wrap(errors.ErrIO, config.CommandRemoveSearchSpec, path, config.MsgRemoveSpecFailed, err)
}
