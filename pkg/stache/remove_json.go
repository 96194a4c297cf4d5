package stache

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/computerscienceiscool/stache-search/internal/errors"
	"github.com/computerscienceiscool/stache-search/pkg/config"
)

// RemoveSearchJSON deletes search.json and then its directory, which must be
// empty at that point.
func (s *Service) RemoveSearchJSON(ctx context.Context, req *Request) (Result, error) {
	req = requestOrEmpty(req)
	result := Result{Command: config.CommandRemoveSearchJSON, Action: ActionSkipped}

	if req.Project.UsesLegacySearchFlag() {
		result.Warnings = append(result.Warnings, config.MsgLegacySearchFlag)
	}

	if !req.Project.SearchAllowed() {
		return result, nil
	}

	path := config.SearchJSONPath(s.workDir)
	result.Path = path

	exists, err := s.fs.Exists(ctx, path)
	if err != nil {
		return fail(result, removeJSONError(path, err))
	}
	if !exists {
		result.Action = ActionAbsent
		return result, nil
	}

	if err := s.fs.Remove(ctx, path); err != nil {
		return fail(result, removeJSONError(path, err))
	}
	if err := s.fs.RemoveDir(ctx, filepath.Dir(path)); err != nil {
		return fail(result, removeJSONError(path, err))
	}

	result.Action = ActionRemoved
	result.Message = fmt.Sprintf("Removed %s", filepath.Dir(path))
	return result, nil
}

func removeJSONError(path string, err error) *errors.SearchError {
	return errors.Wrap(errors.ErrIO, config.CommandRemoveSearchJSON, path, config.MsgRemoveJSONFailed, err)
}
