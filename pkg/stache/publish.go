package stache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/computerscienceiscool/stache-search/internal/errors"
	"github.com/computerscienceiscool/stache-search/pkg/config"
)

// PublishSearch posts search.json to the configured endpoint. Guards run in
// a fixed order: flag, artifact, endpoint, token, read, post.
func (s *Service) PublishSearch(ctx context.Context, req *Request) (Result, error) {
	req = requestOrEmpty(req)
	result := Result{Command: config.CommandPublishSearch, Action: ActionSkipped}

	if !req.Project.SearchAllowed() {
		return result, nil
	}

	path := config.SearchJSONPath(s.workDir)
	result.Path = path

	exists, err := s.fs.Exists(ctx, path)
	if err != nil {
		return fail(result, errors.Wrap(errors.ErrMissingArtifact, config.CommandPublishSearch, path, config.MsgSearchJSONMissing, err))
	}
	if !exists {
		return fail(result, errors.New(errors.ErrMissingArtifact, config.CommandPublishSearch, path, config.MsgSearchJSONMissing))
	}

	if req.Publish.Endpoint == "" {
		return fail(result, errors.New(errors.ErrMissingInput, config.CommandPublishSearch, path, config.MsgEndpointRequired))
	}
	if req.Publish.Token == "" {
		return fail(result, errors.New(errors.ErrMissingInput, config.CommandPublishSearch, path, config.MsgTokenRequired))
	}

	payload, err := s.readPayload(ctx, path)
	if err != nil {
		msg := fmt.Sprintf(config.MsgReadSearchFailedFmt, path, err.Error())
		return fail(result, errors.Wrap(errors.ErrIO, config.CommandPublishSearch, path, msg, err))
	}

	status, err := s.poster.Post(ctx, req.Publish.Endpoint, req.Publish.Token, payload)
	if err != nil {
		msg := fmt.Sprintf(config.MsgPostFailedFmt, err.Error())
		return fail(result, errors.Wrap(errors.ErrTransport, config.CommandPublishSearch, path, msg, err))
	}

	result.Action = ActionPublished
	result.StatusCode = status
	result.Message = fmt.Sprintf(config.MsgPostedFmt, status)
	return result, nil
}

// readPayload decodes the file as JSON and re-encodes it without
// insignificant whitespace. Member order is preserved.
func (s *Service) readPayload(ctx context.Context, path string) ([]byte, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
