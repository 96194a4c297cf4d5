package stache

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	serrors "github.com/computerscienceiscool/stache-search/internal/errors"
	"github.com/computerscienceiscool/stache-search/pkg/config"
)

func TestRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		r := NewRegistry()
		hit := false
		r.Register("sample", func(ctx context.Context, req *Request) (Result, error) {
			hit = true
			return Result{Command: "sample"}, nil
		})

		h, ok := r.Lookup("sample")
		require.True(t, ok)
		_, err := h(context.Background(), &Request{})
		require.NoError(t, err)
		assert.True(t, hit)

		_, ok = r.Lookup("missing")
		assert.False(t, ok)
	})

	t.Run("duplicate panics", func(t *testing.T) {
		r := NewRegistry()
		r.Register("dup", func(context.Context, *Request) (Result, error) { return Result{}, nil })
		assert.Panics(t, func() {
			r.Register("dup", func(context.Context, *Request) (Result, error) { return Result{}, nil })
		})
	})

	t.Run("default registry holds the four commands", func(t *testing.T) {
		r := NewDefaultRegistry(NewService(testWorkDir, &MockFileSystem{}, &MockPoster{}))
		assert.Equal(t, []string{
			config.CommandAddSearchSpec,
			config.CommandPublishSearch,
			config.CommandRemoveSearchJSON,
			config.CommandRemoveSearchSpec,
		}, r.Names())
	})
}

func TestDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown command is reported and nothing runs", func(t *testing.T) {
		mockFS := &MockFileSystem{}
		reporter := &MockReporter{}
		reporter.On("Warn", "stache-search: Unknown command build-search").Return()
		auditor := &MockAuditor{}
		d := NewDispatcher(NewDefaultRegistry(NewService(testWorkDir, mockFS, &MockPoster{})), reporter, auditor)

		result, err := d.RunCommand(ctx, "build-search", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, serrors.ErrUnknownCommand))
		assert.Equal(t, ActionSkipped, result.Action)
		assert.Empty(t, mockFS.Calls)
		assert.Empty(t, auditor.Calls)
		reporter.AssertExpectations(t)
	})

	t.Run("success is reported and audited", func(t *testing.T) {
		reporter := &MockReporter{}
		reporter.On("Info", "200: Search data successfully posted!").Return()
		auditor := &MockAuditor{}
		auditor.On("LogAuditEvent", "publish-search", "published", "/work/site/src/stache/search/search.json", true, "").Return(nil)

		r := NewRegistry()
		r.Register(config.CommandPublishSearch, func(context.Context, *Request) (Result, error) {
			return Result{
				Command:    config.CommandPublishSearch,
				Action:     ActionPublished,
				Path:       "/work/site/src/stache/search/search.json",
				StatusCode: 200,
				Message:    "200: Search data successfully posted!",
			}, nil
		})
		d := NewDispatcher(r, reporter, auditor)

		result, err := d.RunCommand(ctx, config.CommandPublishSearch, &Request{})
		require.NoError(t, err)
		assert.Equal(t, 200, result.StatusCode)
		reporter.AssertExpectations(t)
		auditor.AssertExpectations(t)
	})

	t.Run("errors are reported, audited and returned", func(t *testing.T) {
		herr := serrors.New(serrors.ErrMissingInput, config.CommandPublishSearch, "", config.MsgTokenRequired)
		reporter := &MockReporter{}
		reporter.On("Error", herr).Return()
		auditor := &MockAuditor{}
		auditor.On("LogAuditEvent", "publish-search", "failed", "", false, config.MsgTokenRequired).Return(nil)

		r := NewRegistry()
		r.Register(config.CommandPublishSearch, func(context.Context, *Request) (Result, error) {
			return Result{Command: config.CommandPublishSearch, Action: ActionFailed}, herr
		})
		d := NewDispatcher(r, reporter, auditor)

		_, err := d.RunCommand(ctx, config.CommandPublishSearch, &Request{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, serrors.ErrMissingInput))
		reporter.AssertExpectations(t)
		auditor.AssertExpectations(t)
	})

	t.Run("warnings are forwarded", func(t *testing.T) {
		reporter := &MockReporter{}
		reporter.On("Warn", config.MsgLegacySearchFlag).Return()
		d := NewDispatcher(NewDefaultRegistry(NewService(testWorkDir, &MockFileSystem{}, &MockPoster{})), reporter, nil)

		legacy := true
		req := &Request{Project: &config.ProjectConfig{AppSettings: &config.AppSettings{Search: &legacy}}}
		result, err := d.RunCommand(ctx, config.CommandRemoveSearchJSON, req)
		require.NoError(t, err)
		assert.Equal(t, ActionSkipped, result.Action)
		reporter.AssertExpectations(t)
	})

	t.Run("audit failures only warn", func(t *testing.T) {
		reporter := &MockReporter{}
		reporter.On("Warn", mock.MatchedBy(func(msg string) bool {
			return msg == "failed to record audit event: database is locked"
		})).Return()
		auditor := &MockAuditor{}
		auditor.On("LogAuditEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(fmt.Errorf("database is locked"))

		d := NewDispatcher(NewDefaultRegistry(NewService(testWorkDir, &MockFileSystem{}, &MockPoster{})), reporter, auditor)

		_, err := d.RunCommand(ctx, config.CommandPublishSearch, &Request{})
		require.NoError(t, err)
		reporter.AssertExpectations(t)
	})

	t.Run("full publish flow through the dispatcher", func(t *testing.T) {
		jsonPath := config.SearchJSONPath(testWorkDir)
		mockFS := &MockFileSystem{}
		mockFS.On("Exists", ctx, jsonPath).Return(true, nil)
		mockFS.On("ReadFile", ctx, jsonPath).Return([]byte(`{"test":"Some Example JSON"}`), nil)
		mockPoster := &MockPoster{}
		mockPoster.On("Post", ctx, testEndpoint, testToken, []byte(`{"test":"Some Example JSON"}`)).Return(200, nil)
		reporter := &MockReporter{}
		reporter.On("Info", "200: Search data successfully posted!").Return()

		d := NewDispatcher(NewDefaultRegistry(NewService(testWorkDir, mockFS, mockPoster)), reporter, nil)
		_, err := d.RunCommand(ctx, config.CommandPublishSearch, publishRequest())
		require.NoError(t, err)
		mockPoster.AssertExpectations(t)
		reporter.AssertExpectations(t)
	})
}
