package stache

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/computerscienceiscool/stache-search/pkg/config"
)

const testWorkDir = "/work/site"

// MockFileSystem for testing handlers
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileSystem) MkdirAll(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	args := m.Called(ctx, path, data)
	return args.Error(0)
}

func (m *MockFileSystem) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockFileSystem) RemoveDir(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockPoster for testing publish
type MockPoster struct {
	mock.Mock
}

func (m *MockPoster) Post(ctx context.Context, endpoint, token string, body []byte) (int, error) {
	args := m.Called(ctx, endpoint, token, body)
	return args.Int(0), args.Error(1)
}

// MockReporter for testing the dispatcher
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Error(err error) { m.Called(err) }
func (m *MockReporter) Info(msg string) { m.Called(msg) }
func (m *MockReporter) Warn(msg string) { m.Called(msg) }

// MockAuditor for testing the dispatcher
type MockAuditor struct {
	mock.Mock
}

func (m *MockAuditor) LogAuditEvent(command, action, path string, success bool, errorMsg string) error {
	args := m.Called(command, action, path, success, errorMsg)
	return args.Error(0)
}

func boolPtr(b bool) *bool { return &b }

func projectWithFlag(flag *bool) *config.ProjectConfig {
	return &config.ProjectConfig{
		AppSettings: &config.AppSettings{
			Stache: &config.StacheSettings{
				SearchConfig: &config.SearchConfig{AllowSiteToBeSearched: flag},
			},
		},
	}
}

// partialProjects are the shapes that leave the flag unresolved.
func partialProjects() map[string]*config.ProjectConfig {
	return map[string]*config.ProjectConfig{
		"nil config":         nil,
		"empty config":       {},
		"empty appSettings":  {AppSettings: &config.AppSettings{}},
		"empty stache":       {AppSettings: &config.AppSettings{Stache: &config.StacheSettings{}}},
		"empty searchConfig": {AppSettings: &config.AppSettings{Stache: &config.StacheSettings{SearchConfig: &config.SearchConfig{}}}},
	}
}
