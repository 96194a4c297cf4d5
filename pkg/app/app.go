package app

import (
	"context"
	"fmt"

	"github.com/computerscienceiscool/stache-search/internal/infrastructure"
	"github.com/computerscienceiscool/stache-search/internal/logging"
	"github.com/computerscienceiscool/stache-search/pkg/config"
	"github.com/computerscienceiscool/stache-search/pkg/stache"
)

// App represents the main application
type App struct {
	settings   *config.Settings
	reporter   *logging.Reporter
	service    *stache.Service
	dispatcher *stache.Dispatcher
	audit      *infrastructure.SQLiteAuditStore
}

// Run loads skyuxconfig.json and dispatches command. Errors have already
// been reported when they are returned.
func (a *App) Run(ctx context.Context, command string, argv []string) (stache.Result, error) {
	project, err := config.LoadProjectConfig(a.settings.WorkDir)
	if err != nil {
		a.reporter.Error(err)
		return stache.Result{Command: command, Action: stache.ActionFailed}, err
	}

	req := &stache.Request{
		Argv:    argv,
		Project: project,
		Publish: a.settings.Publish,
	}
	return a.dispatcher.RunCommand(ctx, command, req)
}

// AuditLogs returns the most recent audit entries.
func (a *App) AuditLogs(limit int) ([]infrastructure.AuditLog, error) {
	if a.audit == nil {
		return nil, fmt.Errorf("audit trail is disabled (enable with --audit or audit.enabled)")
	}
	return a.audit.GetAuditLogs(limit)
}

// GetSettings returns the resolved settings
func (a *App) GetSettings() *config.Settings {
	return a.settings
}

// Close releases the audit store
func (a *App) Close() error {
	if a.audit != nil {
		return a.audit.Close()
	}
	return nil
}
