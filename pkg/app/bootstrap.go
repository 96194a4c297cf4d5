package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/computerscienceiscool/stache-search/internal/infrastructure"
	"github.com/computerscienceiscool/stache-search/internal/logging"
	"github.com/computerscienceiscool/stache-search/pkg/config"
	"github.com/computerscienceiscool/stache-search/pkg/stache"
)

// Bootstrap initializes and returns a configured App. Log lines go to logOut.
func Bootstrap(settings *config.Settings, logOut io.Writer) (*App, error) {
	// Resolve working directory to absolute path
	workDir := settings.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working directory: %w", err)
		}
		workDir = wd
	}
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve working directory: %w", err)
	}
	settings.WorkDir = absDir

	// Verify working directory exists
	if info, err := os.Stat(settings.WorkDir); err != nil {
		return nil, fmt.Errorf("working directory does not exist: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("working directory is not a directory: %s", settings.WorkDir)
	}

	logger := logging.New(settings.LogLevel, settings.LogFormat, logOut)
	reporter := logging.NewReporter(logger)

	// Open the audit trail if enabled
	var store *infrastructure.SQLiteAuditStore
	var auditor stache.Auditor
	if settings.Audit.Enabled {
		dbPath := settings.Audit.DBPath
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(settings.WorkDir, dbPath)
		}
		store, err = infrastructure.OpenAuditStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open audit store: %w", err)
		}
		auditor = store
	}

	service := stache.NewService(
		settings.WorkDir,
		infrastructure.NewFileSystem(),
		infrastructure.NewHTTPPoster(settings.Publish.Timeout),
	)
	dispatcher := stache.NewDispatcher(stache.NewDefaultRegistry(service), reporter, auditor)

	logger.WithField("workdir", settings.WorkDir).Debug("stache-search bootstrapped")

	return &App{
		settings:   settings,
		reporter:   reporter,
		service:    service,
		dispatcher: dispatcher,
		audit:      store,
	}, nil
}
