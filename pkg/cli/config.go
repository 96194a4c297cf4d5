package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/computerscienceiscool/stache-search/pkg/app"
	"github.com/computerscienceiscool/stache-search/pkg/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			log.Warnf("Error reading config file: %v", err)
		}
		// Config file not found; using defaults and flags
	}
}

// buildSettings constructs config.Settings from Viper values. The project's
// .env file is loaded first so the publish credentials it holds are visible.
func buildSettings() (*config.Settings, error) {
	workDir := viper.GetString("workdir")
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

	// Variables already in the environment win over .env
	_ = godotenv.Load(filepath.Join(absDir, config.DotEnvFile))

	settings := config.LoadSettings()
	settings.WorkDir = absDir

	switch settings.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", settings.LogFormat)
	}
	if settings.Publish.Timeout < 0 {
		return nil, fmt.Errorf("invalid publish timeout %v", settings.Publish.Timeout)
	}

	return settings, nil
}

// bootstrapApp wraps the app.Bootstrap function
func bootstrapApp(settings *config.Settings, logOut io.Writer) (*app.App, error) {
	return app.Bootstrap(settings, logOut)
}
