package config

import (
	"time"

	"github.com/spf13/viper"
)

// Settings holds the plugin's own settings, assembled from flags,
// STACHE_* environment variables and the optional settings file.
type Settings struct {
	WorkDir   string
	Strict    bool
	LogLevel  string
	LogFormat string
	Audit     AuditConfig
	Publish   PublishConfig
}

// AuditConfig controls the SQLite audit trail
type AuditConfig struct {
	Enabled bool
	DBPath  string
}

// PublishConfig carries the endpoint and bearer token used by
// publish-search. Timeout of zero means the request never times out.
type PublishConfig struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

// SetViperDefaults sets all default configuration values in Viper
func SetViperDefaults() {
	viper.SetDefault("workdir", "")
	viper.SetDefault("strict", false)

	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.format", DefaultLogFormat)

	viper.SetDefault("audit.enabled", false)
	viper.SetDefault("audit.db_path", DefaultAuditDBPath)

	viper.SetDefault("publish.timeout", DefaultPublishTimeout)
}

// BindPublishEnv maps the publish credentials onto the exact environment
// variable names the build tooling exports. The STACHE prefix does not
// apply to them.
func BindPublishEnv() {
	_ = viper.BindEnv("publish.endpoint", EnvSearchEndpoint)
	_ = viper.BindEnv("publish.token", EnvToken)
}

// LoadSettings reads plugin settings from viper (config file + defaults)
func LoadSettings() *Settings {
	s := &Settings{
		WorkDir:   viper.GetString("workdir"),
		Strict:    viper.GetBool("strict"),
		LogLevel:  viper.GetString("log.level"),
		LogFormat: viper.GetString("log.format"),
		Audit: AuditConfig{
			Enabled: viper.GetBool("audit.enabled"),
			DBPath:  viper.GetString("audit.db_path"),
		},
	}
	s.Publish = LoadPublishConfig()
	return s
}

// LoadPublishConfig reads the publish endpoint, token and timeout from viper.
func LoadPublishConfig() PublishConfig {
	return PublishConfig{
		Endpoint: viper.GetString("publish.endpoint"),
		Token:    viper.GetString("publish.token"),
		Timeout:  viper.GetDuration("publish.timeout"),
	}
}
