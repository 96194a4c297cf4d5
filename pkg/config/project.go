package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ProjectConfig mirrors the parts of skyuxconfig.json this plugin reads.
// Every level is optional; a nil pointer means the key was absent.
type ProjectConfig struct {
	AppSettings *AppSettings `mapstructure:"appSettings"`
}

// AppSettings holds the appSettings block.
type AppSettings struct {
	Stache *StacheSettings `mapstructure:"stache"`

	// Search is the legacy flag some projects still carry. It never gates
	// anything; its presence only produces a warning.
	Search *bool `mapstructure:"search"`
}

// StacheSettings holds appSettings.stache.
type StacheSettings struct {
	SearchConfig *SearchConfig `mapstructure:"searchConfig"`
}

// SearchConfig holds appSettings.stache.searchConfig.
type SearchConfig struct {
	AllowSiteToBeSearched *bool `mapstructure:"allowSiteToBeSearched"`
}

// searchFlag walks the nested path and returns the flag, or nil when any
// level is missing.
func (c *ProjectConfig) searchFlag() *bool {
	if c == nil || c.AppSettings == nil || c.AppSettings.Stache == nil || c.AppSettings.Stache.SearchConfig == nil {
		return nil
	}
	return c.AppSettings.Stache.SearchConfig.AllowSiteToBeSearched
}

// SearchAllowed is true only when allowSiteToBeSearched is present and true.
func (c *ProjectConfig) SearchAllowed() bool {
	flag := c.searchFlag()
	return flag != nil && *flag
}

// SearchAllowedOrUnset is false only when allowSiteToBeSearched is present
// and false.
func (c *ProjectConfig) SearchAllowedOrUnset() bool {
	flag := c.searchFlag()
	return flag == nil || *flag
}

// UsesLegacySearchFlag reports whether appSettings.search is set while the
// canonical flag is not.
func (c *ProjectConfig) UsesLegacySearchFlag() bool {
	if c == nil || c.AppSettings == nil || c.AppSettings.Search == nil {
		return false
	}
	return c.searchFlag() == nil
}

// LoadProjectConfig reads skyuxconfig.json from workDir. A missing file is
// not an error and yields a nil config.
func LoadProjectConfig(workDir string) (*ProjectConfig, error) {
	path := filepath.Join(workDir, ProjectConfigFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat project config: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ProjectConfigFile, err)
	}

	cfg := &ProjectConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ProjectConfigFile, err)
	}
	return cfg, nil
}

// SpecFilePath returns the absolute path of the generated e2e spec.
func SpecFilePath(workDir string) string {
	return filepath.Join(workDir, E2EDir, SpecFileName)
}

// SearchJSONPath returns the absolute path of the search.json artifact.
func SearchJSONPath(workDir string) string {
	return filepath.Join(workDir, SearchJSONDir, SearchJSONName)
}
