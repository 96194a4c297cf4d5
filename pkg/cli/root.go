package cli

import (
	"strings"

	"github.com/computerscienceiscool/stache-search/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the stache-search command tree. Flags are bound to the
// global viper instance, so configureViper must have run first.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stache-search",
		Short: "Stache search plugin for the SKY UX build tooling",
		Long: `stache-search manages the files behind stache documentation search.
It adds the e2e crawl spec that produces search.json, publishes search.json
to the search service and removes both again after a build.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
	}

	// Project flags
	rootCmd.PersistentFlags().StringP("workdir", "C", "", "Project directory containing skyuxconfig.json (default: current directory)")
	rootCmd.PersistentFlags().Bool("strict", false, "Exit non-zero when a command fails")

	// Logging flags
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (text or json)")

	// Audit flags
	rootCmd.PersistentFlags().Bool("audit", false, "Record each command outcome in the audit database")
	rootCmd.PersistentFlags().String("audit-db", config.DefaultAuditDBPath, "Audit database path, relative to the project directory")

	// Publish flags
	rootCmd.PersistentFlags().Duration("publish-timeout", config.DefaultPublishTimeout, "Timeout for the publish request (0 means none)")

	// Bind flags to viper
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("workdir", flags.Lookup("workdir"))
	_ = viper.BindPFlag("strict", flags.Lookup("strict"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = viper.BindPFlag("audit.enabled", flags.Lookup("audit"))
	_ = viper.BindPFlag("audit.db_path", flags.Lookup("audit-db"))
	_ = viper.BindPFlag("publish.timeout", flags.Lookup("publish-timeout"))

	for _, name := range []string{
		config.CommandAddSearchSpec,
		config.CommandPublishSearch,
		config.CommandRemoveSearchJSON,
		config.CommandRemoveSearchSpec,
	} {
		rootCmd.AddCommand(newHandlerCmd(name))
	}
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newAuditCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func init() {
	configureViper()
}

// configureViper sets defaults, the settings file lookup and the
// environment bindings on the global viper instance.
func configureViper() {
	// Set all default values in Viper
	config.SetViperDefaults()

	// Set default config file name
	viper.SetConfigName(config.SettingsFileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	// Enable environment variables with STACHE prefix
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Publish credentials use the build tooling's own variable names
	config.BindPublishEnv()
}
