package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/computerscienceiscool/stache-search/pkg/config"
	"github.com/spf13/cobra"
)

var handlerDescriptions = map[string]string{
	config.CommandAddSearchSpec:    "Add the stache search e2e spec to the project",
	config.CommandPublishSearch:    "Publish search.json to the stache search endpoint",
	config.CommandRemoveSearchJSON: "Remove search.json and its directory",
	config.CommandRemoveSearchSpec: "Remove the stache search e2e spec from the project",
}

func newHandlerCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [args...]",
		Short: handlerDescriptions[name],
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNamed(cmd.Context(), name, args, cmd.ErrOrStderr())
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a plugin command by name",
		Long: `run dispatches to the handler registered under <command>, the same way
the build tool invokes the plugin. Unknown names are reported and ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNamed(cmd.Context(), args[0], args[1:], cmd.ErrOrStderr())
		},
	}
}

// runNamed bootstraps the app and dispatches one command. Handler failures
// are already reported by the time they reach here; they only fail the
// process under --strict.
func runNamed(ctx context.Context, command string, argv []string, logOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := buildSettings()
	if err != nil {
		return fmt.Errorf("failed to build settings: %w", err)
	}

	app, err := bootstrapApp(settings, logOut)
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	defer app.Close()

	if _, err := app.Run(ctx, command, argv); err != nil && settings.Strict {
		return fmt.Errorf("%s failed: %w", command, err)
	}
	return nil
}
