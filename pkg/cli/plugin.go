package cli

import (
	"context"
	"os"
)

// RunCommand is the entry point used when the build tool loads the plugin
// in-process. It behaves like `stache-search run <command> [argv...]`.
func RunCommand(ctx context.Context, command string, argv []string) error {
	initConfig()
	return runNamed(ctx, command, argv, os.Stderr)
}
