package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/computerscienceiscool/stache-search/internal/infrastructure"
	"github.com/computerscienceiscool/stache-search/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newAuditCmd() *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List recent command outcomes from the audit database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("invalid limit %d", limit)
			}

			settings, err := buildSettings()
			if err != nil {
				return fmt.Errorf("failed to build settings: %w", err)
			}
			// Listing needs the store open regardless of audit.enabled
			settings.Audit.Enabled = true

			app, err := bootstrapApp(settings, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("bootstrap failed: %w", err)
			}
			defer app.Close()

			entries, err := app.AuditLogs(limit)
			if err != nil {
				return fmt.Errorf("failed to read audit logs: %w", err)
			}
			return writeAuditLogs(cmd.OutOrStdout(), entries, format)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", config.DefaultAuditListLimit, "Number of entries to show")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json or yaml)")
	return cmd
}

func writeAuditLogs(w io.Writer, entries []infrastructure.AuditLog, format string) error {
	if entries == nil {
		entries = []infrastructure.AuditLog{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		for _, e := range entries {
			status := "ok"
			if !e.Success {
				status = "FAILED"
			}
			line := fmt.Sprintf("%s  %-18s %-9s %-6s %s", e.Timestamp.Local().Format(time.RFC3339), e.Command, e.Action, status, e.Path)
			if e.ErrorMsg != "" {
				line += "  " + e.ErrorMsg
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
