// ABOUTME: Export subcommand downloading the admin CSV without the TUI
// ABOUTME: Same privileged path as the admin tab, writes the bytes verbatim

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the leads CSV export",
	Long: `Download the admin CSV export of all leads.

Requires an elevated host identity; the backend refuses the export
otherwise. The response bytes are written to the output file unmodified.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default: admin.export_path from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, ident, client, err := setup()
	if err != nil {
		return err
	}

	out := flagExportOut
	if out == "" {
		out = cfg.Admin.ExportPath
	}

	if !ident.InHost() {
		// Warn but do not block: refusing is the backend's job
		color.Yellow("No host credential found; the backend will likely refuse the export.")
	}

	data, err := client.ExportLeadsCSV(cmd.Context())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Saved %s (%d bytes)\n", out, len(data))
	return nil
}
