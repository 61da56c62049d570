package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/domsel/internal/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the starting entries as bookmark HTML",
	Long:  "Write the entries as a Netscape bookmark file grouped by status. Defaults to ~/Downloads/domains-export-DATE.html.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var outputPath string
		if len(args) == 1 {
			outputPath = args[0]
		} else {
			var err error
			outputPath, err = exporter.DefaultExportPath()
			if err != nil {
				return fmt.Errorf("failed to get default export path: %w", err)
			}
		}

		entries, err := loadEntries()
		if err != nil {
			return err
		}

		if err := exporter.WriteFile(outputPath, entries, time.Now()); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d URLs to %s\n", len(entries), outputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
