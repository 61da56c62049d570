package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/domsel/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the starting entries",
	Long:    "List the entries the selector starts with, optionally filtered by status",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		statusFilter, _ := cmd.Flags().GetString("status")

		var want model.Status
		if statusFilter != "" {
			var err error
			want, err = model.ParseStatus(statusFilter)
			if err != nil {
				return err
			}
		}

		entries, err := loadEntries()
		if err != nil {
			return err
		}

		faint := color.New(color.Faint).SprintFunc()
		out := cmd.OutOrStdout()

		shown := 0
		for _, e := range entries {
			if want != "" && e.Status != want {
				continue
			}
			fmt.Fprintf(out, "%s %s %s %s\n",
				faint(fmt.Sprintf("%3d", e.ID)),
				statusColor(e.Status).Sprintf("%-9s", e.Status.Label()),
				e.URL,
				faint(e.Timestamp),
			)
			shown++
		}

		if shown == 0 {
			fmt.Fprintln(out, "No entries found")
		}
		return nil
	},
}

func statusColor(s model.Status) *color.Color {
	switch s {
	case model.StatusProcessed:
		return color.New(color.FgGreen)
	case model.StatusError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

func init() {
	listCmd.Flags().String("status", "", "only show entries with this status (processed, pending, error)")
	rootCmd.AddCommand(listCmd)
}
