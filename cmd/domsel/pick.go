package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/domsel/internal/model"
	"github.com/nikbrunner/domsel/internal/picker"
	"github.com/nikbrunner/domsel/internal/search"
)

var pickCmd = &cobra.Command{
	Use:   "pick <query>",
	Short: "Fuzzy-pick an entry and print its URL",
	Long:  "Fuzzy-search the entries for query. A single match is printed directly; several matches open a picker.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		entries, err := loadEntries()
		if err != nil {
			return err
		}

		results := search.FuzzySearchEntries(entries, query)
		if len(results) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "No URLs found for '%s'\n", query)
			return nil
		}

		var chosen model.Entry
		if len(results) == 1 {
			chosen = results[0].Entry
		} else {
			p := tea.NewProgram(picker.New(results, query), tea.WithOutput(cmd.ErrOrStderr()))
			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("failed to run picker: %w", err)
			}

			var ok bool
			chosen, ok = finalModel.(picker.Picker).SelectedEntry()
			if !ok {
				return nil
			}
		}

		logger.Debug("picked entry", "query", query, "url", chosen.URL)
		fmt.Fprintln(cmd.OutOrStdout(), chosen.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
