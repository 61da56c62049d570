package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/domsel/internal/config"
	"github.com/nikbrunner/domsel/internal/importer"
	"github.com/nikbrunner/domsel/internal/logging"
	"github.com/nikbrunner/domsel/internal/model"
	"github.com/nikbrunner/domsel/internal/selector"
	"github.com/nikbrunner/domsel/internal/syncsim"
	"github.com/nikbrunner/domsel/internal/tui"
)

var (
	configPath  string
	importPath  string
	logFile     string
	syncDelay   time.Duration
	failureRate float64
	printResult bool

	cfg      *config.Config
	logger   *log.Logger
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "domsel",
	Short: "Terminal dropdown for picking and syncing domains",
	Long: `domsel shows a dropdown of domain entries, each with a status and a
timestamp. Entries can be filtered, selected, added, deleted and synced.

Sync is simulated: it completes after a fixed delay and marks the entry
Processed. Nothing is written back when the program exits.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			var err error
			configPath, err = config.DefaultConfigFilePath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
		}

		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		logger, closeLog, err = logging.Open(logFile, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		logger.Debug("config loaded", "path", configPath)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			return closeLog()
		}
		return nil
	},
	RunE: runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/domsel/config.json)")
	rootCmd.PersistentFlags().StringVar(&importPath, "import", "", "start from the URLs in a bookmark HTML file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (default $"+logging.EnvLogFile+")")

	rootCmd.Flags().DurationVar(&syncDelay, "delay", 0, "sync duration (overrides config)")
	rootCmd.Flags().Float64Var(&failureRate, "failure-rate", 0, "probability in [0,1] that a sync fails (overrides config)")
	rootCmd.Flags().BoolVar(&printResult, "print", false, "print the selected URL on exit")
}

func runTUI(cmd *cobra.Command, args []string) error {
	entries, err := loadEntries()
	if err != nil {
		return err
	}

	params := syncsim.Params{
		Delay:       time.Duration(cfg.SyncDelay),
		FailureRate: cfg.FailureRate,
	}
	if cmd.Flags().Changed("delay") {
		params.Delay = syncDelay
	}
	if cmd.Flags().Changed("failure-rate") {
		if failureRate < 0 || failureRate > 1 {
			return fmt.Errorf("--failure-rate must be in [0,1], got %v", failureRate)
		}
		params.FailureRate = failureRate
	}

	ctrl := selector.New(selector.Params{
		Seed:   entries,
		Sync:   syncsim.New(params),
		Logger: logger,
	})

	confirm := cfg.ShouldConfirmDelete()
	app := tui.NewApp(tui.AppParams{
		Controller:    ctrl,
		Logger:        logger,
		ConfirmDelete: &confirm,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run app: %w", err)
	}

	if printResult {
		if e, ok := finalModel.(tui.App).FinalSelection(); ok {
			fmt.Fprintln(cmd.OutOrStdout(), e.URL)
		}
	}
	return nil
}

// loadEntries returns the configured seeds, merged with --import if given.
func loadEntries() ([]model.Entry, error) {
	seeds := cfg.SeedEntries()
	if importPath == "" {
		return seeds, nil
	}

	file, err := os.Open(importPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	imported, err := importer.ParseHTMLEntries(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}

	merged, added, skipped := model.ImportMerge(seeds, imported)
	logger.Info("imported entries", "file", importPath, "added", added, "skipped", skipped)
	return merged, nil
}
