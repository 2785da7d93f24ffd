package main

import (
	"fmt"
	"os"

	"pickd/internal/config"
	"pickd/internal/engine"
	"pickd/internal/log"
	"pickd/internal/tui"
	"pickd/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	debugMode bool
	cfg       *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		initialQuery string
		noPreview    bool
	)

	rootCmd := &cobra.Command{
		Use:   "pickd [directory]",
		Short: "An interactive fuzzy file picker",
		Long: `Pickd opens a filterable picker over a directory, ranked by a pluggable
engine, and prints the chosen file's path to stdout. The interface itself
draws on stderr, so the selection composes with shells and scripts:

    vim "$(pickd)"`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debugMode)

			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}
			if configErr != nil {
				log.Warnf("could not load config: %v, using defaults", configErr)
				cfg = config.New()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.Picker.Directory
			if len(args) > 0 {
				dir = args[0]
			}
			if dir == "" {
				var err error
				dir, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("error getting current directory: %w", err)
				}
			}

			query := cfg.Picker.Query
			if cmd.Flags().Changed("query") {
				query = initialQuery
			}
			if noPreview {
				cfg.Preview.Disabled = true
			}

			return runPicker(cfg, dir, query)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pickd/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&initialQuery, "query", "q", "", "initial query text")
	rootCmd.Flags().BoolVar(&noPreview, "no-preview", false, "disable the preview pane")

	rootCmd.AddCommand(NewRankCmd())

	return rootCmd
}

func runPicker(cfg *config.Config, dir, query string) error {
	styles.ApplyConfig(cfg)

	m := tui.New(cfg, engine.Default(cfg), dir, query)
	// The alternate screen and all drawing go to stderr; stdout carries only
	// the selected path.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running picker: %w", err)
	}

	if selection := m.Selection(); selection != "" {
		fmt.Println(selection)
	}
	return nil
}
