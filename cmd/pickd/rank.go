package main

import (
	"encoding/json"
	"fmt"
	"os"

	"pickd/internal/engine"

	"github.com/spf13/cobra"
)

// NewRankCmd creates the built-in ranking engine command. It is what pickd
// runs against itself when no external engine is configured, and it doubles
// as a plain CLI filter.
func NewRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank [query]",
		Short: "Rank the current directory's entries for a query",
		Long: `Rank lists the working directory, filters it against the query, and
prints the matching entries as a JSON array on stdout. Directories sort
before files and a ".." entry leads the listing when a parent exists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			dir, err := os.Getwd()
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "[]")
				return fmt.Errorf("error getting current directory: %w", err)
			}

			lister := engine.NewLister(cfg.Picker.Ignore)
			entries, err := lister.List(dir)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "[]")
				return fmt.Errorf("error listing %s: %w", dir, err)
			}

			out, err := json.Marshal(engine.Rank(entries, query))
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "[]")
				return fmt.Errorf("error encoding entries: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
