package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wotd/internal/cli"
	"github.com/at-ishikawa/wotd/internal/oed"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <word-page.html> [etymology-page.html]",
		Short: "Parse saved OED pages and print the result, for checking the selectors after markup changes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wordHTML, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile > %w", err)
			}
			var etymologyHTML []byte
			if len(args) > 1 {
				etymologyHTML, err = os.ReadFile(args[1])
				if err != nil {
					return fmt.Errorf("os.ReadFile > %w", err)
				}
			}

			entry, etymology, err := oed.ParseWordPage(string(wordHTML), string(etymologyHTML))
			if err != nil {
				return fmt.Errorf("oed.ParseWordPage > %w", err)
			}
			cli.PrintWordEntry(cmd.OutOrStdout(), entry, etymology)
			return nil
		},
	}
}
