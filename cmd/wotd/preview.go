package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wotd/internal/cli"
)

func newPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Fetch the word of the day and print it without sending an email",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := newOEDClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			return cli.RunPreview(cmd.Context(), client, cmd.OutOrStdout())
		},
	}
}
