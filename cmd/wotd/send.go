package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wotd/internal/archive"
	"github.com/at-ishikawa/wotd/internal/cli"
	"github.com/at-ishikawa/wotd/internal/mailer"
)

type EmailFormat string

func (f *EmailFormat) Set(val string) error {
	for _, format := range allEmailFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid email format: %s", val)
}

func (f EmailFormat) String() string {
	return string(f)
}

func (f *EmailFormat) Type() string {
	return "EmailFormat"
}

const (
	EmailFormatText      EmailFormat = "text"
	EmailFormatMultipart EmailFormat = "multipart"
)

var (
	_               pflag.Value = (*EmailFormat)(nil)
	allEmailFormats             = []EmailFormat{EmailFormatText, EmailFormatMultipart}
)

func newSendCommand() *cobra.Command {
	var dryRun bool
	format := EmailFormatMultipart

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Fetch the word of the day and email it to the recipient list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !dryRun {
				if err := cfg.RequireSMTP(); err != nil {
					return err
				}
				if len(cfg.Email.RecipientList) == 0 {
					return fmt.Errorf("missing required environment variables: RECIPIENT_LIST")
				}
			}

			client := newOEDClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			var store *archive.Store
			if cfg.Archive.Enabled {
				store = archive.NewStore(cfg.Archive.Directory)
			}
			sender := mailer.NewSMTPSender(mailer.SMTPConfig{
				Server:         cfg.SMTP.Server,
				Port:           cfg.SMTP.Port,
				SenderEmail:    cfg.SMTP.SenderEmail,
				SenderPassword: cfg.SMTP.SenderPassword,
			})

			return cli.RunSend(cmd.Context(), client, sender, store, cli.SendOptions{
				SenderEmail:      cfg.SMTP.SenderEmail,
				RecipientList:    cfg.Email.RecipientList,
				SubjectPrefix:    cfg.Email.Subject,
				TextTemplatePath: cfg.Templates.TextEmailTemplate,
				HTMLTemplatePath: cfg.Templates.HTMLEmailTemplate,
				IncludeHTML:      format == EmailFormatMultipart,
				DryRun:           dryRun,
				DryRunOutput:     cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render the email without sending it")
	cmd.Flags().Var(&format, "format", fmt.Sprintf("Email format. Possible values are %v", allEmailFormats))

	return cmd
}
