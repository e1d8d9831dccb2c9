// Package cli wires the fetch, parse, render, and send stages together.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/at-ishikawa/wotd/internal/archive"
	"github.com/at-ishikawa/wotd/internal/assets"
	"github.com/at-ishikawa/wotd/internal/mailer"
	"github.com/at-ishikawa/wotd/internal/oed"
)

// SendOptions holds everything RunSend needs besides its collaborators.
type SendOptions struct {
	SenderEmail      string
	RecipientList    []string
	SubjectPrefix    string
	TextTemplatePath string
	HTMLTemplatePath string
	IncludeHTML      bool

	// DryRun renders the email and writes it to DryRunOutput instead of
	// sending anything. A nil DryRunOutput falls back to stdout.
	DryRun       bool
	DryRunOutput io.Writer
}

// RunSend executes the daily pipeline: fetch and parse the word of the day,
// archive the raw page, render the email bodies, and send one message to all
// recipients. Each stage short-circuits the run on failure; only the archive
// step is allowed to fail without aborting.
func RunSend(ctx context.Context, client *oed.Client, sender mailer.Sender, store *archive.Store, options SendOptions) error {
	result, err := client.WordOfTheDay(ctx)
	if err != nil {
		return fmt.Errorf("client.WordOfTheDay > %w", err)
	}
	slog.Default().Info("fetched word of the day",
		"word", result.Entry.Word,
		"definitions", len(result.Entry.Definitions),
		"url", result.WordURL,
	)

	if store != nil {
		if path, err := store.Save(result.Entry.Word, []byte(result.RawHTML)); err != nil {
			// The snapshot is a side artifact, losing it should not lose the run
			slog.Default().Warn("failed to archive the word page",
				"word", result.Entry.Word,
				"error", err,
			)
		} else {
			slog.Default().Debug("archived the word page", "path", path)
		}
	}

	data := assets.EmailData{
		Entry:     result.Entry,
		Etymology: result.Etymology,
		WordURL:   result.WordURL,
	}
	textBody, err := assets.RenderTextEmail(options.TextTemplatePath, data)
	if err != nil {
		return fmt.Errorf("assets.RenderTextEmail > %w", err)
	}
	var htmlBody string
	if options.IncludeHTML {
		htmlBody, err = assets.RenderHTMLEmail(options.HTMLTemplatePath, data)
		if err != nil {
			return fmt.Errorf("assets.RenderHTMLEmail > %w", err)
		}
	}

	subject := fmt.Sprintf("%s: %s", options.SubjectPrefix, result.Entry.Word)
	if options.DryRun {
		out := options.DryRunOutput
		if out == nil {
			out = os.Stdout
		}
		if _, err := fmt.Fprintf(out, "Subject: %s\n\n%s", subject, textBody); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
		return nil
	}

	if err := sender.Send(ctx, mailer.Message{
		From:     options.SenderEmail,
		To:       options.RecipientList,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}); err != nil {
		return fmt.Errorf("sender.Send > %w", err)
	}

	slog.Default().Info("sent word of the day email",
		"word", result.Entry.Word,
		"recipients", len(options.RecipientList),
	)
	return nil
}
