package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wotd/internal/oed"
)

// RunPreview fetches and parses the word of the day and prints a summary to
// out without sending anything. Useful for checking the selectors still match
// the site markup.
func RunPreview(ctx context.Context, client *oed.Client, out io.Writer) error {
	result, err := client.WordOfTheDay(ctx)
	if err != nil {
		return fmt.Errorf("client.WordOfTheDay > %w", err)
	}
	PrintWordEntry(out, result.Entry, result.Etymology)
	return nil
}

// PrintWordEntry writes a colorized summary of a parsed entry.
func PrintWordEntry(out io.Writer, entry oed.WordEntry, etymology oed.EtymologyEntry) {
	bold := color.New(color.Bold)
	italic := color.New(color.Italic)
	heading := color.New(color.FgCyan, color.Bold)

	_, _ = bold.Fprintf(out, "Word: %s\n", entry.Word)
	if entry.Pronunciation != "" {
		fmt.Fprintf(out, "Pronunciation: %s\n", entry.Pronunciation)
	}
	if entry.PartOfSpeech != "" {
		fmt.Fprintf(out, "Part of speech: %s\n", entry.PartOfSpeech)
	}

	_, _ = heading.Fprintln(out, "\nDEFINITIONS:")
	for _, definition := range entry.Definitions {
		fmt.Fprintf(out, "\n%s ", definition.SenseNumber)
		if definition.DateRange.From != "" {
			fmt.Fprintf(out, "[%s-%s]", definition.DateRange.From, definition.DateRange.To)
		}
		fmt.Fprintf(out, "\n%s\n", definition.Text)

		if len(definition.SubjectTags) > 0 {
			fmt.Fprintf(out, "Tags: %s\n", joinTags(definition.SubjectTags))
		}
		if len(definition.Quotations) > 0 {
			quotation := definition.Quotations[0]
			fmt.Fprintln(out, "First recorded use:")
			fmt.Fprintf(out, "  %s: %s\n", quotation.Date, quotation.Text)
			fmt.Fprintf(out, "  - %s\n", quotation.Citation)
		}
	}

	if etymology.Summary != "" {
		_, _ = heading.Fprintln(out, "\nETYMOLOGY SUMMARY:")
		fmt.Fprintln(out, etymology.Summary)
		for _, etymon := range etymology.Etymons {
			_, _ = italic.Fprintf(out, "%s: %s\n", etymon.Language, etymon.Form)
		}
		if etymology.Full != "" {
			_, _ = heading.Fprintln(out, "\nFULL ETYMOLOGY:")
			fmt.Fprintln(out, etymology.Full)
		}
	}
}

func joinTags(tags []string) string {
	result := ""
	for i, tag := range tags {
		if i > 0 {
			result += ", "
		}
		result += tag
	}
	return result
}
