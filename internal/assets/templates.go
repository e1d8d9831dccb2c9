// Package assets holds the embedded email body templates.
package assets

import (
	_ "embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/at-ishikawa/wotd/internal/oed"
)

//go:embed templates/wotd-email.txt.go.tmpl
var fallbackTextEmailTemplate string

//go:embed templates/wotd-email.html.go.tmpl
var fallbackHTMLEmailTemplate string

// EmailData is the input to both email body templates.
type EmailData struct {
	Entry     oed.WordEntry
	Etymology oed.EtymologyEntry
	WordURL   string
}

var funcMap = map[string]any{
	"join": strings.Join,
}

// RenderTextEmail renders the plain-text email body. When templatePath is
// empty or unreadable, the embedded template is used.
func RenderTextEmail(templatePath string, data EmailData) (string, error) {
	tmpl, err := parseTextTemplate(templatePath)
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	if err := tmpl.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("failed to render text email template: %w", err)
	}
	return builder.String(), nil
}

// RenderHTMLEmail renders the HTML alternative body with escaping.
func RenderHTMLEmail(templatePath string, data EmailData) (string, error) {
	tmpl, err := parseHTMLTemplate(templatePath)
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	if err := tmpl.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("failed to render HTML email template: %w", err)
	}
	return builder.String(), nil
}

func parseTextTemplate(templatePath string) (*texttemplate.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := texttemplate.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath, falling back to the embedded template",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := texttemplate.New("wotd-email.txt.go.tmpl").
		Funcs(funcMap).
		Parse(fallbackTextEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

func parseHTMLTemplate(templatePath string) (*htmltemplate.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := htmltemplate.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath, falling back to the embedded template",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := htmltemplate.New("wotd-email.html.go.tmpl").
		Funcs(funcMap).
		Parse(fallbackHTMLEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
