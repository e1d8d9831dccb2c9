package oed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const (
	// DefaultBaseURL is the OED website root.
	DefaultBaseURL = "https://www.oed.com"

	// The site rejects requests without a browser-like user agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"
)

// Client downloads word-of-the-day pages from the OED website.
type Client struct {
	httpClient       *resty.Client
	baseURL          string
	maxRetryAttempts uint
}

func NewClient(baseURL string, timeout time.Duration, retryAttempts uint) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	client.SetTimeout(timeout)

	return &Client{
		httpClient:       client,
		baseURL:          baseURL,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// Result holds everything fetched and parsed for a single day's word. RawHTML
// is the unparsed word page, kept for archiving.
type Result struct {
	Entry     WordEntry
	Etymology EtymologyEntry
	WordURL   string
	RawHTML   string
}

// WordOfTheDay resolves the word-of-the-day link from the homepage, downloads
// the word page and its etymology tab, and parses both.
func (client *Client) WordOfTheDay(ctx context.Context) (Result, error) {
	homepage, err := client.fetch(ctx, client.baseURL+"/")
	if err != nil {
		return Result{}, err
	}
	path, err := ExtractWordOfTheDayPath(homepage)
	if err != nil {
		return Result{}, err
	}
	wordURL := client.baseURL + path

	etymologyHTML, err := client.fetch(ctx, wordURL+"?tab=etymology")
	if err != nil {
		return Result{}, err
	}
	etymology, err := ParseEtymology(etymologyHTML)
	if err != nil {
		return Result{}, err
	}

	wordHTML, err := client.fetch(ctx, wordURL)
	if err != nil {
		return Result{}, err
	}
	entry, err := ParseWordEntry(wordHTML)
	if err != nil {
		return Result{}, err
	}
	entry.FetchedAt = time.Now()

	return Result{
		Entry:     entry,
		Etymology: etymology,
		WordURL:   wordURL,
		RawHTML:   wordHTML,
	}, nil
}

// ParseWordPage parses a word page together with its etymology tab content.
// Used by the parse command to check selectors against saved HTML.
func ParseWordPage(wordHTML, etymologyHTML string) (WordEntry, EtymologyEntry, error) {
	entry, err := ParseWordEntry(wordHTML)
	if err != nil {
		return WordEntry{}, EtymologyEntry{}, err
	}
	var etymology EtymologyEntry
	if etymologyHTML != "" {
		etymology, err = ParseEtymology(etymologyHTML)
		if err != nil {
			return WordEntry{}, EtymologyEntry{}, err
		}
	}
	return entry, etymology, nil
}

func (client *Client) fetch(ctx context.Context, url string) (string, error) {
	var body string
	if err := retry.Do(
		func() error {
			response, err := client.httpClient.R().
				SetContext(ctx).
				Get(url)
			if err != nil {
				return &FetchError{URL: url, Err: err}
			}
			if response.IsError() {
				fetchErr := &FetchError{URL: url, StatusCode: response.StatusCode()}
				if !isRetryableStatus(response.StatusCode()) {
					return retry.Unrecoverable(fetchErr)
				}
				return fetchErr
			}
			body = response.String()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
	); err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return "", fetchErr
		}
		return "", &FetchError{URL: url, Err: err}
	}
	return body, nil
}

// isRetryableStatus reports whether a retry may help: server errors and rate
// limiting only, never other client errors.
func isRetryableStatus(statusCode int) bool {
	return statusCode >= 500 || statusCode == 429
}
