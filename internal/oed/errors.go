package oed

import "fmt"

// FetchError indicates a network failure, timeout, or non-success HTTP status
// while downloading a page.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError indicates that an expected structural marker was missing from the
// page HTML, usually because the site markup changed.
type ParseError struct {
	Marker string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: could not find %s", e.Marker)
}
