package sitecolors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidURL is returned when the URL passed to Scrape lacks a scheme or host.
var ErrInvalidURL = errors.New("invalid URL: scheme and host are required")

// TransportError reports that a request could not be completed at all
// (DNS, connection, timeout, reading the body).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a response outside the 2xx range for the document or a linked stylesheet.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}
