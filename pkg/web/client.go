package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Version is reported in the default User-Agent header.
const Version = "0.1.0"

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxBodyBytes = 10 << 20 // 10 MiB
	defaultUserAgent    = "site-colors/" + Version
)

// ErrBodyTooLarge is returned when a response body exceeds Config.MaxBodyBytes.
var ErrBodyTooLarge = errors.New("response body too large")

// Config tunes a Client. Zero values select the defaults.
type Config struct {
	Timeout      time.Duration // per request, including reading the body
	MaxRetries   int           // extra attempts on transport errors, 429 and 5xx; 0 disables retrying
	RetryBackoff time.Duration // multiplied by the attempt number, default 2s
	UserAgent    string
	MaxBodyBytes int64 // larger bodies fail with ErrBodyTooLarge
}

// Client performs the GET requests of a scrape: the document itself and its linked stylesheets.
// It only reports what the server answered; deciding which status codes are acceptable
// is left to the caller.
type Client struct {
	httpClient *http.Client
	config     Config
}

// NewClient creates a Client with a pooled transport and the given configuration.
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.RetryBackoff <= 0 {
		config.RetryBackoff = 2 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = defaultMaxBodyBytes
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
	}
}

// NewClientWith wraps an existing *http.Client, e.g. one returned by httptest.Server.Client().
func NewClientWith(httpClient *http.Client, config Config) *Client {
	c := NewClient(config)
	c.httpClient = httpClient
	return c
}

// Fetch issues a GET request to url and returns the final status code and the body as text.
// When MaxRetries is set, transport failures and 429/5xx responses are retried with a linear
// backoff; the last status or error is returned once attempts run out.
func (c *Client) Fetch(ctx context.Context, url string) (int, string, error) {
	var lastErr error

	for attempt := 1; attempt <= c.config.MaxRetries+1; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, time.Duration(attempt-1)*c.config.RetryBackoff); err != nil {
				return 0, "", err
			}
		}

		status, body, err := c.get(ctx, url)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt, err)
			if ctx.Err() != nil {
				return 0, "", lastErr
			}
			continue
		}

		if retryable(status) && attempt <= c.config.MaxRetries {
			continue
		}

		return status, body, nil
	}

	return 0, "", lastErr
}

func (c *Client) get(ctx context.Context, url string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "text/html,text/css,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodyBytes+1))
	if err != nil {
		return 0, "", fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > c.config.MaxBodyBytes {
		return 0, "", fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, c.config.MaxBodyBytes)
	}

	return resp.StatusCode, string(body), nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
