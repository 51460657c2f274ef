package sitecolors

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kataras/site-colors/pkg/css"
	"github.com/kataras/site-colors/pkg/markup"
	"github.com/kataras/site-colors/pkg/web"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// Fetcher performs a GET request and reports the status code and body.
// A non-nil error means no response was received; non-2xx statuses are not errors at this level.
// *web.Client is the default implementation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (status int, body string, err error)
}

// Options configures a Scraper.
type Options struct {
	Fetcher     Fetcher         // nil = web.NewClient with default config
	Concurrency int             // linked stylesheets fetched at once, default 4
	Extractor   *css.Extractor  // nil = css.Default()
	Locator     *markup.Locator // nil = markup.Default()
	Logger      Logger          // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
// Messages about linked stylesheets may be emitted from several goroutines at once.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// SiteColors is the palette of one page.
//
// Colors lists the colors of every inline <style> block first and then those of every linked
// stylesheet, each group in markup order. Colors are distinct within one source only, so a
// color declared in two stylesheets appears twice.
type SiteColors struct {
	URL    string      `json:"url" yaml:"url"`
	Colors []css.Color `json:"colors" yaml:"colors"`
}

// Scraper extracts the colors of web pages. It holds no per-call state and may be used concurrently.
type Scraper struct {
	fetcher     Fetcher
	extractor   *css.Extractor
	locator     *markup.Locator
	concurrency int
	logger      Logger
}

// New returns a Scraper with defaults applied to the zero fields of opts.
func New(opts Options) *Scraper {
	if opts.Fetcher == nil {
		opts.Fetcher = web.NewClient(web.Config{})
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.Extractor == nil {
		opts.Extractor = css.Default()
	}
	if opts.Locator == nil {
		opts.Locator = markup.Default()
	}

	return &Scraper{
		fetcher:     opts.Fetcher,
		extractor:   opts.Extractor,
		locator:     opts.Locator,
		concurrency: opts.Concurrency,
		logger:      opts.Logger,
	}
}

// Scrape is a shortcut for New(opts).Scrape(ctx, pageURL).
func Scrape(ctx context.Context, pageURL string, opts Options) (*SiteColors, error) {
	return New(opts).Scrape(ctx, pageURL)
}

func (s *Scraper) logInfo(f string, a ...any) {
	if s.logger != nil {
		s.logger.Infof(f, a...)
	}
}

func (s *Scraper) logWarn(f string, a ...any) {
	if s.logger != nil {
		s.logger.Warnf(f, a...)
	}
}

func (s *Scraper) logError(f string, a ...any) {
	if s.logger != nil {
		s.logger.Errorf(f, a...)
	}
}

// Scrape fetches the page at pageURL, finds its inline and linked stylesheets and returns the
// colors they declare. Any transport failure or non-2xx response, for the page or for a linked
// stylesheet, aborts the whole operation; no partial result is returned.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*SiteColors, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, pageURL)
	}

	s.logInfo("Fetching %s...", pageURL)
	html, err := s.fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}

	var (
		inline []string
		linked []string
	)
	for _, source := range s.locator.Locate(pageURL, html) {
		switch src := source.(type) {
		case markup.InlineCSS:
			inline = append(inline, src.Text)
		case markup.LinkedStylesheet:
			linked = append(linked, web.Resolve(src.Href, pageURL))
		}
	}
	s.logInfo("Found %d inline style block(s) and %d linked stylesheet(s)", len(inline), len(linked))
	if len(inline)+len(linked) == 0 {
		s.logWarn("No stylesheets found in %s", pageURL)
	}

	sheets, err := s.fetchAll(ctx, linked)
	if err != nil {
		return nil, fmt.Errorf("fetch stylesheet: %w", err)
	}

	groups := make([][]css.Color, 0, len(inline)+len(sheets))
	for _, text := range inline {
		groups = append(groups, s.extractor.Extract(text))
	}
	for _, text := range sheets {
		groups = append(groups, s.extractor.Extract(text))
	}

	colors := lo.Flatten(groups)
	s.logInfo("Extracted %d color(s)", len(colors))

	return &SiteColors{
		URL:    pageURL,
		Colors: colors,
	}, nil
}

// fetchAll downloads the linked stylesheets concurrently, bounded by the configured limit.
// Bodies are returned in the order of urls. The first failure cancels the remaining requests.
func (s *Scraper) fetchAll(ctx context.Context, urls []string) ([]string, error) {
	bodies := make([]string, len(urls))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			body, err := s.fetch(gCtx, u)
			if err != nil {
				return err
			}
			bodies[i] = body
			s.logInfo("Fetched stylesheet %s", u)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logError("Stylesheet download failed: %v", err)
		return nil, err
	}

	return bodies, nil
}

// fetch returns the body of a 2xx response or a *TransportError / *StatusError.
func (s *Scraper) fetch(ctx context.Context, target string) (string, error) {
	status, body, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return "", &TransportError{URL: target, Err: err}
	}
	if status < 200 || status >= 300 {
		return "", &StatusError{URL: target, StatusCode: status}
	}
	return body, nil
}
