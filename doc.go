// Package sitecolors collects the colors a web page declares in CSS. It fetches
// the page, finds its inline <style> blocks and linked stylesheets, downloads the
// linked ones and extracts every hex, rgb(a), hsl(a), hwb and named color.
//
// The CLI lives in cmd/site-colors; this root package exposes the same pipeline
// as a Go API.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named sitecolors:
//
//	import "github.com/kataras/site-colors" // package sitecolors
//
// # Quick start
//
//	result, err := sitecolors.Scrape(ctx, "https://example.com", sitecolors.Options{
//	    Concurrency: 8,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range result.Colors {
//	    fmt.Println(c.Hex())
//	}
//
// # Ordering
//
// Colors of inline blocks come first, then colors of linked stylesheets, each
// group in markup order. Within one stylesheet a color is reported once; across
// stylesheets it is reported once per stylesheet.
//
// # Errors
//
// Any failure aborts the scrape. Use errors.As with [*TransportError] for
// network failures and [*StatusError] for non-2xx responses.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output. *logrus.Logger satisfies the
// interface.
package sitecolors
