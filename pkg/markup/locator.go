package markup

import (
	"regexp"
	"sort"
	"sync"
)

// Source is a place colors can be read from: CSS embedded in the document or a stylesheet it links to.
// The set of implementations is closed; consumers dispatch with a type switch.
type Source interface {
	isSource()
}

// InlineCSS holds the verbatim body of a <style> element.
type InlineCSS struct {
	Text string
}

// LinkedStylesheet holds the raw href of a <link> element, possibly relative to the document.
type LinkedStylesheet struct {
	Href string
}

func (InlineCSS) isSource()        {}
func (LinkedStylesheet) isSource() {}

const (
	styleTagPattern = `(?is)<style\b[^>]*>(.*?)</style\s*>`

	// Any <link> carrying an href is a candidate, rel is not inspected.
	linkTagPattern = `(?is)<link\b[^>]*?\shref\s*=\s*(?:"([^"]*)"|'([^']*)')[^>]*>`
)

// Locator finds color sources in HTML text. It is immutable once built and safe for concurrent use.
type Locator struct {
	style *regexp.Regexp
	link  *regexp.Regexp
}

// NewLocator compiles the tag patterns.
func NewLocator() *Locator {
	return &Locator{
		style: regexp.MustCompile(styleTagPattern),
		link:  regexp.MustCompile(linkTagPattern),
	}
}

// Default returns the process-wide Locator, built on first use.
var Default = sync.OnceValue(NewLocator)

// Locate returns every <style> body and every <link href> reference in html, in the order they
// appear in the markup. Every <style> element yields a source, even an empty one; <link> tags
// without a non-empty href are skipped.
// The document URL is not used for matching; linked references are returned unresolved.
func (l *Locator) Locate(documentURL, html string) []Source {
	type found struct {
		offset int
		source Source
	}
	var all []found

	for _, m := range l.style.FindAllStringSubmatchIndex(html, -1) {
		// Empty and whitespace-only bodies are still sources; they just hold no colors.
		all = append(all, found{offset: m[0], source: InlineCSS{Text: html[m[2]:m[3]]}})
	}

	for _, m := range l.link.FindAllStringSubmatchIndex(html, -1) {
		var href string
		switch {
		case m[2] >= 0:
			href = html[m[2]:m[3]]
		case m[4] >= 0:
			href = html[m[4]:m[5]]
		}
		// href="" would resolve to the document's own directory, not a stylesheet.
		if href == "" {
			continue
		}
		all = append(all, found{offset: m[0], source: LinkedStylesheet{Href: href}})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].offset < all[j].offset })

	sources := make([]Source, 0, len(all))
	for _, f := range all {
		sources = append(sources, f.source)
	}
	return sources
}
